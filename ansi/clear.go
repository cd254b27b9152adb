package ansi

// Screen and line clearing sequences.
var (
	ClearAll          = ED.WithInts(2)
	ClearAfterCursor  = ED.With()
	ClearBeforeCursor = ED.WithInts(1)
	ClearCurrentLine  = EL.WithInts(2)
	ClearUntilNewline = EL.With()
)

// ScrollUp returns a control sequence that scrolls the screen content up n
// lines.
func ScrollUp(n int) Seq { return SU.WithInts(n) }

// ScrollDown returns a control sequence that scrolls the screen content down
// n lines.
func ScrollDown(n int) Seq { return SD.WithInts(n) }

// SetScrollRegion returns a control sequence that limits scrolling to the
// lines top through bottom (inclusive, 1-based).
func SetScrollRegion(top, bottom int) Seq { return DECSTBM.WithInts(top, bottom) }

// ResetScrollRegion restores scrolling of the whole screen.
var ResetScrollRegion = DECSTBM.With()
