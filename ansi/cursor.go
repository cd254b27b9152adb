package ansi

// CursorTo returns a control sequence that moves the cursor to p.
func CursorTo(p Point) Seq { return CUP.WithPoint(p) }

// CursorUp returns a control sequence that moves the cursor up n lines.
func CursorUp(n int) Seq { return CUU.WithInts(n) }

// CursorDown returns a control sequence that moves the cursor down n lines.
func CursorDown(n int) Seq { return CUD.WithInts(n) }

// CursorLeft returns a control sequence that moves the cursor left n columns.
func CursorLeft(n int) Seq { return CUB.WithInts(n) }

// CursorRight returns a control sequence that moves the cursor right n
// columns.
func CursorRight(n int) Seq { return CUF.WithInts(n) }

// Cursor visibility, saving, and position query sequences.
var (
	CursorHide    = ShowCursor.Reset()
	CursorShow    = ShowCursor.Set()
	CursorSave    = DECSC.With()
	CursorRestore = DECRC.With()

	// RequestCursorPosition asks the terminal to reply with a CPR, which may
	// be decoded with DecodeCursorPosition.
	RequestCursorPosition = DSR.WithInts(6)
)

// CursorShape is a DECSCUSR cursor style.
type CursorShape int

// CursorShape constants; CursorDefault lets the terminal decide.
const (
	CursorDefault CursorShape = iota
	CursorBlinkingBlock
	CursorSteadyBlock
	CursorBlinkingUnderline
	CursorSteadyUnderline
	CursorBlinkingBar
	CursorSteadyBar
)

// Seq returns the control sequence that sets the cursor shape.
func (cs CursorShape) Seq() Seq { return DECSCUSR.WithInts(int(cs)) }
