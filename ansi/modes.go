package ansi

// Mode is an ANSI terminal mode constant.
type Mode uint64

// Mode bit fields
const (
	ModePrivate Mode = 1 << 63
)

// Set returns a control sequence for enabling the mode.
func (mode Mode) Set() Seq {
	if mode&ModePrivate == 0 {
		return SM.WithInts(int(mode))
	}
	return SMprivate.WithInts(int(mode & ^ModePrivate))
}

// Reset returns a control sequence for disabling the mode.
func (mode Mode) Reset() Seq {
	if mode&ModePrivate == 0 {
		return RM.WithInts(int(mode))
	}
	return RMprivate.WithInts(int(mode & ^ModePrivate))
}

// Mouse reporting modes; see
// http://invisible-island.net/xterm/ctlseqs/ctlseqs.html.
const (
	ModeMouseX10      = ModePrivate | 9
	ModeMouseVt200    = ModePrivate | 1000
	ModeMouseBtnEvent = ModePrivate | 1002
	ModeMouseAnyEvent = ModePrivate | 1003

	ModeMouseExt      = ModePrivate | 1005
	ModeMouseSgrExt   = ModePrivate | 1006
	ModeMouseUrxvtExt = ModePrivate | 1015
)

// Other xterm private modes.
const (
	ShowCursor          = ModePrivate | 25
	ModeAlternateScreen = ModePrivate | 1049
	ModeBracketedPaste  = ModePrivate | 2004
)

// MouseReporting lists the modes enabled to receive button press, release,
// and drag events in any of the encodings that termkey decodes.
var MouseReporting = []Mode{
	ModeMouseVt200,
	ModeMouseBtnEvent,
	ModeMouseSgrExt,
	ModeMouseUrxvtExt,
}
