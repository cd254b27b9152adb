package ansi

// MouseState represents the button state byte of an xterm mouse report.
type MouseState uint8

// MouseState constants, mapped directly to xterm's state bit fields.
const (
	MouseButton1    MouseState = 0
	MouseButton2    MouseState = 1
	MouseButton3    MouseState = 2
	MouseNoButton   MouseState = 3
	MouseModShift   MouseState = 1 << 2 // 4
	MouseModMeta    MouseState = 1 << 3 // 8
	MouseModControl MouseState = 1 << 4 // 16
	MouseMotion     MouseState = 1 << 5 // 32
	MouseWheel      MouseState = 1 << 6 // 64
)

// Button returns just the low button bits, one of MouseButton1 through
// MouseNoButton.
func (ms MouseState) Button() MouseState { return ms & MouseNoButton }

// Modifier returns just the modifier bits, which can be tested against the
// constants MouseModShift, MouseModControl, and MouseModMeta.
func (ms MouseState) Modifier() MouseState {
	return ms & (MouseModShift | MouseModMeta | MouseModControl)
}

// IsMotion returns true if the mouse state represents motion (with or without
// a button held).
func (ms MouseState) IsMotion() bool { return ms&MouseMotion != 0 }

// IsWheel returns true if the button bits refer to wheel buttons.
func (ms MouseState) IsWheel() bool { return ms&MouseWheel != 0 }
