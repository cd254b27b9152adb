package termkey

import (
	"fmt"
	"image"

	"github.com/jcorbin/rawterm/ansi"
)

// MouseAction is the kind of mouse event reported by the terminal.
type MouseAction uint8

// MouseAction constants.
const (
	MousePress MouseAction = iota + 1
	MouseRelease
	MouseHold
)

// MouseButton identifies which button a MousePress was for.
type MouseButton uint8

// MouseButton constants; MouseNoButton is used for release and hold events,
// since terminals don't report which button those concern.
const (
	MouseNoButton MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

var mouseButtonNames = [...]string{
	MouseNoButton:   "None",
	MouseLeft:       "Left",
	MouseRight:      "Right",
	MouseMiddle:     "Middle",
	MouseWheelUp:    "WheelUp",
	MouseWheelDown:  "WheelDown",
	MouseWheelLeft:  "WheelLeft",
	MouseWheelRight: "WheelRight",
}

func (b MouseButton) String() string {
	if int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(b))
}

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "Press"
	case MouseRelease:
		return "Release"
	case MouseHold:
		return "Hold"
	}
	return fmt.Sprintf("MouseAction(%d)", uint8(a))
}

// Mouse is a mouse event: a press, release, or hold (motion with a button
// held) at a point. The point is relative to the terminal's own 1,1 origin,
// and isn't otherwise checked, since terminals may report 0 or saturated
// values in some encodings.
type Mouse struct {
	Action MouseAction
	Button MouseButton
	ansi.Point
}

func mouseAt(x, y int) ansi.Point { return ansi.Point{Point: image.Pt(x, y)} }

// Press returns a mouse press event of the given button at x,y.
func Press(b MouseButton, x, y int) Mouse {
	return Mouse{Action: MousePress, Button: b, Point: mouseAt(x, y)}
}

// Release returns a mouse release event at x,y.
func Release(x, y int) Mouse {
	return Mouse{Action: MouseRelease, Point: mouseAt(x, y)}
}

// Hold returns a mouse hold event at x,y.
func Hold(x, y int) Mouse {
	return Mouse{Action: MouseHold, Point: mouseAt(x, y)}
}

// Event returns a MouseEvent carrying m.
func (m Mouse) Event() Event { return Event{Type: MouseEvent, Mouse: m} }

func (m Mouse) String() string {
	if m.Action == MousePress {
		return fmt.Sprintf("Press(%v)@%d,%d", m.Button, m.X, m.Y)
	}
	return fmt.Sprintf("%v@%d,%d", m.Action, m.X, m.Y)
}
