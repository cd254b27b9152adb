package termkey

import "fmt"

// EventType discriminates the payload carried by an Event.
type EventType uint8

// EventType constants.
const (
	NoEvent EventType = iota
	KeyEvent
	MouseEvent
	UnsupportedEvent
)

func (t EventType) String() string {
	switch t {
	case NoEvent:
		return "NoEvent"
	case KeyEvent:
		return "KeyEvent"
	case MouseEvent:
		return "MouseEvent"
	case UnsupportedEvent:
		return "UnsupportedEvent"
	}
	return fmt.Sprintf("EventType(%d)", uint8(t))
}

// Event is a single decoded unit of terminal input. Only the field
// corresponding to Type is meaningful:
//   - KeyEvent: Key
//   - MouseEvent: Mouse
//   - UnsupportedEvent: Raw, the verbatim bytes of a sequence that couldn't be
//     parsed
type Event struct {
	Type  EventType
	Key   Key
	Mouse Mouse
	Raw   []byte
}

// Unsupported returns an UnsupportedEvent carrying raw.
func Unsupported(raw []byte) Event {
	return Event{Type: UnsupportedEvent, Raw: raw}
}

func (ev Event) String() string {
	switch ev.Type {
	case KeyEvent:
		return ev.Key.String()
	case MouseEvent:
		return ev.Mouse.String()
	case UnsupportedEvent:
		return fmt.Sprintf("Unsupported(%q)", ev.Raw)
	}
	return ev.Type.String()
}
