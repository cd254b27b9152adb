package termkey

import (
	"fmt"
	"strconv"
)

// Key identifies a keyboard key, possibly carrying a Unicode character.
//
// Named keys (arrows, function keys, etc) are small integer constants. Keys
// that carry a character (Char, Alt, and Ctrl) encode a kind tag in the upper
// bits, and the character's codepoint in the low 21 bits. Key values are
// comparable, so they may be used directly in switch statements and as map
// keys:
//
//	switch k {
//	case termkey.Char('q'), termkey.Ctrl('c'):
//		return errQuit
//	case termkey.KeyF1:
//		showHelp()
//	}
type Key uint32

// KeyKind distinguishes named keys from character-carrying keys.
type KeyKind uint8

// KeyKind constants, see Key.Kind().
const (
	NamedKey KeyKind = iota
	CharKey
	AltKey
	CtrlKey
)

const keyKindShift = 24

const (
	keyRuneMask Key = 0x1FFFFF
	keyKindMask Key = 0xF << keyKindShift
)

// Key constants for named keys; the zero value KeyNone is never produced by
// decoding.
const (
	KeyNone Key = iota
	KeyBackspace
	KeyLeft
	KeyShiftLeft
	KeyAltLeft
	KeyCtrlLeft
	KeyRight
	KeyShiftRight
	KeyAltRight
	KeyCtrlRight
	KeyUp
	KeyShiftUp
	KeyAltUp
	KeyCtrlUp
	KeyDown
	KeyShiftDown
	KeyAltDown
	KeyCtrlDown
	KeyHome
	KeyCtrlHome
	KeyEnd
	KeyCtrlEnd
	KeyPageUp
	KeyPageDown
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyNull
	KeyEsc

	maxNamedKey = KeyEsc
)

var keyNames = [...]string{
	KeyNone:       "None",
	KeyBackspace:  "Backspace",
	KeyLeft:       "Left",
	KeyShiftLeft:  "Shift+Left",
	KeyAltLeft:    "Alt+Left",
	KeyCtrlLeft:   "Ctrl+Left",
	KeyRight:      "Right",
	KeyShiftRight: "Shift+Right",
	KeyAltRight:   "Alt+Right",
	KeyCtrlRight:  "Ctrl+Right",
	KeyUp:         "Up",
	KeyShiftUp:    "Shift+Up",
	KeyAltUp:      "Alt+Up",
	KeyCtrlUp:     "Ctrl+Up",
	KeyDown:       "Down",
	KeyShiftDown:  "Shift+Down",
	KeyAltDown:    "Alt+Down",
	KeyCtrlDown:   "Ctrl+Down",
	KeyHome:       "Home",
	KeyCtrlHome:   "Ctrl+Home",
	KeyEnd:        "End",
	KeyCtrlEnd:    "Ctrl+End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyBackTab:    "BackTab",
	KeyDelete:     "Delete",
	KeyInsert:     "Insert",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
	KeyNull:       "Null",
	KeyEsc:        "Esc",
}

func withKind(kind KeyKind, r rune) Key {
	return Key(kind)<<keyKindShift | Key(r)&keyRuneMask
}

// Char returns the key for a normal character.
func Char(r rune) Key { return withKind(CharKey, r) }

// Alt returns the key for an Alt (meta) modified character.
func Alt(r rune) Key { return withKind(AltKey, r) }

// Ctrl returns the key for a Ctrl modified character. Note that terminals
// can't deliver every Ctrl combination; see ParseEvent for the ones decoded.
func Ctrl(r rune) Key { return withKind(CtrlKey, r) }

// F returns the function key Fn; panics unless 1 <= n <= 12.
func F(n int) Key {
	if n < 1 || n > 12 {
		panic(fmt.Sprintf("termkey: invalid function key F%d", n))
	}
	return KeyF1 + Key(n-1)
}

// Kind returns which kind of key this is.
func (k Key) Kind() KeyKind { return KeyKind(k >> keyKindShift) }

// Rune returns the character carried by a Char, Alt, or Ctrl key; returns 0
// for named keys.
func (k Key) Rune() rune {
	if k.Kind() == NamedKey {
		return 0
	}
	return rune(k & keyRuneMask)
}

// Fn returns the function key number if k is one of KeyF1 through KeyF12.
func (k Key) Fn() (int, bool) {
	if KeyF1 <= k && k <= KeyF12 {
		return int(k-KeyF1) + 1, true
	}
	return 0, false
}

// IsValid returns true if k is a named key constant other than KeyNone, or a
// well formed character key.
func (k Key) IsValid() bool {
	switch k.Kind() {
	case NamedKey:
		return KeyNone < k && k <= maxNamedKey
	case CharKey, AltKey, CtrlKey:
		return k&^(keyKindMask|keyRuneMask) == 0
	}
	return false
}

// Event returns a KeyEvent carrying k.
func (k Key) Event() Event { return Event{Type: KeyEvent, Key: k} }

func (k Key) String() string {
	switch k.Kind() {
	case NamedKey:
		if k <= maxNamedKey {
			return keyNames[k]
		}
	case CharKey:
		return string(k.Rune())
	case AltKey:
		return "Alt+" + string(k.Rune())
	case CtrlKey:
		return "Ctrl+" + string(k.Rune())
	}
	return "Key<" + strconv.FormatUint(uint64(k), 16) + ">"
}
