package termkey

import (
	"github.com/jcorbin/rawterm/ansi"
)

// parseCSI dispatches on the byte following "ESC [".
func (p *parser) parseCSI() (Event, error) {
	c, err := p.next()
	if err != nil {
		return Event{}, p.readFail(ErrUnableToParse, err)
	}
	switch c {
	case '[':
		c, err := p.next()
		if err != nil {
			return Event{}, p.readFail(ErrUnableToParse, err)
		}
		if 'A' <= c && c <= 'E' {
			return F(int(c-'A') + 1).Event(), nil
		}
		return Event{}, p.fail(ErrUnableToParse, nil)
	case 'D':
		return KeyLeft.Event(), nil
	case 'C':
		return KeyRight.Event(), nil
	case 'A':
		return KeyUp.Event(), nil
	case 'B':
		return KeyDown.Event(), nil
	case 'H':
		return KeyHome.Event(), nil
	case 'F':
		return KeyEnd.Event(), nil
	case 'Z':
		return KeyBackTab.Event(), nil
	case 'M':
		return p.parseX10Mouse()
	case '<':
		return p.parseSGRMouse()
	}
	if '0' <= c && c <= '9' {
		return p.parseNumbered()
	}
	return Event{}, p.fail(ErrUnableToParse, nil)
}

// parseX10Mouse decodes a "CSI M Cb Cx Cy" mouse report, whose three payload
// bytes are each offset by 32.
func (p *parser) parseX10Mouse() (Event, error) {
	var b [3]byte
	for i := range b {
		c, err := p.next()
		if err != nil {
			return Event{}, p.readFail(ErrUnableToParse, err)
		}
		b[i] = c
	}

	state := ansi.MouseState(b[0] - 32)
	x, y := x10Coord(b[1]), x10Coord(b[2])
	wheel := state.IsWheel()

	var m Mouse
	switch state.Button() {
	case ansi.MouseButton1:
		m = Press(pickButton(wheel, MouseWheelUp, MouseLeft), x, y)
	case ansi.MouseButton2:
		m = Press(pickButton(wheel, MouseWheelDown, MouseMiddle), x, y)
	case ansi.MouseButton3:
		m = Press(pickButton(wheel, MouseWheelLeft, MouseRight), x, y)
	default:
		if wheel {
			m = Press(MouseWheelRight, x, y)
		} else {
			m = Release(x, y)
		}
	}
	return m.Event(), nil
}

func x10Coord(c byte) int {
	if c < 32 {
		return 0
	}
	return int(c - 32)
}

func pickButton(wheel bool, ifWheel, otherwise MouseButton) MouseButton {
	if wheel {
		return ifWheel
	}
	return otherwise
}

// sgrButtons maps SGR (mode 1006) button codes to buttons.
var sgrButtons = map[int]MouseButton{
	0:  MouseLeft,
	1:  MouseMiddle,
	2:  MouseRight,
	64: MouseWheelUp,
	65: MouseWheelDown,
	66: MouseWheelLeft,
	67: MouseWheelRight,
}

// parseSGRMouse decodes a "CSI < Cb ; Cx ; Cy M" press or "... m" release
// report.
func (p *parser) parseSGRMouse() (Event, error) {
	arg, final, err := p.params(len(p.seq), func(c byte) bool {
		return c == 'M' || c == 'm'
	})
	if err != nil {
		return Event{}, err
	}
	var buf [3]int
	nums, err := decodeParams(arg, buf[:0])
	if err != nil {
		return Event{}, p.fail(ErrUnableToParse, err)
	}
	if len(nums) != 3 {
		return Event{}, p.fail(ErrUnableToParse, nil)
	}

	cb, x, y := nums[0], nums[1], nums[2]
	if b, ok := sgrButtons[cb]; ok {
		if final == 'M' {
			return Press(b, x, y).Event(), nil
		}
		return Release(x, y).Event(), nil
	}
	// cb may be any 16-bit value; only the exact codes are accepted
	switch cb {
	case int(ansi.MouseMotion):
		return Hold(x, y).Event(), nil
	case int(ansi.MouseNoButton):
		return Release(x, y).Event(), nil
	}
	return Event{}, p.fail(ErrUnableToParse, nil)
}

// parseNumbered decodes a "CSI n ; ... F" sequence whose first digit has
// already been read: URXVT (mode 1015) mouse reports, "~" special keys, and
// modified cursor keys.
func (p *parser) parseNumbered() (Event, error) {
	arg, final, err := p.params(len(p.seq)-1, func(c byte) bool {
		return 0x40 <= c && c <= 0x7E
	})
	if err != nil {
		return Event{}, err
	}
	var buf [4]int
	nums, err := decodeParams(arg, buf[:0])
	if err != nil {
		return Event{}, p.fail(ErrUnableToParse, err)
	}

	switch final {
	case 'M':
		if len(nums) == 3 {
			if m, ok := urxvtMouse(nums[0], nums[1], nums[2]); ok {
				return m.Event(), nil
			}
		}
	case '~':
		if len(nums) == 1 {
			if k, ok := tildeKey(nums[0]); ok {
				return k.Event(), nil
			}
		}
	case 'A', 'B', 'C', 'D', 'F', 'H':
		if len(nums) == 2 && nums[0] == 1 {
			if k, ok := modifiedKey(nums[1], final); ok {
				return k.Event(), nil
			}
		}
	}
	return Event{}, p.fail(ErrUnableToParse, nil)
}

func urxvtMouse(cb, x, y int) (Mouse, bool) {
	switch cb {
	case 32:
		return Press(MouseLeft, x, y), true
	case 33:
		return Press(MouseMiddle, x, y), true
	case 34:
		return Press(MouseRight, x, y), true
	case 35:
		return Release(x, y), true
	case 64:
		return Hold(x, y), true
	case 96, 97:
		return Press(MouseWheelUp, x, y), true
	}
	return Mouse{}, false
}

func tildeKey(n int) (Key, bool) {
	switch {
	case n == 1, n == 7:
		return KeyHome, true
	case n == 2:
		return KeyInsert, true
	case n == 3:
		return KeyDelete, true
	case n == 4, n == 8:
		return KeyEnd, true
	case n == 5:
		return KeyPageUp, true
	case n == 6:
		return KeyPageDown, true
	case 11 <= n && n <= 15:
		return F(n - 10), true
	case 17 <= n && n <= 21:
		return F(n - 11), true
	case n == 23, n == 24:
		return F(n - 12), true
	}
	return KeyNone, false
}

// modifiedKey maps an xterm "CSI 1 ; mod final" cursor key; the directional
// constants are laid out as plain, Shift, Alt, Ctrl runs.
func modifiedKey(mod int, final byte) (Key, bool) {
	var dir Key
	switch final {
	case 'D':
		dir = KeyLeft
	case 'C':
		dir = KeyRight
	case 'A':
		dir = KeyUp
	case 'B':
		dir = KeyDown
	case 'H':
		return KeyCtrlHome, mod == 5
	case 'F':
		return KeyCtrlEnd, mod == 5
	}
	switch mod {
	case 2:
		return dir + 1, true
	case 3:
		return dir + 2, true
	case 5:
		return dir + 3, true
	}
	return KeyNone, false
}

// params reads bytes until one satisfying isFinal, returning the sequence
// bytes from start up to (but not including) that final byte.
func (p *parser) params(start int, isFinal func(c byte) bool) ([]byte, byte, error) {
	limit := p.max
	if limit <= 0 {
		limit = MaxSequenceLen
	}
	for {
		c, err := p.next()
		if err != nil {
			return nil, 0, p.readFail(ErrUnableToParse, err)
		}
		if isFinal(c) {
			return p.seq[start : len(p.seq)-1], c, nil
		}
		if len(p.seq)-start >= limit {
			return nil, 0, p.fail(ErrUnableToParse, errSequenceTooLong)
		}
	}
}

// decodeParams decodes ';' separated decimal numbers, appending them to nums.
func decodeParams(arg []byte, nums []int) ([]int, error) {
	for {
		v, n, err := ansi.DecodeNumber(arg)
		if err != nil {
			return nums, err
		}
		nums = append(nums, v)
		if n == len(arg) && arg[n-1] != ';' {
			return nums, nil
		}
		arg = arg[n:]
	}
}
