package ansi

import "fmt"

// Escape identifies an ANSI escape sequence or control sequence function as a
// Unicode codepoint within the Private Use Area:
//
//	U+EF20-U+EF7E: ESC functions, U+EF00 + the final byte
//	U+EFC0-U+EFFE: CSI functions, U+EF80 + the final byte
//
// For example the control sequence for CUrsor Backwards (CUB) is CSI+D,
// typically encoded as "\x1b[D" identified by U+EFC4 = U+EF80 + 'D'.
type Escape rune

// ESC returns an ESCape sequence identifier named by the given byte.
func ESC(b byte) Escape { return Escape(0xEF00 | 0x7F&rune(b)) }

// CSI returns a CSI control sequence identifier named by the given byte.
func CSI(b byte) Escape { return Escape(0xEF80 | 0x7F&rune(b)) }

// IsEscape returns true if the escape value isn't a normal rune; that is if
// it's in the range U+EF00 thru U+EFFF.
func (id Escape) IsEscape() bool { return 0xEF00 <= id && id <= 0xEFFF }

// ESC returns the byte name of the ESCape sequence identified by this escape
// value, if any; returns 0 false otherwise.
func (id Escape) ESC() (byte, bool) {
	if 0xEF20 <= id && id <= 0xEF7E {
		return byte(id & 0x7F), true
	}
	return 0, false
}

// CSI returns the byte name of the CSI control sequence identified by this
// escape value, if any; returns 0 and false otherwise.
func (id Escape) CSI() (byte, bool) {
	if 0xEFC0 <= id && id <= 0xEFFE {
		return byte(id & 0x7F), true
	}
	return 0, false
}

// String returns "ESC+b" or "CSI+b" for escape identifiers, and normal
// quoted rune notation for anything else.
func (id Escape) String() string {
	if b, ok := id.ESC(); ok {
		return "ESC+" + string(b)
	}
	if b, ok := id.CSI(); ok {
		return "CSI+" + string(b)
	}
	return fmt.Sprintf("%q", rune(id))
}

// AppendTo appends the escape code, with no arguments, to the given byte
// slice.
func (id Escape) AppendTo(p []byte) []byte {
	if b, ok := id.ESC(); ok {
		return append(p, '\x1b', b)
	}
	if b, ok := id.CSI(); ok {
		return append(p, '\x1b', '[', b)
	}
	return p
}

// Size returns the number of bytes required to encode the escape.
func (id Escape) Size() int {
	switch {
	case 0xEF20 <= id && id <= 0xEF7E:
		return 2
	case 0xEFC0 <= id && id <= 0xEFFE:
		return 3
	}
	return 0
}
