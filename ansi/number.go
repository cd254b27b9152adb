package ansi

import (
	"errors"
	"fmt"
)

const maxNumber = 0xFFFF

var (
	errNoNumber   = errors.New("missing number")
	errNotDigit   = errors.New("not a digit")
	errRange      = errors.New("number out of range")
	errExtraBytes = errors.New("unexpected extra bytes")
)

// DecodeNumber decodes a base-10 control sequence parameter from the front of
// p, returning its value and how many bytes were consumed, including any
// single ';' separator that follows the number. Values greater than 65535 are
// rejected.
func DecodeNumber(p []byte) (v, n int, err error) {
	for ; n < len(p); n++ {
		c := p[n]
		if c == ';' {
			if n == 0 {
				return 0, 0, errNoNumber
			}
			return v, n + 1, nil
		}
		if c < '0' || c > '9' {
			return 0, 0, fmt.Errorf("%w: %q", errNotDigit, c)
		}
		v = 10*v + int(c-'0')
		if v > maxNumber {
			return 0, 0, errRange
		}
	}
	if n == 0 {
		return 0, 0, errNoNumber
	}
	return v, n, nil
}

// DecodeCursorPosition decodes the argument bytes of a Cursor Position Report
// "CSI row ; col R", i.e. just the "row;col" part.
func DecodeCursorPosition(arg []byte) (Point, error) {
	row, n, err := DecodeNumber(arg)
	if err == nil && (n == len(arg) || arg[n-1] != ';') {
		err = errNoNumber
	}
	if err != nil {
		return ZP, fmt.Errorf("invalid cursor position report %q: %w", arg, err)
	}
	col, m, err := DecodeNumber(arg[n:])
	if err == nil && (n+m != len(arg) || arg[len(arg)-1] == ';') {
		err = errExtraBytes
	}
	if err == nil && (row < 1 || col < 1) {
		err = errRange
	}
	if err != nil {
		return ZP, fmt.Errorf("invalid cursor position report %q: %w", arg, err)
	}
	return Pt(col, row), nil
}
