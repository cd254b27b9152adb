package ansi

import (
	"fmt"
	"strconv"
)

// Seq represents an escape sequence, led either by ESC or CSI, for writing to
// some output. Seq values are immutable: the With family of methods return
// modified copies.
//
// A CSI sequence encodes as:
//
//	ESC [ <arg bytes> <int args separated by ';'> <intermediate bytes> <final byte>
type Seq struct {
	id    Escape
	arg   []byte
	ints  []int
	inter []byte
}

func (id Escape) seq() Seq {
	if id.Size() == 0 {
		panic(fmt.Sprintf("not an ESC or CSI function: %U", rune(id)))
	}
	return Seq{id: id}
}

// With constructs an escape sequence with this identifier and given argument
// byte(s). Panics if the id isn't an ESC or CSI function.
func (id Escape) With(arg ...byte) Seq { return id.seq().With(arg...) }

// WithInts constructs a control sequence with this identifier and the given
// integer argument(s). Panics if the id isn't a CSI function.
func (id Escape) WithInts(args ...int) Seq { return id.seq().WithInts(args...) }

// WithIntermediate constructs a control sequence with this identifier and
// the given intermediate byte(s). Panics if the id isn't a CSI function.
func (id Escape) WithIntermediate(inter ...byte) Seq {
	return id.seq().WithIntermediate(inter...)
}

// WithPoint constructs a control sequence with screen point component values
// added as integer arguments in row,column (Y,X) order.
func (id Escape) WithPoint(p Point) Seq { return id.WithInts(p.Y, p.X) }

// ID returns the sequence's Escape identifier.
func (seq Seq) ID() Escape { return seq.id }

// With returns a copy of the sequence with the given argument bytes added.
// Argument bytes are written immediately after the ESC or CSI introducer,
// e.g. the '?' marking a private mode.
func (seq Seq) With(arg ...byte) Seq {
	if len(arg) > 0 {
		seq.arg = append(seq.arg[:len(seq.arg):len(seq.arg)], arg...)
	}
	return seq
}

// WithInts returns a copy of the sequence with the given integer arguments
// added. These integer arguments will be written after any byte arguments in
// base-10 form, separated by a ';' byte.
// Panics if the sequence identifier is not a CSI function.
func (seq Seq) WithInts(args ...int) Seq {
	if len(args) == 0 {
		return seq
	}
	if _, isCSI := seq.id.CSI(); !isCSI {
		panic("may only provide integer arguments to a CSI-sequence")
	}
	seq.ints = append(seq.ints[:len(seq.ints):len(seq.ints)], args...)
	return seq
}

// WithIntermediate returns a copy of the sequence with the given intermediate
// bytes added; these are written just before the final byte, as with the
// space in DECSCUSR "CSI Ps SP q".
func (seq Seq) WithIntermediate(inter ...byte) Seq {
	if len(inter) > 0 {
		seq.inter = append(seq.inter[:len(seq.inter):len(seq.inter)], inter...)
	}
	return seq
}

// WithPoint returns a copy of the sequence with the given screen point
// component values added as integer arguments in row,column (Y,X) order.
func (seq Seq) WithPoint(p Point) Seq { return seq.WithInts(p.Y, p.X) }

// AppendTo writes the control sequence into the given byte buffer.
func (seq Seq) AppendTo(p []byte) []byte {
	if b, ok := seq.id.CSI(); ok {
		p = append(p, "\x1b["...)
		p = append(p, seq.arg...)
		for i, n := range seq.ints {
			if i > 0 {
				p = append(p, ';')
			}
			p = strconv.AppendInt(p, int64(n), 10)
		}
		p = append(p, seq.inter...)
		return append(p, b)
	}
	if b, ok := seq.id.ESC(); ok {
		p = append(p, '\x1b')
		p = append(p, seq.arg...)
		return append(p, b)
	}
	return p
}

// Size returns an upper bound on the number of bytes required to encode the
// escape sequence.
func (seq Seq) Size() int {
	if seq.id == 0 {
		return 0
	}
	return seq.id.Size() + len(seq.arg) + 11*len(seq.ints) + len(seq.inter)
}

// String returns the encoded sequence, so that it may be written directly
// with fmt.Print and friends.
func (seq Seq) String() string {
	return string(seq.AppendTo(make([]byte, 0, seq.Size())))
}

// GoString returns a debug representation of the sequence.
func (seq Seq) GoString() string {
	return fmt.Sprintf("%v%q%v%q", seq.id, seq.arg, seq.ints, seq.inter)
}
