package ansi

import (
	"bytes"
	"io"
)

// Buffer implements a deferred buffer of ANSI output, providing
// convenience methods for writing escape sequences.
type Buffer struct {
	buf bytes.Buffer
}

// Len returns the number of unwritten bytes in the buffer.
func (b *Buffer) Len() int {
	return b.buf.Len()
}

// Reset the internal buffer.
func (b *Buffer) Reset() {
	b.buf.Reset()
}

// Bytes returns the unwritten bytes; valid only until the next buffer
// modification.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes all bytes from the internal buffer to the given io.Writer.
func (b *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	return b.buf.WriteTo(w)
}

// WriteSeq writes one or more ANSI escape sequences to the internal buffer,
// returning the number of bytes written. Skips any zero sequences provided.
func (b *Buffer) WriteSeq(seqs ...Seq) int {
	need := 0
	for i := range seqs {
		need += seqs[i].Size()
	}
	b.buf.Grow(need)
	p := b.buf.Bytes()
	p = p[len(p):]
	for i := range seqs {
		p = seqs[i].AppendTo(p)
	}
	n, _ := b.buf.Write(p)
	return n
}

// WriteESC writes one or more bare escape functions to the internal buffer,
// returning the number of bytes written.
func (b *Buffer) WriteESC(ids ...Escape) int {
	var tmp [3]byte
	n := 0
	for _, id := range ids {
		m, _ := b.buf.Write(id.AppendTo(tmp[:0]))
		n += m
	}
	return n
}

// Write to the internal buffer.
func (b *Buffer) Write(p []byte) (n int, err error) {
	return b.buf.Write(p)
}

// WriteString to the internal buffer.
func (b *Buffer) WriteString(s string) (n int, err error) {
	return b.buf.WriteString(s)
}

// WriteRune to the internal buffer.
func (b *Buffer) WriteRune(r rune) (n int, err error) {
	return b.buf.WriteRune(r)
}

// WriteByte to the internal buffer.
func (b *Buffer) WriteByte(c byte) error {
	return b.buf.WriteByte(c)
}
