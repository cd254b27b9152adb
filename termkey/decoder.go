package termkey

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Decoder reads events from an input stream, one at a time.
//
// Unlike ParseEvent, a Decoder is tolerant of malformed input: any sequence
// that fails to parse is returned as an UnsupportedEvent carrying its bytes,
// and decoding resumes with the next unread byte.
//
// A Decoder must not be used concurrently, nor should its underlying reader
// be read by anything else while it's in use.
type Decoder struct {
	// MaxSequenceLen limits how many parameter bytes a numbered control
	// sequence may have; defaults to the package MaxSequenceLen when zero.
	MaxSequenceLen int

	src     io.ByteReader
	wrapped bool
	p       parser
}

// NewDecoder creates a decoder reading from r. If r isn't already an
// io.ByteReader, it is wrapped with a bufio.Reader.
//
// When r itself can say how many bytes are ready, with a Buffered or Len
// method, an ESC byte with nothing following it is decoded as KeyEsc, rather
// than waiting for the rest of an escape sequence. Such a count must mean that
// no more input is pending, as with a rawterm.AsyncReader or an in-memory
// reader; the bufio.Reader wrapped around other readers doesn't qualify, since
// its buffer empties at arbitrary read boundaries.
func NewDecoder(r io.Reader) *Decoder {
	if src, ok := r.(io.ByteReader); ok {
		return &Decoder{src: src}
	}
	return &Decoder{src: bufio.NewReader(r), wrapped: true}
}

// ReadEvent reads the next event. It returns io.EOF only when input ends
// at an event boundary; any other read error is returned as is, abandoning
// any partially read sequence.
func (dec *Decoder) ReadEvent() (Event, error) {
	dec.p.seq = dec.p.seq[:0]
	c, err := dec.src.ReadByte()
	if err != nil {
		return Event{}, err
	}
	dec.p.src = dec.src
	dec.p.max = dec.MaxSequenceLen

	if c == 0x1B && dec.drained() {
		dec.p.seq = append(dec.p.seq, c)
		return KeyEsc.Event(), nil
	}

	ev, err := dec.p.parse(c)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return Unsupported(pe.Seq), nil
		}
		return Event{}, err
	}
	return ev, nil
}

// Raw returns the bytes of the most recently read event; the returned slice
// is only valid until the next call to ReadEvent.
func (dec *Decoder) Raw() []byte { return dec.p.seq }

// drained returns true if the source is known to have no more bytes ready.
func (dec *Decoder) drained() bool {
	if dec.wrapped {
		return false
	}
	switch src := dec.src.(type) {
	case interface{ Buffered() int }:
		return src.Buffered() == 0
	case interface{ Len() int }:
		return src.Len() == 0
	}
	return false
}

// Events returns an iterator over the decoder's remaining events. Iteration
// ends when input ends; any other read error is yielded once, after which
// iteration stops.
func (dec *Decoder) Events() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, err := dec.ReadEvent()
			if err == io.EOF {
				return
			}
			if !yield(ev, err) || err != nil {
				return
			}
		}
	}
}

// Keys returns an iterator over the decoder's remaining key events, skipping
// mouse and unsupported events; it ends in the same way as Events.
func (dec *Decoder) Keys() iter.Seq2[Key, error] {
	return func(yield func(Key, error) bool) {
		for ev, err := range dec.Events() {
			if err != nil {
				yield(KeyNone, err)
				return
			}
			if ev.Type == KeyEvent && !yield(ev.Key, nil) {
				return
			}
		}
	}
}

// Events returns an iterator over all events read from r.
func Events(r io.Reader) iter.Seq2[Event, error] {
	return NewDecoder(r).Events()
}

// Keys returns an iterator over all key events read from r.
func Keys(r io.Reader) iter.Seq2[Key, error] {
	return NewDecoder(r).Keys()
}
