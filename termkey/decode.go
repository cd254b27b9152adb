package termkey

import (
	"io"
	"unicode/utf8"
)

// MaxSequenceLen is the default limit on how many parameter bytes a
// numbered or SGR mouse control sequence may accumulate before parsing gives
// up on it.
const MaxSequenceLen = 32

// ParseEvent parses a single event, given its first byte, reading any
// further bytes that it needs from src.
//
// Only as many bytes are read as the event's encoding requires: an ASCII
// character never causes any read, and a failed parse leaves src positioned
// right after the last byte examined. Parse failures are returned as a
// *ParseError; errors from src other than io.EOF are returned as is.
func ParseEvent(first byte, src io.ByteReader) (Event, error) {
	p := parser{src: src, max: MaxSequenceLen}
	return p.parse(first)
}

// parser holds the bytes of the one sequence in flight.
type parser struct {
	src io.ByteReader
	max int
	seq []byte
}

func (p *parser) parse(c byte) (Event, error) {
	p.seq = append(p.seq[:0], c)
	switch {
	case c == 0x1B:
		return p.parseEscape()
	case c == '\n', c == '\r':
		return Char('\n').Event(), nil
	case c == '\t':
		return Char('\t').Event(), nil
	case c == 0x7F:
		return KeyBackspace.Event(), nil
	case 0x01 <= c && c <= 0x1A:
		return Ctrl(rune('a' + c - 0x01)).Event(), nil
	case 0x1C <= c && c <= 0x1F:
		return Ctrl(rune('4' + c - 0x1C)).Event(), nil
	case c == 0x00:
		return KeyNull.Event(), nil
	}
	r, err := p.decodeRune(c)
	if err != nil {
		return Event{}, err
	}
	return Char(r).Event(), nil
}

func (p *parser) next() (byte, error) {
	c, err := p.src.ReadByte()
	if err != nil {
		return 0, err
	}
	p.seq = append(p.seq, c)
	return c, nil
}

// fail returns a *ParseError of the given kind for the current sequence.
func (p *parser) fail(kind, cause error) error {
	return &ParseError{
		Err:   kind,
		Seq:   append([]byte(nil), p.seq...),
		Cause: cause,
	}
}

// readFail handles a read error from within a sequence: running out of input
// is a parse failure, anything else is passed along.
func (p *parser) readFail(kind, err error) error {
	if err == io.EOF {
		return p.fail(kind, io.ErrUnexpectedEOF)
	}
	return err
}

// parseEscape classifies the sequence following an ESC byte.
func (p *parser) parseEscape() (Event, error) {
	c, err := p.next()
	if err != nil {
		return Event{}, p.readFail(ErrUnableToParse, err)
	}
	switch c {
	case 'O':
		c, err := p.next()
		if err != nil {
			return Event{}, p.readFail(ErrUnableToParse, err)
		}
		if 'P' <= c && c <= 'S' {
			return F(int(c-'P') + 1).Event(), nil
		}
		return Event{}, p.fail(ErrUnableToParse, nil)
	case '[':
		return p.parseCSI()
	}
	r, err := p.decodeRune(c)
	if err != nil {
		return Event{}, err
	}
	return Alt(r).Event(), nil
}

// decodeRune decodes a character given its first byte, reading up to 3
// continuation bytes.
func (p *parser) decodeRune(c byte) (rune, error) {
	if c < utf8.RuneSelf {
		return rune(c), nil
	}
	var buf [utf8.UTFMax]byte
	buf[0] = c
	for n := 1; n < len(buf); {
		c, err := p.next()
		if err != nil {
			return 0, p.readFail(ErrInvalidEncoding, err)
		}
		buf[n] = c
		n++
		if utf8.Valid(buf[:n]) {
			r, _ := utf8.DecodeRune(buf[:n])
			return r, nil
		}
	}
	return 0, p.fail(ErrInvalidEncoding, nil)
}
