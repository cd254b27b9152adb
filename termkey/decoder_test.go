package termkey_test

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/rawterm/termkey"
)

// plainReader hides any Len or Buffered method of the underlying reader.
type plainReader struct{ r io.ByteReader }

func (pr plainReader) Read(p []byte) (int, error) {
	for i := range p {
		c, err := pr.r.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = c
	}
	return len(p), nil
}

func (pr plainReader) ReadByte() (byte, error) { return pr.r.ReadByte() }

func TestDecoder_ReadEvent(t *testing.T) {
	type step struct {
		ev  Event
		raw string
	}
	for _, tc := range []struct {
		name string
		in   io.Reader
		out  []step
	}{
		{"tolerant", strings.NewReader("a\x1b[xb\x1b[<0;1;1M\xff\xfe\xfd\xfcc\x1b[2;3~"), []step{
			{Char('a').Event(), "a"},
			{Unsupported([]byte("\x1b[x")), "\x1b[x"},
			{Char('b').Event(), "b"},
			{Press(MouseLeft, 1, 1).Event(), "\x1b[<0;1;1M"},
			{Unsupported([]byte("\xff\xfe\xfd\xfc")), "\xff\xfe\xfd\xfc"},
			{Char('c').Event(), "c"},
			{Unsupported([]byte("\x1b[2;3~")), "\x1b[2;3~"},
		}},
		{"lone esc", strings.NewReader("x\x1b"), []step{
			{Char('x').Event(), "x"},
			{KeyEsc.Event(), "\x1b"},
		}},
		{"buffered lone esc", bufio.NewReader(plainReader{strings.NewReader("x\x1b")}), []step{
			{Char('x').Event(), "x"},
			{KeyEsc.Event(), "\x1b"},
		}},
		{"unbuffered trailing esc", plainReader{strings.NewReader("x\x1b")}, []step{
			{Char('x').Event(), "x"},
			{Unsupported([]byte("\x1b")), "\x1b"},
		}},
		{"truncated sequence", strings.NewReader("\x1b[1;5"), []step{
			{Unsupported([]byte("\x1b[1;5")), "\x1b[1;5"},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dec := NewDecoder(tc.in)
			for i, st := range tc.out {
				ev, err := dec.ReadEvent()
				require.NoError(t, err, "[%d]", i)
				assert.Equal(t, st.ev, ev, "[%d] event", i)
				assert.Equal(t, st.raw, string(dec.Raw()), "[%d] raw", i)
			}
			_, err := dec.ReadEvent()
			assert.Equal(t, io.EOF, err)
		})
	}
}

// chunkReader returns one chunk per Read, like a pipe or tty delivering
// input across several reads.
type chunkReader struct{ chunks []string }

func (cr *chunkReader) Read(p []byte) (int, error) {
	if len(cr.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, cr.chunks[0])
	if cr.chunks[0] = cr.chunks[0][n:]; cr.chunks[0] == "" {
		cr.chunks = cr.chunks[1:]
	}
	return n, nil
}

func TestDecoder_splitReads(t *testing.T) {
	for _, tc := range []struct {
		name   string
		chunks []string
		out    []Event
	}{
		{"csi split after esc", []string{"ab\x1b", "[A"}, []Event{
			Char('a').Event(), Char('b').Event(), KeyUp.Event(),
		}},
		{"mouse split after esc", []string{"\x1b", "[<0;5;5M"}, []Event{
			Press(MouseLeft, 5, 5).Event(),
		}},
		{"mouse split mid sequence", []string{"x\x1b[<0;", "5;5Mq"}, []Event{
			Char('x').Event(), Press(MouseLeft, 5, 5).Event(), Char('q').Event(),
		}},
		{"alt split", []string{"\x1b", "x"}, []Event{
			Alt('x').Event(),
		}},
		{"trailing esc", []string{"a\x1b"}, []Event{
			Char('a').Event(), Unsupported([]byte("\x1b")),
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var evs []Event
			for ev, err := range Events(&chunkReader{chunks: append([]string(nil), tc.chunks...)}) {
				require.NoError(t, err)
				evs = append(evs, ev)
			}
			assert.Equal(t, tc.out, evs)
		})
	}
}

func TestDecoder_MaxSequenceLen(t *testing.T) {
	dec := NewDecoder(strings.NewReader("\x1b[12345~a"))
	dec.MaxSequenceLen = 4
	var evs []Event
	for ev, err := range dec.Events() {
		require.NoError(t, err)
		evs = append(evs, ev)
	}
	assert.Equal(t, []Event{
		Unsupported([]byte("\x1b[1234")),
		Char('5').Event(),
		Char('~').Event(),
		Char('a').Event(),
	}, evs)
}

func TestEvents_readError(t *testing.T) {
	errBroken := errors.New("broken")
	r := io.MultiReader(strings.NewReader("ab\x1b["), &errReader{errBroken})

	var evs []Event
	var errs []error
	for ev, err := range Events(r) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		evs = append(evs, ev)
	}
	assert.Equal(t, keyEvents(Char('a'), Char('b')), evs)
	assert.Equal(t, []error{errBroken}, errs)
}

type errReader struct{ err error }

func (er *errReader) Read([]byte) (int, error) { return 0, er.err }

func TestEvents_break(t *testing.T) {
	r := strings.NewReader("abc")
	for ev := range Events(r) {
		assert.Equal(t, Char('a').Event(), ev)
		break
	}
	assert.Equal(t, 2, r.Len(), "must not read past the event consumed")
}

func TestKeys(t *testing.T) {
	in := "q\x1b[M\x20\x21\x21\x1b[?\x03\x1b[32;1;1M\x1b[H"
	var keys []Key
	for k, err := range Keys(strings.NewReader(in)) {
		require.NoError(t, err)
		keys = append(keys, k)
	}
	assert.Equal(t, []Key{Char('q'), Ctrl('c'), KeyHome}, keys)
}

func TestKeys_readError(t *testing.T) {
	errBroken := errors.New("broken")
	r := io.MultiReader(bytes.NewReader([]byte("x")), &errReader{errBroken})
	var got []error
	var keys []Key
	for k, err := range Keys(r) {
		keys = append(keys, k)
		got = append(got, err)
	}
	assert.Equal(t, []Key{Char('x'), KeyNone}, keys)
	assert.Equal(t, []error{nil, errBroken}, got)
}
