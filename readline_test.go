package rawterm

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rawterm/termkey"
)

func TestReadLine(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		line string
		ok   bool
		rest string
	}{
		{name: "newline", in: "hello\nworld", line: "hello", ok: true, rest: "world"},
		{name: "return", in: "hello\rworld", line: "hello", ok: true, rest: "world"},
		{name: "eof", in: "hello", line: "hello", ok: true},
		{name: "empty", in: "", line: "", ok: true},
		{name: "backspace", in: "helo\x7flo\n", line: "hello", ok: true},
		{name: "backspace rune", in: "café\x7fe\n", line: "cafe", ok: true},
		{name: "backspace empty", in: "\x7f\x7fok\n", line: "ok", ok: true},
		{name: "utf8", in: "éŷ¤£€\n", line: "éŷ¤£€", ok: true},
		{name: "ctrl-c", in: "secr\x03et\n", ok: false, rest: "et\n"},
		{name: "ctrl-d", in: "\x04", ok: false},
		{name: "nul", in: "x\x00y", ok: false, rest: "y"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := strings.NewReader(tc.in)
			line, ok, err := ReadLine(r)
			require.NoError(t, err)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.line, line)
			rest, _ := io.ReadAll(r)
			assert.Equal(t, tc.rest, string(rest))
		})
	}
}

func TestReadLine_plainReader(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("one\ntwo\n"))
	line, ok, err := ReadLine(iotest.OneByteReader(r))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "one", line)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "two\n", string(rest))
}

func TestReadLine_errors(t *testing.T) {
	_, ok, err := ReadLine(strings.NewReader("ab\xffc\n"))
	assert.False(t, ok)
	assert.ErrorIs(t, err, termkey.ErrInvalidEncoding)

	boom := errors.New("boom")
	_, ok, err = ReadLine(iotest.ErrReader(boom))
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}
