package rawterm

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rawterm/ansi"
)

// fakeTerminal answers cursor position requests written to it by writing
// reply into the input pipe.
type fakeTerminal struct {
	mu    sync.Mutex
	in    *os.File
	reply string
	got   bytes.Buffer
}

func (ft *fakeTerminal) Write(p []byte) (int, error) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.got.Write(p)
	if bytes.Contains(p, []byte("\x1b[6n")) && ft.reply != "" {
		if _, err := io.WriteString(ft.in, ft.reply); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func TestCursorPos(t *testing.T) {
	for _, tc := range []struct {
		name  string
		reply string
		pt    ansi.Point
		err   string
	}{
		{name: "report", reply: "\x1b[12;34R", pt: ansi.Pt(34, 12)},
		{name: "after other input", reply: "abc\x1b[A\x1b[1;1R", pt: ansi.Pt(1, 1)},
		{name: "typed R first", reply: "R\x1b[5;6R", pt: ansi.Pt(6, 5)},
		{name: "typed text with R first", reply: "xR y\x1b[5;6R", pt: ansi.Pt(6, 5)},
		{name: "malformed", reply: "\x1b[;5R", err: `rawterm: invalid cursor position report ";5"`},
		{name: "zero", reply: "\x1b[0;5R", err: `rawterm: invalid cursor position report "0;5"`},
		{name: "no csi", reply: "5;5R", err: `rawterm: invalid cursor position report "5;5R"`},
		{name: "no answer", err: ErrNoCursorPosition.Error()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, w := newPipe(t)
			ft := &fakeTerminal{in: w, reply: tc.reply}
			pt, err := CursorPos(r, ft)
			assert.Equal(t, "\x1b[6n", ft.got.String())
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.pt, pt)
		})
	}
}

func TestCursorPos_leavesInput(t *testing.T) {
	r, w := newPipe(t)
	ft := &fakeTerminal{in: w, reply: "\x1b[2;3Rmore"}
	pt, err := CursorPos(r, ft)
	require.NoError(t, err)
	assert.Equal(t, ansi.Pt(3, 2), pt)

	require.NoError(t, w.Close())
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "more", string(rest))
}

func TestCursorPos_timeout(t *testing.T) {
	defer func(prior time.Duration) { ControlSequenceTimeout = prior }(ControlSequenceTimeout)
	ControlSequenceTimeout = 5 * time.Millisecond

	r, w := newPipe(t)
	ft := &fakeTerminal{in: w, reply: "\x1b[2;3"}
	t0 := time.Now()
	_, err := CursorPos(r, ft)
	assert.ErrorIs(t, err, ErrNoCursorPosition)
	assert.Less(t, time.Since(t0), time.Second)
}
