package rawterm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/rawterm/ansi"
)

type recordContext struct {
	name     string
	log      *[]string
	enterErr error
	exitErr  error
}

func (rc recordContext) Enter(term *Term) error {
	*rc.log = append(*rc.log, "enter "+rc.name)
	return rc.enterErr
}

func (rc recordContext) Exit(term *Term) error {
	*rc.log = append(*rc.log, "exit "+rc.name)
	return rc.exitErr
}

func TestContexts(t *testing.T) {
	var log []string
	rec := func(name string) recordContext { return recordContext{name: name, log: &log} }

	t.Run("order", func(t *testing.T) {
		log = nil
		ctx := Contexts(rec("a"), nil, Contexts(rec("b"), rec("c")))
		require.NoError(t, ctx.Enter(nil))
		require.NoError(t, ctx.Exit(nil))
		assert.Equal(t, []string{
			"enter a", "enter b", "enter c",
			"exit c", "exit b", "exit a",
		}, log)
	})

	t.Run("unwind on enter failure", func(t *testing.T) {
		log = nil
		bad := rec("b")
		bad.enterErr = errors.New("nope")
		ctx := Contexts(rec("a"), bad, rec("c"))
		assert.EqualError(t, ctx.Enter(nil), "nope")
		assert.Equal(t, []string{"enter a", "enter b", "exit a"}, log)
	})

	t.Run("first exit error wins", func(t *testing.T) {
		log = nil
		a, b := rec("a"), rec("b")
		a.exitErr = errors.New("a failed")
		b.exitErr = errors.New("b failed")
		ctx := Contexts(a, b, rec("c"))
		assert.EqualError(t, ctx.Exit(nil), "b failed")
		assert.Equal(t, []string{"exit c", "exit b", "exit a"}, log)
	})

	t.Run("no aliasing", func(t *testing.T) {
		log = nil
		base := Contexts(rec("a"), rec("b"))
		x := Contexts(base, rec("x"))
		y := Contexts(base, rec("y"))
		require.NoError(t, x.Enter(nil))
		require.NoError(t, y.Enter(nil))
		assert.Equal(t, []string{
			"enter a", "enter b", "enter x",
			"enter a", "enter b", "enter y",
		}, log)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Contexts())
	})
}

func TestModeSeqs(t *testing.T) {
	mss := Modes(ansi.ModeMouseSgrExt, ansi.ModeAlternateScreen)
	assert.Equal(t, "\x1b[?1006h\x1b[?1049h", string(mss.Set))
	assert.Equal(t, "\x1b[?1049l\x1b[?1006l", string(mss.Reset))

	mss = mss.AddSeq(ansi.CursorHide)
	assert.Equal(t, "\x1b[?1006h\x1b[?1049h\x1b[?25l", string(mss.Set))
	assert.Equal(t, "\x1b[?25l\x1b[?1049l\x1b[?1006l", string(mss.Reset))
}

func TestTerm_RunWith(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	var log []string
	term := &Term{Output: w}
	term.ModeSeqs = Modes(ansi.ShowCursor)
	term.ctx = Contexts(&term.ModeSeqs, recordContext{name: "x", log: &log})

	require.NoError(t, term.RunWith(func(term *Term) error {
		assert.True(t, term.active)
		log = append(log, "within")
		return term.RunWith(func(term *Term) error {
			log = append(log, "nested")
			return nil
		})
	}))
	assert.False(t, term.active)

	require.NoError(t, term.RunWith(func(term *Term) error {
		return term.RunWithout(func(term *Term) error {
			assert.False(t, term.active)
			log = append(log, "without")
			return nil
		})
	}))

	assert.Equal(t, []string{
		"enter x", "within", "nested", "exit x",
		"enter x", "exit x", "without", "enter x", "exit x",
	}, log)

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t,
		"\x1b[?25h\x1b[?25l"+
			"\x1b[?25h\x1b[?25l\x1b[?25h\x1b[?25l",
		string(out))
}

func TestTerm_RunWith_errors(t *testing.T) {
	var log []string
	bad := recordContext{name: "bad", log: &log, enterErr: errors.New("cannot enter")}
	term := &Term{ctx: Contexts(recordContext{name: "ok", log: &log}, bad)}

	called := false
	err := term.RunWith(func(*Term) error {
		called = true
		return nil
	})
	assert.EqualError(t, err, "cannot enter")
	assert.False(t, called)
	assert.False(t, term.active)
	assert.Equal(t, []string{"enter ok", "enter bad", "exit ok"}, log)

	log = nil
	term.ctx = recordContext{name: "ok", log: &log}
	err = term.RunWith(func(*Term) error { return errors.New("inner") })
	assert.EqualError(t, err, "inner")
	assert.Equal(t, []string{"enter ok", "exit ok"}, log)

	log = nil
	assert.Panics(t, func() {
		_ = term.RunWith(func(*Term) error { panic("boom") })
	})
	assert.Equal(t, []string{"enter ok", "exit ok"}, log)
	assert.False(t, term.active)
}

func TestSignalError(t *testing.T) {
	err := fmt.Errorf("run loop: %w", SigErr(os.Interrupt))
	sig, ok := IsSignal(err)
	assert.True(t, ok)
	assert.Equal(t, os.Interrupt, sig)

	_, ok = IsSignal(errors.New("plain"))
	assert.False(t, ok)
}
