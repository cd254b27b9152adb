package rawterm

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jcorbin/rawterm/ansi"
	"github.com/jcorbin/rawterm/internal/logger"
)

// NewTerm creates a new Term attached to the given input and output files,
// and with optional associated context.
func NewTerm(in, out *os.File, cs ...Context) *Term {
	term := &Term{Input: in, Output: out}
	term.ctx = Contexts(&term.Attr, &term.ModeSeqs, Contexts(cs...))
	return term
}

// Term combines a pair of terminal file handles with attribute control and
// further Context-ual state.
type Term struct {
	Input  *os.File
	Output *os.File
	Attr
	ModeSeqs

	log    logger.Logger
	active bool
	ctx    Context
}

// SetLogger sets a logger for lifecycle events, like suspension.
func (term *Term) SetLogger(log logger.Logger) { term.log = log }

func (term *Term) logger() logger.Logger {
	if term.log == nil {
		return logger.Discard
	}
	return term.log
}

// IsTerminal returns true only if both terminal input and output file handles
// are both connected to a valid terminal.
func (term *Term) IsTerminal() bool {
	return IsTerminal(term.Input) && IsTerminal(term.Output)
}

// AddMode adds ansi modes to be set when the terminal context is entered,
// and reset when it is exited. It has no immediate effect on an active
// terminal.
func (term *Term) AddMode(ms ...ansi.Mode) {
	term.ModeSeqs = term.ModeSeqs.AddMode(ms...)
}

// Write writes to the terminal's output.
func (term *Term) Write(p []byte) (int, error) {
	return term.Output.Write(p)
}

// RunWith runs the given function within the terminal's context, Enter()ing it
// if necessary, and Exit()ing it if Enter() was called after the given
// function returns. Exit() is called even if the within function returns an
// error or panics.
func (term *Term) RunWith(within func(*Term) error) (err error) {
	if term.active {
		return within(term)
	}
	if term.ctx == nil {
		term.ctx = Contexts(&term.Attr, &term.ModeSeqs)
	}
	if err = term.ctx.Enter(term); err != nil {
		return err
	}
	term.active = true
	defer func() {
		if cerr := term.ctx.Exit(term); cerr == nil {
			term.active = false
		} else if err == nil {
			err = cerr
		}
	}()
	return within(term)
}

// RunWithout runs the given function without the terminal's context, Exit()ing
// it if necessary, and Enter()ing it if deactivation was necessary.
// Re-Enter() is not called is not done if a non-nil error is returned, or if
// the without function panics.
func (term *Term) RunWithout(without func(*Term) error) (err error) {
	if !term.active {
		return without(term)
	}
	if err = term.ctx.Exit(term); err == nil {
		term.active = false
		if err = without(term); err == nil {
			if err = term.ctx.Enter(term); err == nil {
				term.active = true
			}
		}
	}
	return err
}

// Suspend signals the process to stop, and blocks on its later restart. If the
// terminal is currently active, this is done under RunWithout to restore prior
// terminal state.
func (term *Term) Suspend() error {
	if term.active {
		return term.RunWithout((*Term).Suspend)
	}

	cont := make(chan os.Signal, 1)
	signal.Notify(cont, syscall.SIGCONT)
	defer signal.Stop(cont)
	term.logger().Info("suspending")
	if err := syscall.Kill(0, syscall.SIGTSTP); err != nil {
		return err
	}
	sig := <-cont
	term.logger().Info("resumed", "signal", sig)
	return nil
}

// SigErr returns an error that carries a received signal, for returning out
// of a run loop; MustRun exits quietly for such errors.
func SigErr(sig os.Signal) error { return signalError{sig} }

type signalError struct{ sig os.Signal }

func (se signalError) Error() string { return "signal: " + se.sig.String() }

// IsSignal returns the signal carried by an error from SigErr.
func IsSignal(err error) (os.Signal, bool) {
	var se signalError
	if errors.As(err, &se) {
		return se.sig, true
	}
	return nil, false
}

// MustRun is a useful wrapper for the outermost Term.RunWith: if the error
// value carries a signal, the process exits with status 128 + signal number,
// otherwise any non-nil error is printed and the process exits with status 1.
func MustRun(err error) {
	if err == nil {
		return
	}
	if sig, ok := IsSignal(err); ok {
		if n, ok := sig.(syscall.Signal); ok {
			os.Exit(128 + int(n))
		}
		os.Exit(1)
	}
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
