package rawterm

import (
	"os"
	"os/signal"
	"syscall"
)

// Signal is a Term Context that relays os signals to its channel C.
type Signal struct {
	Notify []os.Signal
	C      chan os.Signal
}

// Notify is a convenience constructor for Signal values.
func Notify(notify ...os.Signal) Signal {
	return Signal{Notify: notify}
}

// Resize returns a Signal for terminal size changes (SIGWINCH).
func Resize() Signal { return Notify(syscall.SIGWINCH) }

// Interrupt returns a Signal for the usual requests to stop: SIGINT,
// SIGTERM, and SIGHUP. Note that in raw mode the terminal doesn't generate
// SIGINT for Ctrl-C; it arrives as input instead.
func Interrupt() Signal { return Notify(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP) }

// Enter calls Open, ensuring signal notification is started.
func (sig *Signal) Enter(term *Term) error { return sig.Open() }

// Exit does nothing, so that notification continues across a temporary
// teardown, as when suspending; call Close to stop it.
func (sig *Signal) Exit(term *Term) error { return nil }

// Open allocates a signal channel (of capacity 1) if none has been allocated
// already, and then calls signal.Notify if sig.Notify is non-empty.
func (sig *Signal) Open() error {
	if sig.C == nil {
		sig.C = make(chan os.Signal, 1)
	}
	if len(sig.Notify) > 0 {
		signal.Notify(sig.C, sig.Notify...)
	}
	return nil
}

// Close stops notification to any non-nil channel, and nils it out.
func (sig *Signal) Close() error {
	if sig.C != nil {
		signal.Stop(sig.C)
		sig.C = nil
	}
	return nil
}
