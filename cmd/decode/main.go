package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/rawterm"
	"github.com/jcorbin/rawterm/ansi"
	"github.com/jcorbin/rawterm/internal/logger"
	"github.com/jcorbin/rawterm/termkey"
)

var errGoodbye = errors.New("goodbye")

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	term := rawterm.NewTerm(os.Stdin, os.Stdout)
	log, closeLog, err := cfg.Log.openLog(term.IsTerminal())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	term.SetLogger(log)

	err = run(cfg, log, term)
	if errors.Is(err, errGoodbye) {
		err = nil
	}
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	rawterm.MustRun(err)
}

func run(cfg config, log logger.Logger, term *rawterm.Term) error {
	if !term.IsTerminal() {
		return runBatch(cfg, log, term.Input, term.Output)
	}

	if cfg.Mouse {
		term.AddMode(ansi.MouseReporting...)
	}
	if cfg.Alt {
		term.AddMode(ansi.ModeAlternateScreen)
	}
	if err := term.SetEcho(!cfg.Raw); err != nil {
		return err
	}
	if err := term.SetRaw(cfg.Raw); err != nil {
		return err
	}

	dec := &decodeLoop{cfg: cfg, log: log}
	return term.RunWith(dec.run)
}

// runBatch decodes all of in, printing one event per line.
func runBatch(cfg config, log logger.Logger, in io.Reader, out io.Writer) (err error) {
	bufw := bufio.NewWriter(out)
	defer func() {
		if ferr := bufw.Flush(); err == nil {
			err = ferr
		}
	}()

	dec := termkey.NewDecoder(in)
	dec.MaxSequenceLen = cfg.MaxSequenceLen
	n := 0
	for ev, err := range dec.Events() {
		if err != nil {
			return err
		}
		n++
		if _, err := fmt.Fprintln(bufw, formatEvent(ev, dec.Raw())); err != nil {
			return err
		}
	}
	log.Debug("batch decoded", "events", n)
	return nil
}

type decoded struct {
	ev  termkey.Event
	raw []byte
}

type decodeLoop struct {
	cfg   config
	log   logger.Logger
	out   rawterm.Output
	buf   ansi.Buffer
	prior termkey.Key
}

func (dl *decodeLoop) run(term *rawterm.Term) error {
	if err := dl.out.Enter(term); err != nil {
		return err
	}
	defer dl.out.Exit(term)

	input, err := rawterm.NewAsyncReader(term.Input)
	if err != nil {
		return err
	}
	input.SetLogger(dl.log)

	var (
		stop      = rawterm.Notify(syscall.SIGTERM, syscall.SIGHUP)
		interrupt = rawterm.Notify(syscall.SIGINT)
		resize    = rawterm.Resize()
	)
	for _, sig := range []*rawterm.Signal{&stop, &interrupt, &resize} {
		if err := sig.Open(); err != nil {
			return err
		}
		defer sig.Close()
	}

	writeNote(&dl.buf, "press q to quit, or Ctrl-C twice")
	if err := dl.out.Flush(&dl.buf); err != nil {
		return err
	}

	events := make(chan decoded)
	eg, ctx := errgroup.WithContext(context.Background())

	eg.Go(func() error {
		defer close(events)
		dec := termkey.NewDecoder(input)
		dec.MaxSequenceLen = dl.cfg.MaxSequenceLen
		for ev, err := range dec.Events() {
			if err != nil {
				return err
			}
			select {
			case events <- decoded{ev, bytes.Clone(dec.Raw())}:
			case <-ctx.Done():
				return nil
			}
		}
		dl.log.Info("input ended")
		return nil
	})

	eg.Go(func() error {
		defer input.Close()
		for {
			select {
			case <-ctx.Done():
				return nil

			case sig := <-stop.C:
				return rawterm.SigErr(sig)

			case <-interrupt.C:
				// synthesize and handle a ^C key
				if err := dl.handle(term, decoded{ev: termkey.Ctrl('c').Event()}); err != nil {
					return err
				}

			case <-resize.C:
				if sz, err := term.Size(); err != nil {
					dl.log.Warn("unable to get terminal size", "err", err)
					writeNote(&dl.buf, "resize err:%v", err)
				} else {
					writeNote(&dl.buf, "resize %vx%v", sz.X, sz.Y)
				}
				if err := dl.out.Flush(&dl.buf); err != nil {
					return err
				}

			case in, ok := <-events:
				if !ok {
					return nil
				}
				if err := dl.handle(term, in); err != nil {
					return err
				}
			}
		}
	})

	return eg.Wait()
}

func (dl *decodeLoop) handle(term *rawterm.Term, in decoded) error {
	var note string
	key := in.ev.Key
	if in.ev.Type != termkey.KeyEvent {
		key = termkey.KeyNone
	}

	switch key {
	case termkey.Char('q'):
		return errGoodbye

	case termkey.Ctrl('c'):
		if dl.prior == key {
			return errGoodbye
		}
		note = "<press Ctrl-C again to quit>"

	case termkey.Ctrl('l'):
		if dl.prior == key {
			dl.buf.WriteSeq(ansi.ClearAll, ansi.CursorTo(ansi.Pt(1, 1)))
			key = termkey.KeyNone
		} else {
			note = "<press Ctrl-L again to clear>"
		}

	case termkey.Ctrl('z'):
		if dl.prior == key {
			if err := dl.out.Flush(&dl.buf); err != nil {
				return err
			}
			if err := term.Suspend(); err != nil {
				return err
			}
			key = termkey.KeyNone
		} else {
			note = "<press Ctrl-Z again to suspend>"
		}
	}
	dl.prior = key

	writeEvent(&dl.buf, in.ev, in.raw, note)
	return dl.out.Flush(&dl.buf)
}
