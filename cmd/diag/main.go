package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/mattn/go-runewidth"

	"github.com/jcorbin/rawterm"
	"github.com/jcorbin/rawterm/ansi"
	"github.com/jcorbin/rawterm/internal/logger"
	"github.com/jcorbin/rawterm/termkey"
)

var errInt = errors.New("interrupt")

var (
	logFile      = flag.String("log", "", "debug log file (default none)")
	doReset      = flag.Bool("reset", false, "enable terminal resetting")
	noRaw        = flag.Bool("no-raw", false, "disable raw mode")
	useAltScreen = flag.Bool("alt-screen", false, "enable alternate screen mode")
	useMouse     = flag.Bool("mouse", false, "enable mouse reporting")
	askPassword  = flag.Bool("password", false, "read a password, report its length, and exit")
)

func main() {
	flag.Parse()

	log := logger.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "couldn't open log file %q: %v\n", *logFile, err)
			os.Exit(1)
		}
		defer f.Close()
		log = logger.New(logger.Options{Buffer: f, Level: logger.DebugLevel})
	}

	term, closeTTY, err := rawterm.NewTTYTerm()
	rawterm.MustRun(err)
	defer closeTTY()
	term.SetLogger(log)

	if *askPassword {
		fmt.Fprint(term, "password: ")
		pass, ok, err := term.ReadPassword()
		rawterm.MustRun(err)
		if !ok {
			fmt.Fprintln(term, "aborted")
		} else {
			fmt.Fprintf(term, "read %v runes\n", len([]rune(pass)))
		}
		return
	}

	if *useAltScreen {
		term.AddMode(ansi.ModeAlternateScreen)
	}
	if *useMouse {
		term.AddMode(ansi.MouseReporting...)
	}
	if *doReset {
		term.ModeSeqs = term.ModeSeqs.AddSeq(ansi.SGRReset, ansi.ResetScrollRegion)
	}
	if err := term.SetRaw(!*noRaw); err != nil {
		rawterm.MustRun(err)
	}

	err = term.RunWith(func(term *rawterm.Term) error {
		d := diag{term: term, log: log}
		return d.run()
	})
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, errInt):
		fmt.Println(err)
	default:
		rawterm.MustRun(err)
	}
}

type diag struct {
	term *rawterm.Term
	log  logger.Logger
	out  rawterm.Output
	buf  ansi.Buffer

	size   image.Point
	cursor ansi.Point
	mouse  termkey.Mouse
}

type input struct {
	ev  termkey.Event
	raw []byte
	err error
}

func (d *diag) run() error {
	if err := d.out.Enter(d.term); err != nil {
		return err
	}
	defer d.out.Exit(d.term)

	// the initial query must finish before anything else reads input
	if pt, err := d.term.CursorPos(); err != nil {
		d.log.Warn("initial cursor position unknown", "err", err)
	} else {
		d.cursor = pt
	}

	resize := rawterm.Resize()
	if err := resize.Open(); err != nil {
		return err
	}
	defer resize.Close()

	ar, err := rawterm.NewAsyncReader(d.term.Input)
	if err != nil {
		return err
	}
	ar.SetLogger(d.log)
	defer ar.Close()

	inputs := make(chan input)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(inputs)
		dec := termkey.NewDecoder(ar)
		for ev, err := range dec.Events() {
			select {
			case inputs <- input{ev: ev, raw: bytes.Clone(dec.Raw()), err: err}:
			case <-done:
				return
			}
		}
	}()

	d.updateSize()
	if err := d.flush(); err != nil {
		return err
	}
	for {
		select {
		case <-resize.C:
			d.updateSize()
		case in, ok := <-inputs:
			if !ok {
				return io.EOF
			}
			if in.err != nil {
				return in.err
			}
			if err := d.handleInput(in.ev, in.raw); err != nil {
				return err
			}
		}
		if err := d.flush(); err != nil {
			return err
		}
	}
}

func (d *diag) updateSize() {
	sz, err := d.term.Size()
	if err != nil {
		d.log.Warn("unable to get terminal size", "err", err)
		return
	}
	d.size = sz
}

func (d *diag) handleInput(ev termkey.Event, raw []byte) error {
	switch ev.Type {
	case termkey.MouseEvent:
		d.mouse = ev.Mouse
		return nil

	case termkey.UnsupportedEvent:
		// cursor position reports aren't key events, but come back here
		if n := len(raw); n > 3 && raw[n-1] == 'R' && bytes.HasPrefix(raw, []byte("\x1b[")) {
			if pt, err := ansi.DecodeCursorPosition(raw[2 : n-1]); err == nil {
				d.cursor = pt
				return nil
			}
		}
		_, _ = fmt.Fprintf(&d.buf, "%q\r\n", raw)
		return nil
	}

	switch key := ev.Key; key {
	// advance line on <Enter>
	case termkey.Char('\n'):
		_, _ = d.buf.WriteString("\r\n")

	// simulate EOF on Ctrl-D
	case termkey.Ctrl('d'):
		_, _ = d.buf.WriteString("^D\r\n")
		return io.EOF

	// stop on Ctrl-C
	case termkey.Ctrl('c'):
		_, _ = d.buf.WriteString("^C\r\n")
		return errInt

	// query cursor position on Ctrl-P
	case termkey.Ctrl('p'):
		d.buf.WriteSeq(ansi.RequestCursorPosition)

	// suspend on Ctrl-Z
	case termkey.Ctrl('z'):
		_, _ = d.buf.WriteString("^Z\r\n")
		if err := d.flush(); err != nil {
			return err
		}
		if err := d.term.Suspend(); err != nil {
			return err
		}
		_, _ = d.buf.WriteString("resumed\r\n")

	default:
		if key.Kind() == termkey.CharKey {
			_, _ = d.buf.WriteRune(key.Rune())
		} else {
			_, _ = fmt.Fprintf(&d.buf, "<%v>", key)
		}
	}
	return nil
}

func (d *diag) flush() error {
	d.buf.WriteSeq(ansi.CursorSave)
	d.drawRightAlignedLines([]string{
		fmt.Sprintf("Size: %v", d.size),
		fmt.Sprintf("Cursor: %v (^P)", d.cursor),
		fmt.Sprintf("Mouse: %v", d.mouse),
	})
	d.buf.WriteSeq(ansi.CursorRestore)
	return d.out.Flush(&d.buf)
}

func (d *diag) drawRightAlignedLines(lines []string) {
	if d.size.X <= 0 {
		return
	}
	var width int
	for _, line := range lines {
		if n := runewidth.StringWidth(line); width < n {
			width = n
		}
	}
	if width > d.size.X {
		width = d.size.X
	}
	for i, line := range lines {
		line = runewidth.FillLeft(runewidth.Truncate(line, width, ""), width)
		d.buf.WriteSeq(ansi.CursorTo(ansi.Pt(1+d.size.X-width, 1+i)), ansi.ClearUntilNewline)
		_, _ = d.buf.WriteString(line)
	}
}
