package rawterm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jcorbin/rawterm/ansi"
)

// ControlSequenceTimeout bounds how long CursorPos waits for the terminal to
// answer.
var ControlSequenceTimeout = 100 * time.Millisecond

// ErrNoCursorPosition is returned by CursorPos when the terminal doesn't
// answer a position request in time.
var ErrNoCursorPosition = errors.New("rawterm: no cursor position report")

// CursorPos requests the cursor position from a terminal, by writing a device
// status report request to out, and then decoding the position report read
// from in. The terminal should be in raw mode, so that the report is neither
// echoed nor line buffered.
//
// Input is read up to each 'R' byte, until what has been read ends with a
// complete "ESC [ row ; col R" report; any input that precedes the report is
// discarded. If no such report arrives before ControlSequenceTimeout, the
// error is ErrNoCursorPosition, or else the reason the last 'R' terminated
// input wasn't a valid report.
func CursorPos(in io.Reader, out io.Writer) (ansi.Point, error) {
	if _, err := io.WriteString(out, ansi.RequestCursorPosition.String()); err != nil {
		return ansi.ZP, fmt.Errorf("rawterm: request cursor position: %w", err)
	}

	var (
		buf      []byte
		lastErr  error
		deadline = time.Now().Add(ControlSequenceTimeout)
	)
	for {
		var done bool
		var err error
		buf, done, err = readUntilReport(in, buf, deadline)
		if err != nil {
			return ansi.ZP, err
		}
		if !done {
			break
		}
		pt, err := parseCursorReport(buf)
		if err == nil {
			return pt, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return ansi.ZP, lastErr
	}
	return ansi.ZP, ErrNoCursorPosition
}

// readUntilReport appends input to buf up to and including the next 'R',
// returning done=false if the deadline passes first. Nothing after the 'R' is
// consumed.
func readUntilReport(in io.Reader, buf []byte, deadline time.Time) (_ []byte, done bool, _ error) {
	ar, err := AsyncReaderUntil(in, 'R')
	if err != nil {
		return buf, false, err
	}
	defer ar.Close()
	for {
		wait := time.Until(deadline)
		if wait <= 0 {
			return buf, false, nil
		}
		ar.PollTimeout = wait
		var b [1]byte
		n, err := ar.Read(b[:])
		if n == 0 {
			if err != nil {
				return buf, false, fmt.Errorf("rawterm: read cursor position: %w", err)
			}
			continue
		}
		buf = append(buf, b[0])
		if b[0] == 'R' {
			return buf, true, nil
		}
	}
}

func parseCursorReport(buf []byte) (ansi.Point, error) {
	i := bytes.LastIndex(buf, []byte("\x1b["))
	if i < 0 {
		return ansi.ZP, fmt.Errorf("rawterm: invalid cursor position report %q", buf)
	}
	arg := buf[i+2 : len(buf)-1]
	pt, err := ansi.DecodeCursorPosition(arg)
	if err != nil {
		return ansi.ZP, fmt.Errorf("rawterm: %w", err)
	}
	return pt, nil
}

// CursorPos requests the current cursor position from the terminal; it must
// be called within RunWith, so that the terminal is in raw mode.
func (term *Term) CursorPos() (ansi.Point, error) {
	return CursorPos(term.Input, term.Output)
}
