package rawterm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

var errOutputAttached = errors.New("rawterm.Output may only be attached to one terminal")

// Output writes buffered output, like an ansi.Buffer, to a terminal file. As
// a Context, it attaches to the Term's Output file while active, and does
// nothing otherwise. It is not safe for concurrent use.
type Output struct {
	File    *os.File
	Flushed int

	stalls []time.Duration
}

// TrackStalls allocates room to record up to n stall times; with n == 0,
// stalls aren't recorded.
//
// A stall happens when a Flush on a non-blocking file hits EWOULDBLOCK, and
// must fall back to a blocking write. Once the record is full, further stalls
// go unmeasured until Stalls consumes it.
func (out *Output) TrackStalls(n int) {
	if n == 0 {
		out.stalls = nil
	} else {
		out.stalls = make([]time.Duration, 0, n)
	}
}

// Stalls returns recorded stall times, resetting the record if it is full or
// if consume is true. The returned slice is only valid until the next Flush.
func (out *Output) Stalls(consume bool) []time.Duration {
	stalls := out.stalls
	if stalls != nil && (len(stalls) == cap(stalls) || consume) {
		out.stalls = stalls[:0]
	}
	return stalls
}

// Enter attaches to the terminal's output file.
func (out *Output) Enter(term *Term) error {
	if out.File != nil && out.File != term.Output {
		return errOutputAttached
	}
	out.File = term.Output
	return nil
}

// Exit detaches from the terminal's output file.
func (out *Output) Exit(term *Term) error {
	if out.File == term.Output {
		out.File = nil
	}
	return nil
}

// Flush writes wer to the attached file, if any; an ansi.Buffer is drained
// by this. Flushed is set to the number of bytes written.
func (out *Output) Flush(wer io.WriterTo) error {
	if out.File == nil {
		return nil
	}
	n, err := wer.WriteTo(out.File)
	out.Flushed = int(n)
	if errors.Is(err, unix.EAGAIN) {
		return out.blockingFlush(wer)
	}
	return err
}

func (out *Output) blockingFlush(wer io.WriterTo) error {
	if out.stalls != nil {
		defer func(t0 time.Time) {
			if len(out.stalls) < cap(out.stalls) {
				out.stalls = append(out.stalls, time.Since(t0))
			}
		}(time.Now())
	}

	fd := int(out.File.Fd())
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return fmt.Errorf("rawterm: get output flags: %w", err)
	}
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags&^unix.O_NONBLOCK); err != nil {
		return fmt.Errorf("rawterm: set output blocking: %w", err)
	}

	n, err := wer.WriteTo(out.File)
	out.Flushed += int(n)

	if _, ferr := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags); ferr != nil && err == nil {
		err = fmt.Errorf("rawterm: restore output flags: %w", ferr)
	}
	return err
}
