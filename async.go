package rawterm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/cancelreader"

	"github.com/jcorbin/rawterm/internal/logger"
)

// AsyncReader defaults.
const (
	DefaultAsyncQueue  = 32
	DefaultPollTimeout = time.Millisecond

	asyncReadSize = 128
	asyncStopWait = 100 * time.Millisecond
)

// AsyncReader reads from a source, typically a terminal, on a background
// goroutine, so that Read never blocks for longer than PollTimeout.
//
// Data is handed over through a bounded queue of read chunks; once the queue
// is full the background goroutine waits for the consumer, so that no input
// is dropped. An AsyncReader also implements io.ByteReader, whose ReadByte
// does block, and a Buffered method reporting how many bytes are ready; this
// makes it a suitable source for a termkey.Decoder.
//
// Only one goroutine may read from an AsyncReader; Close may be called from
// any goroutine.
type AsyncReader struct {
	// PollTimeout bounds how long Read waits for more input.
	PollTimeout time.Duration

	cr     cancelreader.CancelReader
	closer io.Closer
	log    logger.Logger

	until bool
	delim byte

	ch   chan asyncChunk
	stop chan struct{}
	done chan struct{}
	once sync.Once

	cur []byte
	err error
}

type asyncChunk struct {
	b   []byte
	err error
}

// NewAsyncReader starts reading r in the background.
func NewAsyncReader(r io.Reader) (*AsyncReader, error) {
	return newAsyncReader(r, false, 0, asyncReadSize)
}

// AsyncReaderUntil is like NewAsyncReader, but stops reading after the first
// delim byte, leaving anything after it unread in r.
func AsyncReaderUntil(r io.Reader, delim byte) (*AsyncReader, error) {
	return newAsyncReader(r, true, delim, 1)
}

// AsyncTTY opens the controlling terminal and reads it in the background;
// closing the returned reader closes the tty.
func AsyncTTY() (*AsyncReader, error) {
	f, err := OpenTTY()
	if err != nil {
		return nil, err
	}
	ar, err := NewAsyncReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	ar.closer = f
	return ar, nil
}

func newAsyncReader(r io.Reader, until bool, delim byte, readSize int) (*AsyncReader, error) {
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("rawterm: async reader: %w", err)
	}
	ar := &AsyncReader{
		PollTimeout: DefaultPollTimeout,
		cr:          cr,
		log:         logger.Discard,
		until:       until,
		delim:       delim,
		ch:          make(chan asyncChunk, DefaultAsyncQueue),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	if f, ok := r.(*os.File); ok {
		ar.log = logger.With(ar.log, "file", f.Name())
	}
	go ar.readLoop(readSize)
	return ar, nil
}

// SetLogger sets a logger for background reader lifecycle events.
func (ar *AsyncReader) SetLogger(log logger.Logger) { ar.log = log }

func (ar *AsyncReader) readLoop(readSize int) {
	defer close(ar.done)
	defer close(ar.ch)
	for {
		b := make([]byte, readSize)
		n, err := ar.cr.Read(b)
		if n > 0 {
			b = b[:n]
			last := false
			if ar.until {
				if i := bytes.IndexByte(b, ar.delim); i >= 0 {
					b, last = b[:i+1], true
				}
			}
			if !ar.send(asyncChunk{b: b}) || last {
				return
			}
		}
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				ar.log.Debug("async read canceled")
				return
			}
			ar.log.Debug("async read stopped", "err", err)
			ar.send(asyncChunk{err: err})
			return
		}
	}
}

func (ar *AsyncReader) send(c asyncChunk) bool {
	select {
	case ar.ch <- c:
		return true
	case <-ar.stop:
		if len(c.b) > 0 {
			ar.log.Debug("async input dropped after close", "n", len(c.b))
		}
		return false
	}
}

// poll tries to receive the next chunk, waiting up to the given time: a
// negative wait blocks indefinitely, while zero doesn't block at all.
func (ar *AsyncReader) poll(wait time.Duration) bool {
	if ar.err != nil {
		return false
	}
	var timeout <-chan time.Time
	switch {
	case wait == 0:
		select {
		case c, ok := <-ar.ch:
			return ar.recv(c, ok)
		default:
			return false
		}
	case wait > 0:
		timer := time.NewTimer(wait)
		defer timer.Stop()
		timeout = timer.C
	}
	select {
	case c, ok := <-ar.ch:
		return ar.recv(c, ok)
	case <-timeout:
		return false
	}
}

func (ar *AsyncReader) recv(c asyncChunk, ok bool) bool {
	switch {
	case !ok:
		ar.err = io.EOF
	case c.err != nil:
		ar.err = c.err
	default:
		ar.cur = c.b
		return true
	}
	return false
}

// Read reads whatever input is ready, waiting at most PollTimeout for each
// further chunk. It may return 0 bytes and a nil error when no input is
// ready. Once the source is exhausted and all of its input has been read, the
// source's error is returned, io.EOF after a normal end.
func (ar *AsyncReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(ar.cur) == 0 && !ar.poll(ar.PollTimeout) {
			break
		}
		m := copy(p[n:], ar.cur)
		ar.cur = ar.cur[m:]
		n += m
	}
	if n == 0 && ar.err != nil {
		return 0, ar.err
	}
	return n, nil
}

// ReadByte reads the next byte, blocking until one is available.
func (ar *AsyncReader) ReadByte() (byte, error) {
	for len(ar.cur) == 0 {
		if !ar.poll(-1) {
			return 0, ar.err
		}
	}
	c := ar.cur[0]
	ar.cur = ar.cur[1:]
	return c, nil
}

// Buffered returns how many bytes can be read without waiting; at most one
// chunk of input is counted.
func (ar *AsyncReader) Buffered() int {
	if len(ar.cur) == 0 {
		ar.poll(0)
	}
	return len(ar.cur)
}

// Close cancels any blocked read of the source, and stops the background
// goroutine. Closing an AsyncTTY also closes its tty file.
func (ar *AsyncReader) Close() (err error) {
	ar.once.Do(func() {
		close(ar.stop)
		if !ar.cr.Cancel() {
			ar.log.Debug("async read not cancelable")
		}
		select {
		case <-ar.done:
		case <-time.After(asyncStopWait):
			ar.log.Warn("async reader still blocked after close")
		}
		err = ar.cr.Close()
		if ar.closer != nil {
			if cerr := ar.closer.Close(); err == nil {
				err = cerr
			}
		}
	})
	return err
}
