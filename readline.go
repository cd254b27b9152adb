package rawterm

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/jcorbin/rawterm/termkey"
)

// ReadLine reads a line of input from r, one byte at a time so that nothing
// past the line terminator is consumed. It is meant for reading from a
// terminal in raw mode, and so handles a few control bytes itself:
//   - '\n' or '\r' end the line, which is returned without its terminator
//   - NUL, Ctrl-C, and Ctrl-D abort, returning ok=false
//   - DEL erases the last rune
//
// Reaching end of input also ends the line. Invalid UTF-8 is an error
// wrapping termkey.ErrInvalidEncoding.
func ReadLine(r io.Reader) (line string, ok bool, err error) {
	br, isBR := r.(io.ByteReader)
	var one [1]byte
	readByte := func() (byte, error) {
		if isBR {
			return br.ReadByte()
		}
		_, err := io.ReadFull(r, one[:])
		return one[0], err
	}

	var buf []byte
	for {
		c, err := readByte()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return "", false, err
		}
		switch c {
		case 0x00, 0x03, 0x04:
			return "", false, nil
		case '\n', '\r':
			return finishLine(buf)
		case 0x7F:
			if len(buf) > 0 {
				_, n := utf8.DecodeLastRune(buf)
				buf = buf[:len(buf)-n]
			}
		default:
			buf = append(buf, c)
		}
	}
	return finishLine(buf)
}

func finishLine(buf []byte) (string, bool, error) {
	if !utf8.Valid(buf) {
		return "", false, fmt.Errorf("rawterm: read line: %w", termkey.ErrInvalidEncoding)
	}
	return string(buf), true, nil
}

// ReadPassword reads a line from the terminal with echo off, entering raw
// mode for the duration if necessary. The terminal's prior raw and echo
// settings are restored afterwards.
func (term *Term) ReadPassword() (line string, ok bool, err error) {
	err = term.RunWith(func(term *Term) (err error) {
		raw, echo := term.raw, term.echo
		defer func() {
			if rerr := term.SetEcho(echo); err == nil {
				err = rerr
			}
			if rerr := term.SetRaw(raw); err == nil {
				err = rerr
			}
		}()
		if err := term.SetRaw(true); err != nil {
			return err
		}
		if err := term.SetEcho(false); err != nil {
			return err
		}
		line, ok, err = ReadLine(term.Input)
		if err == nil {
			_, err = io.WriteString(term.Output, "\r\n")
		}
		return err
	})
	return line, ok, err
}
