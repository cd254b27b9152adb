package rawterm

import (
	"errors"
	"fmt"
	"image"
	"os"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

var errAttrNoFile = errors.New("rawterm.Attr: no File set")

// Attr implements Context-ual manipulation and interrogation of terminal
// state, using the termios IOCTLs. The zero value leaves raw mode and echo
// off; Enter applies whatever SetRaw and SetEcho have chosen.
type Attr struct {
	file *os.File

	ownFile bool
	orig    unix.Termios
	cur     unix.Termios
	raw     bool
	echo    bool
}

// NewAttr returns an Attr bound to the given terminal file, rather than
// defaulting to the Term's output file on Enter.
func NewAttr(f *os.File) Attr { return Attr{file: f} }

// IsTerminal returns true only if the given file is attached to an interactive
// terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && xterm.IsTerminal(int(f.Fd()))
}

// IsTerminal returns true only if the underlying file is attached to an
// interactive terminal.
func (at Attr) IsTerminal() bool {
	return IsTerminal(at.file)
}

// Size reads and returns the current terminal size, in columns (X) and rows
// (Y).
func (at Attr) Size() (size image.Point, err error) {
	if at.file == nil {
		return size, errAttrNoFile
	}
	size.X, size.Y, err = xterm.GetSize(int(at.file.Fd()))
	if err != nil {
		return image.Point{}, fmt.Errorf("rawterm: get terminal size: %w", err)
	}
	return size, nil
}

// SetRaw controls whether the terminal should be in raw mode.
//
// Raw mode is suitable for full-screen terminal user interfaces, eliminating
// keyboard shortcuts for job control, echo, line buffering, and escape key
// debouncing.
func (at *Attr) SetRaw(raw bool) error {
	if raw == at.raw {
		return nil
	}
	at.raw = raw
	if at.file == nil {
		return nil
	}
	at.cur = at.modifyTermios(at.orig)
	return at.setAttr(at.cur)
}

// SetEcho toggles input echoing mode, which is off by default in raw mode, and
// on in normal mode.
func (at *Attr) SetEcho(echo bool) error {
	if echo == at.echo {
		return nil
	}
	at.echo = echo
	if at.file == nil {
		return nil
	}
	if echo {
		at.cur.Lflag |= unix.ECHO
	} else {
		at.cur.Lflag &^= unix.ECHO
	}
	return at.setAttr(at.cur)
}

func (at Attr) modifyTermios(attr unix.Termios) unix.Termios {
	if at.raw {
		attr.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
		attr.Oflag &^= unix.OPOST
		attr.Cflag &^= unix.CSIZE | unix.PARENB
		attr.Cflag |= unix.CS8
		attr.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
		attr.Cc[unix.VMIN] = 1
		attr.Cc[unix.VTIME] = 0
	}
	if at.echo {
		attr.Lflag |= unix.ECHO
	} else {
		attr.Lflag &^= unix.ECHO
	}
	return attr
}

// Enter defaults the Attr's file to the term's Output file, records its
// original termios attributes, and then applies termios attributes.
func (at *Attr) Enter(term *Term) (err error) {
	if at.file == nil {
		at.file = term.Output
		at.ownFile = false
	} else {
		at.ownFile = true
	}
	at.orig, err = at.getAttr()
	if err != nil {
		if !at.ownFile {
			at.file = nil
		}
		return err
	}
	at.cur = at.modifyTermios(at.orig)
	return at.setAttr(at.cur)
}

// Exit restores termios attributes, and clears the File pointer if it was set
// by Enter
func (at *Attr) Exit(term *Term) error {
	if at.file == nil {
		return nil
	}
	if err := at.setAttr(at.orig); err != nil {
		return err
	}
	if !at.ownFile {
		at.file = nil
	}
	return nil
}

func (at Attr) getAttr() (unix.Termios, error) {
	if at.file == nil {
		return unix.Termios{}, errAttrNoFile
	}
	attr, err := unix.IoctlGetTermios(int(at.file.Fd()), ioctlGetTermios)
	if err != nil {
		return unix.Termios{}, fmt.Errorf("rawterm: get terminal attributes: %w", err)
	}
	return *attr, nil
}

func (at Attr) setAttr(attr unix.Termios) error {
	if at.file == nil {
		return errAttrNoFile
	}
	if err := unix.IoctlSetTermios(int(at.file.Fd()), ioctlSetTermios, &attr); err != nil {
		return fmt.Errorf("rawterm: set terminal attributes: %w", err)
	}
	return nil
}
