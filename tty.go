package rawterm

import (
	"fmt"
	"os"
)

// TTYPath is the controlling terminal device opened by OpenTTY.
const TTYPath = "/dev/tty"

// OpenTTY opens the process's controlling terminal for reading and writing,
// which works even when standard input or output have been redirected.
func OpenTTY() (*os.File, error) {
	f, err := os.OpenFile(TTYPath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("rawterm: open tty: %w", err)
	}
	return f, nil
}

// NewTTYTerm creates a Term attached to the controlling terminal for both
// input and output; the returned close function closes the tty file.
func NewTTYTerm(cs ...Context) (*Term, func() error, error) {
	f, err := OpenTTY()
	if err != nil {
		return nil, nil, err
	}
	return NewTerm(f, f, cs...), f.Close, nil
}
