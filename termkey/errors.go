package termkey

import (
	"errors"
	"fmt"
)

// Parse failure categories, matched by errors.Is against any *ParseError.
var (
	ErrInvalidEncoding = errors.New("input character is not valid UTF-8")
	ErrUnableToParse   = errors.New("could not parse an event")
)

var errSequenceTooLong = errors.New("sequence too long")

// ParseError describes a failure to parse an event from input bytes.
type ParseError struct {
	// Err is either ErrInvalidEncoding or ErrUnableToParse.
	Err error

	// Seq holds the bytes consumed while trying to parse the event.
	Seq []byte

	// Cause is the underlying problem, if any: io.ErrUnexpectedEOF when input
	// ended mid sequence, a number parsing error, etc.
	Cause error
}

func (pe *ParseError) Error() string {
	if pe.Cause != nil {
		return fmt.Sprintf("%v in %q: %v", pe.Err, pe.Seq, pe.Cause)
	}
	return fmt.Sprintf("%v in %q", pe.Err, pe.Seq)
}

// Unwrap returns both the category sentinel and any cause.
func (pe *ParseError) Unwrap() []error {
	if pe.Cause != nil {
		return []error{pe.Err, pe.Cause}
	}
	return []error{pe.Err}
}
