package roundtrip

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every decode failure, including ones surfaced
	// while streaming.
	ErrParse = errors.New("parse error")
)

// ParseError reports a document that could not be decoded into a Record.
// Offset is the zero-based position of the record in a stream, or -1 for a
// single document.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("roundtrip: parse record %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("roundtrip: parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrParse) match without the cause having to wrap it.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
