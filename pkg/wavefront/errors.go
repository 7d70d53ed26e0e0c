package wavefront

import (
	"errors"
	"fmt"
)

// Parse errors. Every format failure wraps one of these.
var (
	ErrOpenFile          = errors.New("failed to open file")
	ErrInvalidArity      = errors.New("wrong number of elements")
	ErrInvalidNumber     = errors.New("invalid numeric value")
	ErrMisorderedKeyword = errors.New("mis-ordered keyword")
	ErrValueOutOfRange   = errors.New("value out of range")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// ParseError describes a fatal format error in a source file.
// Line is the 1-based physical line number, or 0 when the failure is not tied
// to a single line (vertex finalization).
type ParseError struct {
	File    string
	Line    int
	Keyword string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Keyword != "":
		return fmt.Sprintf("%s:%d: '%s': %v", e.File, e.Line, e.Keyword, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// arityError builds the error for a line with the wrong token count.
func arityError(want string, got int) error {
	return fmt.Errorf("%w: expected %s, got %d", ErrInvalidArity, want, got)
}
