package regtext

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedEncoding indicates an encoding name this package cannot handle.
	ErrUnsupportedEncoding = errors.New("regtext: unsupported encoding")

	// ErrUnterminatedHeader indicates a section header without a closing bracket.
	ErrUnterminatedHeader = errors.New("unterminated section header")

	// ErrUnterminatedName indicates an entry name without a closing quote.
	ErrUnterminatedName = errors.New("unterminated entry name")

	// ErrMissingAssignment indicates an entry line without '=' after the name.
	ErrMissingAssignment = errors.New("missing '=' after entry name")

	// ErrEntryOutsideSection indicates an entry line before any section header.
	ErrEntryOutsideSection = errors.New("entry before any section header")

	// ErrDanglingContinuation indicates a continuation line with no open value.
	ErrDanglingContinuation = errors.New("continuation line without an open value")

	// ErrUnterminatedContinuation indicates EOF in the middle of a continued value.
	ErrUnterminatedContinuation = errors.New("value continuation runs past end of input")

	// ErrUnrecognizedLine indicates a line matching no production of the grammar.
	ErrUnrecognizedLine = errors.New("unrecognized line")
)

// ParseError reports a structural failure with the offending line number
// (1-based). It wraps one of the sentinel errors above so callers can branch
// on the failure category with errors.Is.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("regtext: line %d: %s: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(line int, text string, err error) *ParseError {
	return &ParseError{Line: line, Text: text, Err: err}
}
