package tabular

import (
	"errors"
	"fmt"
)

// ErrParse is the root sentinel for malformed input. Every *ParseError
// unwraps to it, so errors.Is(err, ErrParse) answers "was the input bad?".
var ErrParse = errors.New("tabular: parse error")

var (
	// ErrMissingHeader indicates an input with no header row.
	ErrMissingHeader = errors.New("tabular: missing header row")

	// ErrMissingColumn indicates a required header column is absent.
	ErrMissingColumn = errors.New("tabular: missing required column")

	// ErrColumnCount indicates a data row whose field count differs from the header.
	ErrColumnCount = errors.New("tabular: wrong column count")

	// ErrNotNumeric indicates a field that must be a finite number is not.
	ErrNotNumeric = errors.New("tabular: value is not a finite number")
)

// ParseError reports malformed input at a concrete location.
//
// Source is the file name (or a caller-chosen label for in-memory readers);
// Line is 1-based and 0 when the failure is not tied to a single line.
// Err carries the specific reason and is preserved through Unwrap.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

// Unwrap exposes both the specific reason and the ErrParse family root.
func (e *ParseError) Unwrap() []error { return []error{e.Err, ErrParse} }

// Errorf builds a *ParseError for source/line. The format follows fmt.Errorf,
// so a %w verb keeps the wrapped sentinel reachable.
func Errorf(source string, line int, format string, args ...any) *ParseError {
	return &ParseError{Source: source, Line: line, Err: fmt.Errorf(format, args...)}
}
