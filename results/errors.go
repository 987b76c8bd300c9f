package results

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned (wrapped) when the results file does not exist.
	ErrFileNotFound = errors.New("results file not found")

	// ErrShortRecord reports a tagged record missing a required column.
	ErrShortRecord = errors.New("record has too few fields")

	// ErrMalformedPath reports a path field that is not a list of numeric pairs.
	ErrMalformedPath = errors.New("malformed path")
)

// ParseError reports a tagged record that can't be decoded.
// Line and Column are 1-based, as reported by encoding/csv.
type ParseError struct {
	Line   int
	Column int
	Field  string // column name
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("results: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("results: line %d, column %d (%s): %v", e.Line, e.Column, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
