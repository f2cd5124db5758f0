package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrLoad marks a table that could not be loaded.
	ErrLoad = errors.New("load failed")
	// ErrFilterInput marks malformed filter criteria.
	ErrFilterInput = errors.New("invalid filter input")
	// ErrUnknownLevelCap is returned when a level cap label is not defined.
	ErrUnknownLevelCap = errors.New("unknown level cap")
)

// LoadError reports a missing column or an unparseable value in a source table.
type LoadError struct {
	Table  string
	Line   int // 0 when the error is not tied to a row
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("loading %s: line %d: column %q: %v", e.Table, e.Line, e.Column, e.Err)
	case e.Column != "":
		return fmt.Sprintf("loading %s: column %q: %v", e.Table, e.Column, e.Err)
	default:
		return fmt.Sprintf("loading %s: %v", e.Table, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// FilterInputError reports a filter criterion that cannot be evaluated.
type FilterInputError struct {
	Field  string
	Reason string
}

func (e *FilterInputError) Error() string {
	return fmt.Sprintf("invalid filter %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrFilterInput.
func (e *FilterInputError) Unwrap() error {
	return ErrFilterInput
}
