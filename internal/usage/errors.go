package usage

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData is returned when an operation needs loaded readings and there are none
	ErrNoData = errors.New("no data loaded")

	// ErrSourceNotFound is returned (wrapped in a SourceError) for a missing input file
	ErrSourceNotFound = errors.New("file not found")
)

// SourceError represents a failure that ended processing of one input source
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// RowError describes a data row that was skipped because a field could not be parsed
type RowError struct {
	Line   int
	Field  string
	Value  string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %s", e.Line, e.Field, e.Value, e.Reason)
}
