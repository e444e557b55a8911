package reader

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRow is matched by every *RowError.
	ErrMalformedRow = errors.New("malformed row")

	// ErrNoFiles is returned when a glob pattern matches nothing.
	ErrNoFiles = errors.New("no files match pattern")
)

// RowError reports a CSV row that could not be turned into a course.
type RowError struct {
	Path   string
	Line   int
	Column string // empty when the row has the wrong number of fields
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %s: %v", e.Path, e.Line, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedRow) true for any RowError.
func (e *RowError) Is(target error) bool {
	return target == ErrMalformedRow
}
