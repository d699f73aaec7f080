package ingest

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRow    = errors.New("malformed row")
	ErrInvalidDocument = errors.New("invalid allocation document")
)

// RowError points at the offending line of an uploaded file.
type RowError struct {
	Source string
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("invalid row %s:%d: %s", e.Source, e.Line, e.Reason)
}

func (e *RowError) Unwrap() error {
	return ErrMalformedRow
}
