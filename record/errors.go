package record

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when a dataset cannot be opened.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrSchemaMismatch is returned when the declared dimension differs from the expected one.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrInsufficientData is returned when the dataset declares fewer records than requested.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrMalformed is returned when the header or a record cannot be parsed,
	// or the stream ends before the requested records were read.
	ErrMalformed = errors.New("malformed data")
)

// DimensionError reports a declared dimension that differs from the expected one.
// It matches ErrSchemaMismatch with errors.Is.
type DimensionError struct {
	Expected int
	Declared int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, file declares %d", e.Expected, e.Declared)
}

func (e *DimensionError) Unwrap() error { return ErrSchemaMismatch }

// CountError reports a dataset that declares fewer records than requested.
// It matches ErrInsufficientData with errors.Is.
type CountError struct {
	Requested int
	Declared  int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("insufficient data: requested %d records, file declares %d", e.Requested, e.Declared)
}

func (e *CountError) Unwrap() error { return ErrInsufficientData }

// ParseError locates a token that could not be read.
// It matches ErrMalformed with errors.Is.
type ParseError struct {
	Record int // -1 for the header
	Field  int
	Token  string
	cause  error
}

func (e *ParseError) Error() string {
	where := "header"
	if e.Record >= 0 {
		where = fmt.Sprintf("record %d field %d", e.Record, e.Field)
	}
	if e.Token == "" {
		if e.cause != nil {
			return fmt.Sprintf("malformed data: %s: %v", where, e.cause)
		}
		return fmt.Sprintf("malformed data: %s: unexpected end of input", where)
	}
	return fmt.Sprintf("malformed data: %s: bad token %q", where, e.Token)
}

func (e *ParseError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrMalformed}
	}
	return []error{ErrMalformed, e.cause}
}
