package types

import "fmt"

// =============================================================================
// ERROR TAXONOMY
// =============================================================================
// Every failure that aborts a conversion is one of these three kinds. They
// all wrap their cause so callers can use errors.Is / errors.As on both the
// kind and the underlying error.

// InputFormatError means the input is not a recognizable export: no marker
// line, an unsniffable dialect, an unknown account type or format.
type InputFormatError struct {
	Reason string
	Err    error
}

func (e *InputFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input format error: %s: %v", e.Reason, e.Err)
	}
	return "input format error: " + e.Reason
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// DataError means a field failed its transformation, e.g. an unparsable date
// or a required column missing from a row.
type DataError struct {
	// Line is the 1-based line number in the input file.
	Line  int
	Field string
	Value string
	Err   error
}

func (e *DataError) Error() string {
	msg := fmt.Sprintf("data error: line %d, field '%s'", e.Line, e.Field)
	if e.Value != "" {
		msg += fmt.Sprintf(" (value: '%s')", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataError) Unwrap() error { return e.Err }

// IOError wraps open, create, encode and rename failures.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
