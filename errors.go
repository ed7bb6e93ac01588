package colreplace

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput is returned when the input cannot be opened or yields no header line.
	ErrMissingInput = errors.New("colreplace: input file missing")
	// ErrUnknownColumn is returned when a requested column is absent from the header.
	ErrUnknownColumn = errors.New("colreplace: column name doesn't exist in the input file")
	// ErrOutputOpen is returned when the output destination cannot be created or replaced.
	ErrOutputOpen = errors.New("colreplace: cannot open output")
	// ErrFieldCount is returned when a data row has a different number of fields than the header.
	ErrFieldCount = errors.New("colreplace: wrong number of fields")
)

// InputError records why the input could not provide a header.
type InputError struct {
	Path string
	Err  error
}

// Error formats the input error with the stored Path and Err values.
func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return fmt.Sprintf("colreplace: input missing: %v", e.Err)
	}
	return fmt.Sprintf("colreplace: input %q missing: %v", e.Path, e.Err)
}

// Unwrap returns the underlying Err.
func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports ErrMissingInput so callers can match any InputError without unwrapping the cause.
func (e *InputError) Is(target error) bool {
	return target == ErrMissingInput
}

// ColumnError names the column that could not be resolved against the header.
type ColumnError struct {
	Name string
}

func (e *ColumnError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("colreplace: column %q not found in header", e.Name)
}

func (e *ColumnError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrUnknownColumn
}

// OutputError reports a failure to create, write or publish the output file.
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return fmt.Sprintf("colreplace: output: %v", e.Err)
	}
	return fmt.Sprintf("colreplace: output %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying Err so the OS cause stays inspectable.
func (e *OutputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports ErrOutputOpen for every OutputError.
func (e *OutputError) Is(target error) bool {
	return target == ErrOutputOpen
}

// RowError contains location information for a malformed data row.
type RowError struct {
	// Line is the 1-based line number in the input, counting the header.
	Line int
	Got  int
	Want int
}

// Error formats the row error with the stored line and field counts.
func (e *RowError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("colreplace: line %d: got %d fields, want %d", e.Line, e.Got, e.Want)
}

// Unwrap returns ErrFieldCount so RowError participates in errors.Is.
func (e *RowError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrFieldCount
}
