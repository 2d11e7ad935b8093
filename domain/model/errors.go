package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateColumnName is returned when a file contains duplicate column names
	ErrDuplicateColumnName = errors.New("duplicate column name")

	// ErrEmptyData is returned when a file has no header row
	ErrEmptyData = errors.New("empty data source")

	// ErrInvalidData is returned when a file cannot be parsed as delimited text
	ErrInvalidData = errors.New("invalid data format")

	// ErrUnsupportedFormat is returned for inputs that are not CSV and for unsupported export options
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Coercion failure causes. CoercionError.Err is always one of these.
var (
	// ErrCoercion matches every CoercionError
	ErrCoercion = errors.New("column coercion failed")

	// ErrColumnNotFound means the coercion map names a column the table does not have
	ErrColumnNotFound = errors.New("column not found")

	// ErrMissingValue means a cell of an integer column is empty
	ErrMissingValue = errors.New("missing value")

	// ErrFractionalValue means a cell of an integer column has a fractional part
	ErrFractionalValue = errors.New("not a whole number")

	// ErrNotNumeric means a cell cannot be parsed as a number
	ErrNotNumeric = errors.New("not a number")

	// ErrUnsupportedTarget means the coercion map asks for a type other than INTEGER or REAL
	ErrUnsupportedTarget = errors.New("unsupported coercion target")
)

// CoercionError reports the first cell that could not be reinterpreted
// under its target column type.
type CoercionError struct {
	// Table is the name of the table being coerced.
	Table string
	// Column is the column name from the coercion map.
	Column string
	// Row is the 1-based data row (header excluded). Zero when the error is not cell specific.
	Row int
	// Value is the offending raw cell.
	Value string
	// Target is the requested column type.
	Target ColumnType
	// Err is the cause.
	Err error
}

// Error implements error.
func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("cannot coerce column %q of table %q to %s", e.Column, e.Table, e.Target)
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d (value %q)", e.Row, e.Value)
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the cause.
func (e *CoercionError) Unwrap() error {
	return e.Err
}

// Is reports ErrCoercion as a match so callers can test the category.
func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}
