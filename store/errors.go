package store

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreWrite matches every StoreWriteError
	ErrStoreWrite = errors.New("store write failed")

	// ErrInvalidTableName is returned for an empty table name
	ErrInvalidTableName = errors.New("invalid table name")

	// ErrTableNotFound is returned when a read targets a table that does not exist
	ErrTableNotFound = errors.New("table not found")
)

// StoreWriteError reports a failure while the database was being opened or written.
type StoreWriteError struct { //nolint:revive // name mirrors the error taxonomy
	// Table is the destination table, empty for open failures.
	Table string
	// Op is the failing step: open, drop, create, insert, commit.
	Op string
	// Err is the driver error.
	Err error
}

// Error implements error.
func (e *StoreWriteError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store %s failed for table %q: %v", e.Op, e.Table, e.Err)
}

// Unwrap returns the driver error.
func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// Is reports ErrStoreWrite as a match so callers can test the category.
func (e *StoreWriteError) Is(target error) bool {
	return target == ErrStoreWrite
}

func writeError(table, op string, err error) error {
	return &StoreWriteError{Table: table, Op: op, Err: err}
}
