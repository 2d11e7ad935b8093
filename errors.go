package footballdb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/footballdb/domain/model"
	"github.com/nao1215/footballdb/store"
)

// Standard errors. Each category supports errors.Is.
var (
	// ErrMissingInput matches every MissingInputError
	ErrMissingInput = fmt.Errorf("footballdb: input file not found: %w", os.ErrNotExist)

	// ErrCoercion matches every CoercionError
	ErrCoercion = model.ErrCoercion

	// ErrStoreWrite matches every StoreWriteError
	ErrStoreWrite = store.ErrStoreWrite

	// ErrEmptyData indicates that the data source contains no header row
	ErrEmptyData = model.ErrEmptyData

	// ErrInvalidData indicates malformed CSV
	ErrInvalidData = model.ErrInvalidData

	// ErrDuplicateColumnName indicates a header with a repeated column name
	ErrDuplicateColumnName = model.ErrDuplicateColumnName

	// ErrUnsupportedFormat indicates an unsupported input or export format
	ErrUnsupportedFormat = model.ErrUnsupportedFormat

	// ErrInvalidTableName indicates a table name that cannot be written or exported
	ErrInvalidTableName = store.ErrInvalidTableName
)

type (
	// CoercionError reports a cell that cannot be reinterpreted under its target type.
	CoercionError = model.CoercionError
	// StoreWriteError reports a failure while writing the database.
	StoreWriteError = store.StoreWriteError
)

// MissingInputError reports a required input file that does not exist.
type MissingInputError struct {
	// Path is the path that was checked.
	Path string
}

// Error implements error.
func (e *MissingInputError) Error() string {
	if strings.EqualFold(filepath.Ext(e.Path), ".csv") {
		return "footballdb: CSV file not found: " + e.Path
	}
	return "footballdb: file not found: " + e.Path
}

// Is reports ErrMissingInput and os.ErrNotExist as matches.
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput || target == os.ErrNotExist
}

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	TableName string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithTable adds table context to the error
func (ec *ErrorContext) WithTable(tableName string) *ErrorContext {
	ec.TableName = tableName
	return ec
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context
func (ec *ErrorContext) Error(baseErr error) error {
	var parts []string
	parts = append(parts, fmt.Sprintf("footballdb: %s failed", ec.Operation))

	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}

	if ec.TableName != "" {
		parts = append(parts, "table: "+ec.TableName)
	}

	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	context := strings.Join(parts, ", ")
	if baseErr != nil {
		return fmt.Errorf("%s: %w", context, baseErr)
	}
	return fmt.Errorf("%s", context)
}
