package model

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File extensions
const (
	// ExtCSV is the CSV file extension
	ExtCSV = ".csv"
)

// utf8BOM is stripped from the first header cell.
const utf8BOM = "\ufeff"

// File represents a CSV file that can be converted to Table
type File struct {
	path string
}

// NewFile creates a new File
func NewFile(path string) *File {
	return &File{path: path}
}

// IsCSV reports whether the file has a .csv extension.
func (f *File) IsCSV() bool {
	return strings.EqualFold(filepath.Ext(f.path), ExtCSV)
}

// ToTable reads the file and converts it to a Table with inferred column types.
func (f *File) ToTable() (*Table, error) {
	if !f.IsCSV() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f.path)
	}

	file, err := os.Open(f.path) //nolint:gosec // path is validated by the caller
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseCSV(file, TableFromFilePath(f.path))
}

// ParseCSV parses comma separated data with a header row into a Table.
func ParseCSV(r io.Reader, tableName string) (*Table, error) {
	csvReader := csv.NewReader(r)

	headerRow, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrEmptyData, tableName)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	header := make(Header, len(headerRow))
	for i, name := range headerRow {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		header[i] = strings.TrimSpace(name)
	}
	if err := validateColumnNames(header); err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
		}
		records = append(records, NewRecord(row))
	}

	return NewTable(tableName, header, records), nil
}

// validateColumnNames checks for duplicate column names and returns error if found.
func validateColumnNames(columns Header) error {
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if seen[col] {
			return fmt.Errorf("%w: %s", ErrDuplicateColumnName, col)
		}
		seen[col] = true
	}
	return nil
}
