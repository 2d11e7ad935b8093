package model

import (
	"path/filepath"
	"strings"
)

// Table represents file contents as database table structure.
type Table struct {
	// name is table name derived from file path.
	name string
	// header is table header.
	header Header
	// records is table records.
	records []Record
	// columnInfo contains the type of each column, inferred or coerced
	columnInfo []ColumnInfo
}

// NewTable create new Table. Column types are inferred from the records.
func NewTable(
	name string,
	header Header,
	records []Record,
) *Table {
	return &Table{
		name:       name,
		header:     header,
		records:    records,
		columnInfo: InferColumnsInfo(header, records),
	}
}

// Name return table name.
func (t *Table) Name() string {
	return t.name
}

// Header return table header.
func (t *Table) Header() Header {
	return t.header
}

// Records return table records.
func (t *Table) Records() []Record {
	return t.records
}

// ColumnInfo returns column information
func (t *Table) ColumnInfo() []ColumnInfo {
	return t.columnInfo
}

// Column returns the column information for name.
func (t *Table) Column(name string) (ColumnInfo, bool) {
	for _, c := range t.columnInfo {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnInfo{}, false
}

// Shape returns (rows, columns).
func (t *Table) Shape() (int, int) {
	return len(t.records), len(t.header)
}

// Values converts a record into the values bound for an INSERT, one per column.
func (t *Table) Values(record Record) ([]any, error) {
	values := make([]any, len(t.columnInfo))
	for i, col := range t.columnInfo {
		if i >= len(record) {
			continue
		}
		v, err := col.Value(record[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// clone returns a deep copy so coercion never mutates its input.
func (t *Table) clone() *Table {
	records := make([]Record, len(t.records))
	for i, r := range t.records {
		records[i] = append(Record(nil), r...)
	}
	return &Table{
		name:       t.name,
		header:     append(Header(nil), t.header...),
		records:    records,
		columnInfo: append([]ColumnInfo(nil), t.columnInfo...),
	}
}

// Equal compare Table.
func (t *Table) Equal(t2 *Table) bool {
	if t.Name() != t2.Name() {
		return false
	}
	if !t.header.Equal(t2.header) {
		return false
	}
	if len(t.columnInfo) != len(t2.columnInfo) {
		return false
	}
	for i, c := range t.columnInfo {
		if c != t2.columnInfo[i] {
			return false
		}
	}
	if len(t.Records()) != len(t2.Records()) {
		return false
	}
	for i, record := range t.Records() {
		if !record.Equal(t2.Records()[i]) {
			return false
		}
	}
	return true
}

// TableFromFilePath creates table name from file path
func TableFromFilePath(filePath string) string {
	fileName := filepath.Base(filePath)
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}
