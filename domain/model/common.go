// Package model provides the table model shared by the loader, the store and the exporter.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Header is file header.
type Header []string

// NewHeader create new Header.
func NewHeader(h []string) Header {
	return Header(h)
}

// Equal compare Header.
func (h Header) Equal(h2 Header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// Index returns the position of the named column, or -1.
func (h Header) Index(name string) int {
	for i, v := range h {
		if v == name {
			return i
		}
	}
	return -1
}

// Record is one row of raw cells.
type Record []string

// NewRecord create new Record.
func NewRecord(r []string) Record {
	return Record(r)
}

// Equal compare Record.
func (r Record) Equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// ColumnType represents the SQL column type
type ColumnType int

const (
	// ColumnTypeText represents TEXT column type
	ColumnTypeText ColumnType = iota
	// ColumnTypeInteger represents INTEGER column type
	ColumnTypeInteger
	// ColumnTypeReal represents REAL column type
	ColumnTypeReal
)

const (
	// SQLTypeText is the SQL TEXT type string
	SQLTypeText = "TEXT"
	// SQLTypeInteger is the SQL INTEGER type string
	SQLTypeInteger = "INTEGER"
	// SQLTypeReal is the SQL REAL type string
	SQLTypeReal = "REAL"
)

// String returns the SQL column type string
func (ct ColumnType) String() string {
	switch ct {
	case ColumnTypeInteger:
		return SQLTypeInteger
	case ColumnTypeReal:
		return SQLTypeReal
	default:
		return SQLTypeText
	}
}

// ParseColumnType maps a declared SQLite type back to a ColumnType.
// Unknown declarations are treated as TEXT.
func ParseColumnType(decl string) ColumnType {
	switch strings.ToUpper(strings.TrimSpace(decl)) {
	case SQLTypeInteger, "INT", "BIGINT":
		return ColumnTypeInteger
	case SQLTypeReal, "FLOAT", "DOUBLE":
		return ColumnTypeReal
	default:
		return ColumnTypeText
	}
}

// ColumnInfo represents column information with name and type
type ColumnInfo struct {
	Name string
	Type ColumnType
	// Required marks a column that may not hold missing values (NOT NULL).
	Required bool
}

// Definition returns the column definition used in CREATE TABLE.
func (c ColumnInfo) Definition() string {
	def := QuoteIdentifier(c.Name) + " " + c.Type.String()
	if c.Required {
		def += " NOT NULL"
	}
	return def
}

// Value converts a raw cell to the value bound for this column.
// Missing cells become nil (NULL) whatever the column type.
func (c ColumnInfo) Value(raw string) (any, error) {
	if isMissing(raw) {
		return nil, nil
	}
	trimmed := strings.TrimSpace(raw)

	switch c.Type {
	case ColumnTypeInteger:
		v, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w: %q", c.Name, ErrNotNumeric, raw)
		}
		return v, nil
	case ColumnTypeReal:
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w: %q", c.Name, ErrNotNumeric, raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}

// QuoteIdentifier quotes a SQLite identifier. Column names such as "#" and
// "AVG/G" are only valid when quoted.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// missingMarkers are the cell values read as missing, matching the NA tokens
// of common CSV tooling. Matching is exact after trimming spaces.
var missingMarkers = map[string]struct{}{ //nolint:gochecknoglobals // read-only lookup table
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// isMissing reports whether a raw cell counts as a missing value.
func isMissing(value string) bool {
	_, ok := missingMarkers[strings.TrimSpace(value)]
	return ok
}
