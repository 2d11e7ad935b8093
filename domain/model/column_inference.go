package model

import (
	"strconv"
	"strings"
)

// InferColumnType infers the SQL column type from a slice of string values.
//
// Priority is TEXT > REAL > INTEGER. Missing markers such as "" or "NA" do
// not count as text. An integer column with any missing value
// is inferred as REAL so that the missing cells stay NULL instead of forcing
// a NOT NULL integer representation.
func InferColumnType(values []string) ColumnType {
	if len(values) == 0 {
		return ColumnTypeText
	}

	hasReal := false
	hasInteger := false
	hasMissing := false

	for _, value := range values {
		if isMissing(value) {
			hasMissing = true
			continue
		}
		value = strings.TrimSpace(value)

		if _, err := strconv.ParseInt(value, 10, 64); err == nil {
			hasInteger = true
			continue
		}

		if _, err := strconv.ParseFloat(value, 64); err == nil {
			hasReal = true
			continue
		}

		// If any value is text, the whole column is text
		return ColumnTypeText
	}

	switch {
	case hasReal:
		return ColumnTypeReal
	case hasInteger && hasMissing:
		return ColumnTypeReal
	case hasInteger:
		return ColumnTypeInteger
	default:
		// Only missing values
		return ColumnTypeText
	}
}

// InferColumnsInfo infers column information from header and data records
func InferColumnsInfo(header Header, records []Record) []ColumnInfo {
	columnCount := len(header)
	if columnCount == 0 {
		return nil
	}

	columns := make([]ColumnInfo, columnCount)
	for i, name := range header {
		columns[i] = ColumnInfo{
			Name: name,
			Type: ColumnTypeText,
		}
	}

	if len(records) == 0 {
		return columns
	}

	values := make([]string, 0, len(records))
	for i := range columnCount {
		values = values[:0]
		for _, record := range records {
			if i < len(record) {
				values = append(values, record[i])
			}
		}
		columns[i].Type = InferColumnType(values)
	}

	return columns
}
