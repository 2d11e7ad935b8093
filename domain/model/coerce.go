package model

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ColumnTypeMap maps a column name to the type it must be coerced to.
// Only ColumnTypeInteger and ColumnTypeReal are valid targets.
type ColumnTypeMap map[string]ColumnType

// columns returns the mapped column names in table order, followed by any
// names the table does not have (sorted).
func (m ColumnTypeMap) columns(header Header) []string {
	names := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, h := range header {
		if _, ok := m[h]; ok {
			names = append(names, h)
			seen[h] = true
		}
	}
	var unknown []string
	for name := range m {
		if !seen[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return append(names, unknown...)
}

// Coerce reinterprets the mapped columns of t under their target type and
// returns a new table. Columns not in the map pass through untouched; the
// input table is not modified.
//
// Integer coercion requires every cell to be a whole number. The first
// missing, fractional or non-numeric cell aborts coercion with a
// *CoercionError; nothing is substituted. Real coercion accepts missing cells.
func Coerce(t *Table, m ColumnTypeMap) (*Table, error) {
	out := t.clone()

	for _, name := range m.columns(t.header) {
		target := m[name]
		idx := out.header.Index(name)
		if idx < 0 {
			return nil, &CoercionError{Table: t.name, Column: name, Target: target, Err: ErrColumnNotFound}
		}

		var err error
		switch target {
		case ColumnTypeInteger:
			err = out.coerceInteger(idx, name)
		case ColumnTypeReal:
			err = out.coerceReal(idx, name)
		default:
			err = &CoercionError{Table: t.name, Column: name, Target: target, Err: ErrUnsupportedTarget}
		}
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (t *Table) coerceInteger(idx int, name string) error {
	for row, record := range t.records {
		raw := record[idx]
		v, cause := wholeNumber(raw)
		if cause != nil {
			return &CoercionError{
				Table:  t.name,
				Column: name,
				Row:    row + 1,
				Value:  raw,
				Target: ColumnTypeInteger,
				Err:    cause,
			}
		}
		record[idx] = strconv.FormatInt(v, 10)
	}
	t.columnInfo[idx] = ColumnInfo{Name: name, Type: ColumnTypeInteger, Required: true}
	return nil
}

func (t *Table) coerceReal(idx int, name string) error {
	for row, record := range t.records {
		raw := record[idx]
		if isMissing(raw) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err != nil {
			return &CoercionError{
				Table:  t.name,
				Column: name,
				Row:    row + 1,
				Value:  raw,
				Target: ColumnTypeReal,
				Err:    ErrNotNumeric,
			}
		}
	}
	t.columnInfo[idx] = ColumnInfo{Name: name, Type: ColumnTypeReal}
	return nil
}

// wholeNumber parses raw as an int64. Floats are accepted only when they have
// no fractional remainder and fit in int64.
func wholeNumber(raw string) (int64, error) {
	if isMissing(raw) {
		return 0, ErrMissingValue
	}
	value := strings.TrimSpace(raw)
	if v, err := strconv.ParseInt(value, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotNumeric
	}
	if f != math.Trunc(f) {
		return 0, ErrFractionalValue
	}
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, ErrNotNumeric
	}
	return int64(f), nil
}
