package footballdb

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// reporter prints the human readable diagnostics of a run. The first write
// error is kept and every later write is skipped.
type reporter struct {
	w   io.Writer
	err error
}

// newReporter creates a reporter. A nil writer discards the report.
func newReporter(w io.Writer) *reporter {
	if w == nil {
		w = io.Discard
	}
	return &reporter{w: w}
}

func (r *reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *reporter) println(s string) {
	r.printf("%s\n", s)
}

// table prints the shape and column types of a coerced table.
func (r *reporter) table(t *Table) {
	rows, cols := t.Shape()
	label := titleCase(t.Name())
	r.printf("%s data shape: (%d, %d)\n", label, rows, cols)
	r.printf("%s data types:\n", label)

	width := 0
	for _, c := range t.ColumnInfo() {
		width = max(width, utf8.RuneCountInString(c.Name))
	}
	for _, c := range t.ColumnInfo() {
		r.printf("%-*s    %s\n", width, c.Name, c.Type)
	}
	r.println("")
}

// created prints the row count read back after writing a table.
func (r *reporter) created(v *Verification) {
	r.printf("%s table created with %d records\n", titleCase(v.Table), v.RowCount)
}

// schema prints one PRAGMA table_info tuple per column.
func (r *reporter) schema(v *Verification) {
	r.printf("\n%s table schema:\n", titleCase(v.Table))
	for _, c := range v.Schema {
		var def any
		if c.Default.Valid {
			def = c.Default.String
		}
		r.printf("  %s\n", formatTuple([]any{c.CID, c.Name, c.Type, boolInt(c.NotNull), def, boolInt(c.PrimaryKey)}))
	}
}

// sample prints the leading rows of a table.
func (r *reporter) sample(v *Verification) {
	r.printf("\nSample %s data:\n", v.Table)
	for _, row := range v.Sample {
		r.printf("  %s\n", formatTuple(row))
	}
}

// formatTuple renders a row the way a Python tuple prints, which keeps the
// output comparable with earlier runs of the loader.
func formatTuple(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case string:
		return quoteString(val)
	case []byte:
		return quoteString(string(val))
	case float64:
		return formatFloat(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(val)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// quoteString prefers single quotes and falls back to double quotes when
// the value contains a single quote and no double quote.
func quoteString(s string) string {
	quote := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = `"`
	}
	var b strings.Builder
	b.WriteString(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case string(r) == quote:
			b.WriteString(`\` + quote)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(quote)
	return b.String()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
