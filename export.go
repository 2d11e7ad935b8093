package footballdb

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"

	"github.com/nao1215/footballdb/domain/model"
	"github.com/nao1215/footballdb/store"
)

// Export writes every table of the database at dbPath into outputDir, one
// file per table named "<table><format ext><compression ext>".
//
// By default tables are written as uncompressed CSV. NULL cells become empty
// fields in CSV, TSV and XLSX output and nulls in Parquet.
//
//	options := footballdb.NewDumpOptions().
//	    WithFormat(footballdb.OutputFormatParquet)
//	err := footballdb.Export(ctx, "football_data.db", "./out", options)
func Export(ctx context.Context, dbPath, outputDir string, opts ...DumpOptions) error {
	options := NewDumpOptions()
	if len(opts) > 0 {
		options = opts[0]
	}
	if err := options.Validate(); err != nil {
		return err
	}
	if err := newValidator().validateInput(dbPath); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("footballdb: failed to create output directory: %w", err)
	}

	s, err := store.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	names, err := s.TableNames(ctx)
	if err != nil {
		return NewErrorContext("export", dbPath).Error(err)
	}
	for _, name := range names {
		if err := validateExportName(name); err != nil {
			return NewErrorContext("export", dbPath).WithTable(name).Error(err)
		}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := s.ReadTable(ctx, name)
		if err != nil {
			return NewErrorContext("export", dbPath).WithTable(name).Error(err)
		}
		path := filepath.Join(outputDir, name+options.FileExtension())
		if err := exportTable(path, data, options); err != nil {
			return NewErrorContext("export", path).
				WithTable(name).
				WithDetails("format " + options.Format.String() + ", compression " + options.Compression.String()).
				Error(err)
		}
	}
	return nil
}

// validateExportName rejects table names that would not land inside the
// output directory as a single file.
func validateExportName(name string) error {
	if !filepath.IsLocal(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q is not a valid file name", ErrInvalidTableName, name)
	}
	return nil
}

// sheetName turns a table name into a valid worksheet name: at most 31
// characters, none of : \ / ? * [ ], and no leading or trailing apostrophe.
func sheetName(table string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, table)
	if runes := []rune(name); len(runes) > excelize.MaxSheetNameLength {
		name = string(runes[:excelize.MaxSheetNameLength])
	}
	name = strings.Trim(name, "'")
	if name == "" {
		return "Sheet1"
	}
	return name
}

func exportTable(path string, data *store.TableData, options DumpOptions) error {
	switch options.Format {
	case OutputFormatCSV, OutputFormatTSV:
		return writeDelimited(path, data, options)
	case OutputFormatXLSX:
		return writeXLSX(path, data)
	case OutputFormatParquet:
		return writeParquet(path, data)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, options.Format)
	}
}

func columnNames(data *store.TableData) []string {
	names := make([]string, len(data.Columns))
	for i, c := range data.Columns {
		names[i] = c.Name
	}
	return names
}

// writeDelimited writes a CSV or TSV file, compressed if requested.
func writeDelimited(path string, data *store.TableData, options DumpOptions) (err error) {
	w, closeFile, err := newCompressionHandler(options.Compression).createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFile(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	cw := csv.NewWriter(w)
	cw.Comma = options.Format.Delimiter()

	if err := cw.Write(columnNames(data)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	record := make([]string, len(data.Columns))
	for _, row := range data.Rows {
		for i, v := range row {
			record[i] = textValue(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// textValue renders a stored value for text output. NULL is empty.
func textValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// writeXLSX writes the table to a workbook with a single sheet named after it.
func writeXLSX(path string, data *store.TableData) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(data.Name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(data.Columns))
	for i, c := range data.Columns {
		header[i] = c.Name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range data.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, v := range row {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return f.SaveAs(path)
}

// parquetField maps a declared column type to its Arrow type.
func parquetField(c store.ColumnSchema) arrow.Field {
	var dt arrow.DataType
	switch model.ParseColumnType(c.Type) {
	case model.ColumnTypeInteger:
		dt = arrow.PrimitiveTypes.Int64
	case model.ColumnTypeReal:
		dt = arrow.PrimitiveTypes.Float64
	default:
		dt = arrow.BinaryTypes.String
	}
	return arrow.Field{Name: c.Name, Type: dt, Nullable: true}
}

// writeParquet writes the table as a single Parquet row group.
func writeParquet(path string, data *store.TableData) error {
	fields := make([]arrow.Field, len(data.Columns))
	for i, c := range data.Columns {
		fields[i] = parquetField(c)
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()

	for r, row := range data.Rows {
		for i, v := range row {
			if err := appendArrowValue(b.Field(i), v); err != nil {
				return fmt.Errorf("row %d column %q: %w", r+1, fields[i].Name, err)
			}
		}
	}

	rec := b.NewRecord()
	defer rec.Release()

	// The parquet writer closes its sink, so the file is written in one go.
	var buf bytes.Buffer
	fw, err := pqarrow.NewFileWriter(schema, &buf, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	if err := fw.Write(rec); err != nil {
		_ = fw.Close()
		return fmt.Errorf("failed to write parquet record: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0600)
}

func appendArrowValue(b array.Builder, v any) error {
	if v == nil {
		b.AppendNull()
		return nil
	}

	switch builder := b.(type) {
	case *array.Int64Builder:
		n, err := toInt64(v)
		if err != nil {
			return err
		}
		builder.Append(n)
	case *array.Float64Builder:
		f, err := toFloat64(v)
		if err != nil {
			return err
		}
		builder.Append(f)
	case *array.StringBuilder:
		builder.Append(textValue(v))
	default:
		return fmt.Errorf("unsupported arrow builder %T", b)
	}
	return nil
}

func toInt64(v any) (int64, error) {
	switch val := v.(type) {
	case int64:
		return val, nil
	case float64:
		if val != float64(int64(val)) {
			return 0, fmt.Errorf("%w: %v", model.ErrFractionalValue, val)
		}
		return int64(val), nil
	default:
		n, err := strconv.ParseInt(textValue(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", model.ErrNotNumeric, textValue(v))
		}
		return n, nil
	}
}

func toFloat64(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int64:
		return float64(val), nil
	default:
		f, err := strconv.ParseFloat(textValue(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", model.ErrNotNumeric, textValue(v))
		}
		return f, nil
	}
}
