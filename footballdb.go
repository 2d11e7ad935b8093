package footballdb

import (
	"context"

	"github.com/nao1215/footballdb/domain/model"
	"github.com/nao1215/footballdb/store"
)

const (
	// ReceivingTable is the destination table of receiving.csv
	ReceivingTable = "receiving"
	// RosterTable is the destination table of roster.csv
	RosterTable = "roster"
)

type (
	// Table is an in-memory table parsed from a CSV file.
	Table = model.Table
	// ColumnType is the storage type of a column.
	ColumnType = model.ColumnType
	// ColumnTypeMap maps column names to their required type.
	ColumnTypeMap = model.ColumnTypeMap
	// Verification is the read-back of a stored table.
	Verification = store.Verification
	// ColumnSchema describes one stored column.
	ColumnSchema = store.ColumnSchema
	// DumpOptions configures Export.
	DumpOptions = model.DumpOptions
	// OutputFormat is the export file format.
	OutputFormat = model.OutputFormat
	// CompressionType is the export compression.
	CompressionType = model.CompressionType
)

const (
	// ColumnTypeText stores values as TEXT
	ColumnTypeText = model.ColumnTypeText
	// ColumnTypeInteger stores values as INTEGER
	ColumnTypeInteger = model.ColumnTypeInteger
	// ColumnTypeReal stores values as REAL
	ColumnTypeReal = model.ColumnTypeReal

	// OutputFormatCSV represents CSV output format
	OutputFormatCSV = model.OutputFormatCSV
	// OutputFormatTSV represents TSV output format
	OutputFormatTSV = model.OutputFormatTSV
	// OutputFormatXLSX represents Excel output format
	OutputFormatXLSX = model.OutputFormatXLSX
	// OutputFormatParquet represents Parquet output format
	OutputFormatParquet = model.OutputFormatParquet

	// CompressionNone represents no compression
	CompressionNone = model.CompressionNone
	// CompressionGZ represents gzip compression
	CompressionGZ = model.CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2 = model.CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ = model.CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD = model.CompressionZSTD
)

var (
	// NewDumpOptions creates new DumpOptions with default values (CSV format, no compression)
	NewDumpOptions = model.NewDumpOptions
	// ParseOutputFormat parses an export format name.
	ParseOutputFormat = model.ParseOutputFormat
	// ParseCompressionType parses an export compression name.
	ParseCompressionType = model.ParseCompressionType
)

// ReceivingColumnTypes returns the coercion map applied to receiving.csv.
// AVG and AVG/G stay unmapped because they are empty for players without
// receptions.
func ReceivingColumnTypes() ColumnTypeMap {
	return ColumnTypeMap{
		"#":        ColumnTypeInteger,
		"GP":       ColumnTypeInteger,
		"NO":       ColumnTypeInteger,
		"YDS":      ColumnTypeInteger,
		"TD":       ColumnTypeInteger,
		"Long":     ColumnTypeInteger,
		"PlayerID": ColumnTypeInteger,
	}
}

// RosterColumnTypes returns the coercion map applied to roster.csv.
// height is formatted like "6-4" and stays TEXT.
func RosterColumnTypes() ColumnTypeMap {
	return ColumnTypeMap{
		"id":     ColumnTypeInteger,
		"number": ColumnTypeInteger,
	}
}

// Load parses the CSV file at path into a table with inferred column types.
// A missing file is reported as *MissingInputError.
func Load(path string) (*Table, error) {
	if err := newValidator().validateInput(path); err != nil {
		return nil, err
	}
	t, err := model.NewFile(path).ToTable()
	if err != nil {
		return nil, NewErrorContext("load", path).Error(err)
	}
	return t, nil
}

// Coerce returns a copy of t with every column in m reinterpreted as its
// target type. Unmapped columns pass through untouched.
func Coerce(t *Table, m ColumnTypeMap) (*Table, error) {
	return model.Coerce(t, m)
}

// Verify opens the database at dbPath and reads back the named table.
func Verify(ctx context.Context, dbPath, table string, sampleSize int) (*Verification, error) {
	if err := newValidator().validateInput(dbPath); err != nil {
		return nil, err
	}
	s, err := store.Open(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Verify(ctx, table, sampleSize)
}
