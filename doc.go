// Package footballdb loads football receiving statistics and team rosters
// from CSV files into a SQLite database file.
//
// A run reads two fixed files, receiving.csv and roster.csv, from a data
// directory. Column types are inferred from the text, a fixed set of columns
// is then coerced to INTEGER, and each table is written to the database with
// drop-and-recreate semantics. Row counts, schemas and a few sample rows are
// read back and printed to confirm the load.
//
// # Basic Usage
//
//	pipeline, err := footballdb.NewBuilder().
//	    WithDataDir("Data").
//	    WithDatabase("football_data.db").
//	    Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := pipeline.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary.Tables[0].RowCount)
//
// Build checks both inputs before anything is parsed or written, so a missing
// file is reported as a *MissingInputError and the database is left alone.
//
// # Column Types
//
// Inference assigns TEXT to any column with non-numeric content, REAL to
// numeric columns with fractions or missing cells, and INTEGER to fully
// populated whole-number columns. ReceivingColumnTypes and RosterColumnTypes
// then force the identifier and counter columns to INTEGER. A missing or
// fractional value in one of those columns fails the run with a
// *CoercionError; nothing is substituted.
//
// A cell is missing when it is empty or holds an NA marker such as "NA",
// "N/A", "NaN", "null" or "None". Missing cells are stored as NULL.
//
// # Replace Semantics
//
// Each table is dropped and recreated inside one transaction. If the roster
// fails after the receiving table was written, the receiving table stays
// committed. Other tables in the database file are not touched.
//
// # Export
//
// Export writes every table of a database file to a directory as CSV, TSV,
// XLSX or Parquet. Text formats can be compressed with gzip, xz or zstd:
//
//	options := footballdb.NewDumpOptions().
//	    WithFormat(footballdb.OutputFormatTSV).
//	    WithCompression(footballdb.CompressionZSTD)
//	err := footballdb.Export(ctx, "football_data.db", "./out", options)
//
// # Error Handling
//
// Errors are typed and work with errors.Is and errors.As:
//
//	var coercionErr *footballdb.CoercionError
//	if errors.As(err, &coercionErr) {
//	    fmt.Println(coercionErr.Column, coercionErr.Row)
//	}
//	if errors.Is(err, footballdb.ErrStoreWrite) {
//	    // the database rejected a write
//	}
package footballdb
