package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/footballdb/domain/model"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// DriverName is the database/sql driver name registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Store is a SQLite database file opened with a single connection.
type Store struct {
	db *sql.DB
}

// ColumnSchema is one row of PRAGMA table_info.
type ColumnSchema struct {
	CID        int
	Name       string
	Type       string
	NotNull    bool
	Default    sql.NullString
	PrimaryKey bool
}

// Verification is the read-back of a stored table used for diagnostics.
type Verification struct {
	Table    string
	RowCount int64
	Schema   []ColumnSchema
	Sample   [][]any
}

// TableData is the full content of a stored table.
type TableData struct {
	Name    string
	Columns []ColumnSchema
	Rows    [][]any
}

// Open opens (creating if necessary) the SQLite database file at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, writeError("", "open", errors.New("database path cannot be empty"))
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, writeError("", "open", err)
	}
	// One run owns one connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() // Ignore close error since we're already returning an error
		return nil, writeError("", "open", err)
	}

	return &Store{db: db}, nil
}

// Close releases the connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Replace drops the table called name if it exists, recreates it from t's
// column info and inserts every record. It returns the number of rows written.
// The whole replacement runs in one transaction.
func (s *Store) Replace(ctx context.Context, name string, t *model.Table) (n int64, err error) {
	if strings.TrimSpace(name) == "" {
		return 0, writeError(name, "create", ErrInvalidTableName)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, writeError(name, "begin", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // The write error is more useful than the rollback error
		}
	}()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+model.QuoteIdentifier(name)); err != nil {
		return 0, writeError(name, "drop", err)
	}

	if _, err := tx.ExecContext(ctx, buildCreateTableQuery(name, t.ColumnInfo())); err != nil {
		return 0, writeError(name, "create", err)
	}

	stmt, err := tx.PrepareContext(ctx, buildInsertQuery(name, len(t.ColumnInfo())))
	if err != nil {
		return 0, writeError(name, "insert", err)
	}
	defer stmt.Close()

	for i, record := range t.Records() {
		values, err := t.Values(record)
		if err != nil {
			return 0, writeError(name, "insert", fmt.Errorf("row %d: %w", i+1, err))
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return 0, writeError(name, "insert", fmt.Errorf("row %d: %w", i+1, err))
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, writeError(name, "commit", err)
	}
	return n, nil
}

// buildCreateTableQuery builds CREATE TABLE for the given columns
func buildCreateTableQuery(name string, columns []model.ColumnInfo) string {
	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		defs = append(defs, col.Definition())
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", model.QuoteIdentifier(name), strings.Join(defs, ", "))
}

// buildInsertQuery builds a positional INSERT for count columns
func buildInsertQuery(name string, count int) string {
	placeholders := make([]string, count)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s VALUES (%s)", model.QuoteIdentifier(name), strings.Join(placeholders, ", "))
}

// TableNames returns all user table names in name order.
func (s *Store) TableNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// HasTable reports whether a table called name exists.
func (s *Store) HasTable(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check table existence: %w", err)
	}
	return count > 0, nil
}

func (s *Store) requireTable(ctx context.Context, name string) error {
	ok, err := s.HasTable(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return nil
}

// RowCount returns SELECT COUNT(*) for the table.
func (s *Store) RowCount(ctx context.Context, name string) (int64, error) {
	if err := s.requireTable(ctx, name); err != nil {
		return 0, err
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+model.QuoteIdentifier(name)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows of %s: %w", name, err)
	}
	return count, nil
}

// Schema returns PRAGMA table_info for the table.
func (s *Store) Schema(ctx context.Context, name string) ([]ColumnSchema, error) {
	if err := s.requireTable(ctx, name); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "PRAGMA table_info("+model.QuoteIdentifier(name)+")")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema of %s: %w", name, err)
	}
	defer rows.Close()

	var schema []ColumnSchema
	for rows.Next() {
		var (
			col     ColumnSchema
			notNull int
			pk      int
		)
		if err := rows.Scan(&col.CID, &col.Name, &col.Type, &notNull, &col.Default, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan schema of %s: %w", name, err)
		}
		col.NotNull = notNull != 0
		col.PrimaryKey = pk != 0
		schema = append(schema, col)
	}
	return schema, rows.Err()
}

// Sample returns up to limit leading rows of the table.
func (s *Store) Sample(ctx context.Context, name string, limit int) ([][]any, error) {
	if err := s.requireTable(ctx, name); err != nil {
		return nil, err
	}
	return s.query(ctx, "SELECT * FROM "+model.QuoteIdentifier(name)+" LIMIT ?", limit)
}

// Verify reads back row count, schema and up to sampleSize leading rows of
// the table. A negative sampleSize reads no sample.
func (s *Store) Verify(ctx context.Context, name string, sampleSize int) (*Verification, error) {
	if sampleSize < 0 {
		sampleSize = 0
	}

	count, err := s.RowCount(ctx, name)
	if err != nil {
		return nil, err
	}
	schema, err := s.Schema(ctx, name)
	if err != nil {
		return nil, err
	}
	sample, err := s.Sample(ctx, name, sampleSize)
	if err != nil {
		return nil, err
	}

	return &Verification{
		Table:    name,
		RowCount: count,
		Schema:   schema,
		Sample:   sample,
	}, nil
}

// ReadTable returns the schema and every row of the table in rowid order.
func (s *Store) ReadTable(ctx context.Context, name string) (*TableData, error) {
	schema, err := s.Schema(ctx, name)
	if err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, "SELECT * FROM "+model.QuoteIdentifier(name)+" ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	return &TableData{Name: name, Columns: schema, Rows: rows}, nil
}

// query runs a SELECT and scans every row into a slice of driver values.
func (s *Store) query(ctx context.Context, query string, args ...any) ([][]any, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var result [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, values)
	}
	return result, rows.Err()
}
