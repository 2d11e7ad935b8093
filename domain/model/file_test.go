package model

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestFile_ToTable_CSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "roster.csv",
		"id,number,name,height,weight\n"+
			"501,10,\"Smith, John\",6-4,205\n"+
			"502,81,Jones,5-11,\n")

	table, err := NewFile(path).ToTable()
	if err != nil {
		t.Fatalf("ToTable() error = %v", err)
	}

	if table.Name() != "roster" {
		t.Errorf("expected table name roster, got %s", table.Name())
	}
	rows, cols := table.Shape()
	if rows != 2 || cols != 5 {
		t.Errorf("expected shape (2, 5), got (%d, %d)", rows, cols)
	}
	if got := table.Records()[0][2]; got != "Smith, John" {
		t.Errorf("quoted field not parsed, got %q", got)
	}

	wantTypes := map[string]ColumnType{
		"id":     ColumnTypeInteger,
		"number": ColumnTypeInteger,
		"name":   ColumnTypeText,
		"height": ColumnTypeText,
		"weight": ColumnTypeReal,
	}
	for name, want := range wantTypes {
		col, ok := table.Column(name)
		if !ok {
			t.Fatalf("column %s not found", name)
		}
		if col.Type != want {
			t.Errorf("column %s: expected %s, got %s", name, want, col.Type)
		}
	}
}

func TestFile_ToTable_BOMAndHeaderWhitespace(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "receiving.csv", "\ufeff# , GP\n10,8\n")

	table, err := NewFile(path).ToTable()
	if err != nil {
		t.Fatalf("ToTable() error = %v", err)
	}
	if !table.Header().Equal(NewHeader([]string{"#", "GP"})) {
		t.Errorf("unexpected header %q", table.Header())
	}
}

func TestFile_ToTable_HeaderOnly(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "receiving.csv", "#,GP,PlayerID\n")

	table, err := NewFile(path).ToTable()
	if err != nil {
		t.Fatalf("ToTable() error = %v", err)
	}
	rows, cols := table.Shape()
	if rows != 0 || cols != 3 {
		t.Errorf("expected shape (0, 3), got (%d, %d)", rows, cols)
	}
}

func TestFile_ToTable_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"empty file", "empty.csv", "", ErrEmptyData},
		{"duplicate columns", "dup.csv", "id,id\n1,2\n", ErrDuplicateColumnName},
		{"ragged row", "ragged.csv", "id,name\n1\n", ErrInvalidData},
		{"unsupported extension", "roster.tsv", "id\tname\n", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, tt.file, tt.content)
			_, err := NewFile(path).ToTable()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFile_ToTable_NotExist(t *testing.T) {
	t.Parallel()

	_, err := NewFile(filepath.Join(t.TempDir(), "missing.csv")).ToTable()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestParseCSV(t *testing.T) {
	t.Parallel()

	table, err := ParseCSV(strings.NewReader("a,b\n1,x\n"), "t")
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if table.Name() != "t" {
		t.Errorf("expected name t, got %s", table.Name())
	}
}

func TestTableFromFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"Data/receiving.csv", "receiving"},
		{"/abs/Data/roster.csv", "roster"},
		{"roster", "roster"},
		{"data.backup.csv", "data.backup"},
	}
	for _, tt := range tests {
		if got := TableFromFilePath(tt.path); got != tt.want {
			t.Errorf("TableFromFilePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
