package model

import (
	"testing"
)

func TestHeader_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		h1   Header
		h2   Header
		want bool
	}{
		{"same", NewHeader([]string{"#", "GP"}), NewHeader([]string{"#", "GP"}), true},
		{"different order", NewHeader([]string{"#", "GP"}), NewHeader([]string{"GP", "#"}), false},
		{"different length", NewHeader([]string{"#"}), NewHeader([]string{"#", "GP"}), false},
		{"both empty", NewHeader(nil), NewHeader([]string{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.h1.Equal(tt.h2); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeader_Index(t *testing.T) {
	t.Parallel()

	h := NewHeader([]string{"#", "GP", "AVG/G"})
	if got := h.Index("AVG/G"); got != 2 {
		t.Errorf("Index(AVG/G) = %d, want 2", got)
	}
	if got := h.Index("avg/g"); got != -1 {
		t.Errorf("Index is case sensitive, got %d", got)
	}
}

func TestRecord_Equal(t *testing.T) {
	t.Parallel()

	r := NewRecord([]string{"10", ""})
	if !r.Equal(NewRecord([]string{"10", ""})) {
		t.Error("expected records to be equal")
	}
	if r.Equal(NewRecord([]string{"10", "0"})) {
		t.Error("empty cell must not equal zero")
	}
}

func TestColumnType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ct   ColumnType
		want string
	}{
		{ColumnTypeText, "TEXT"},
		{ColumnTypeInteger, "INTEGER"},
		{ColumnTypeReal, "REAL"},
		{ColumnType(99), "TEXT"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("ColumnType(%d).String() = %s, want %s", tt.ct, got, tt.want)
		}
	}
}

func TestParseColumnType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		decl string
		want ColumnType
	}{
		{"INTEGER", ColumnTypeInteger},
		{"integer", ColumnTypeInteger},
		{"REAL", ColumnTypeReal},
		{"TEXT", ColumnTypeText},
		{"", ColumnTypeText},
		{"BLOB", ColumnTypeText},
	}
	for _, tt := range tests {
		if got := ParseColumnType(tt.decl); got != tt.want {
			t.Errorf("ParseColumnType(%q) = %s, want %s", tt.decl, got, tt.want)
		}
	}
}

func TestColumnInfo_Definition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		col  ColumnInfo
		want string
	}{
		{"required integer", ColumnInfo{Name: "#", Type: ColumnTypeInteger, Required: true}, `"#" INTEGER NOT NULL`},
		{"nullable real", ColumnInfo{Name: "AVG/G", Type: ColumnTypeReal}, `"AVG/G" REAL`},
		{"quote in name", ColumnInfo{Name: `a"b`, Type: ColumnTypeText}, `"a""b" TEXT`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.col.Definition(); got != tt.want {
				t.Errorf("Definition() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestColumnInfo_Value(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		col     ColumnInfo
		raw     string
		want    any
		wantErr bool
	}{
		{"integer", ColumnInfo{Name: "GP", Type: ColumnTypeInteger}, "8", int64(8), false},
		{"integer with spaces", ColumnInfo{Name: "GP", Type: ColumnTypeInteger}, " 8 ", int64(8), false},
		{"integer not numeric", ColumnInfo{Name: "GP", Type: ColumnTypeInteger}, "eight", nil, true},
		{"real", ColumnInfo{Name: "AVG", Type: ColumnTypeReal}, "12.5", 12.5, false},
		{"missing real is null", ColumnInfo{Name: "AVG", Type: ColumnTypeReal}, "", nil, false},
		{"text kept verbatim", ColumnInfo{Name: "height", Type: ColumnTypeText}, "6-4", "6-4", false},
		{"missing text is null", ColumnInfo{Name: "hometown", Type: ColumnTypeText}, "  ", nil, false},
		{"NA real is null", ColumnInfo{Name: "AVG", Type: ColumnTypeReal}, "NA", nil, false},
		{"NaN real is null", ColumnInfo{Name: "AVG", Type: ColumnTypeReal}, "NaN", nil, false},
		{"null text is null", ColumnInfo{Name: "photo_url", Type: ColumnTypeText}, "null", nil, false},
		{"None integer is null", ColumnInfo{Name: "GP", Type: ColumnTypeInteger}, " None ", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.col.Value(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Value(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Value(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}
