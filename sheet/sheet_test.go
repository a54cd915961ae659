package sheet

import (
	"path/filepath"
	"testing"
)

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	rows := [][]string{
		{"Fund Name", "Buy/Sell", "Units"},
		{"FundX", "SELL", "100"},
		{"FundY", "BUY", "60.5"},
	}

	if err := Write(path, "MF Data", rows); err != nil {
		t.Fatalf("Write() returned unexpected error: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() returned unexpected error: %v", err)
	}

	if len(got) != len(rows) {
		t.Fatalf("got %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		for j := range rows[i] {
			if got[i][j] != rows[i][j] {
				t.Errorf("cell (%d,%d) = %q, want %q", i, j, got[i][j], rows[i][j])
			}
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Error("Read() should fail on a missing file")
	}
}
