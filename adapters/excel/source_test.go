package excel

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"contactdesk/internal/errors"
)

// writeTestWorkbook builds a small two-sheet workbook on disk.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Riksdag_SeatHolders_349"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	rows := [][]interface{}{
		{" Name ", "Party", "Email"},
		{"Anna Andersson", "S", " anna@example.se "},
		{"Bo Berg", "M", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Riksdag_SeatHolders_349", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	if _, err := f.NewSheet("Top_200_X"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	if err := f.SetSheetRow("Top_200_X", "A1", &[]interface{}{"Name", "X_Handle"}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	if err := f.SetSheetRow("Top_200_X", "A2", &[]interface{}{"Alice", "@alice"}); err != nil {
		t.Fatalf("set row: %v", err)
	}

	path := filepath.Join(t.TempDir(), "contacts.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadSheet(t *testing.T) {
	source := NewSource(writeTestWorkbook(t))

	tbl, err := source.ReadSheet("Riksdag_SeatHolders_349")
	if err != nil {
		t.Fatalf("ReadSheet returned error: %v", err)
	}

	if len(tbl.Headers) != 3 || tbl.Headers[0] != "Name" {
		t.Errorf("expected trimmed headers [Name Party Email], got %v", tbl.Headers)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 data rows, got %d", tbl.Len())
	}
	if tbl.Rows[0]["Email"] != "anna@example.se" {
		t.Errorf("expected trimmed cell, got %q", tbl.Rows[0]["Email"])
	}
	if tbl.Rows[1]["Email"] != "" {
		t.Errorf("expected empty cell for missing value, got %q", tbl.Rows[1]["Email"])
	}
}

func TestReadSheetTwiceReturnsIdenticalContent(t *testing.T) {
	source := NewSource(writeTestWorkbook(t))

	first, err := source.ReadSheet("Top_200_X")
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := source.ReadSheet("Top_200_X")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("row counts differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Rows {
		for _, h := range first.Headers {
			if first.Rows[i][h] != second.Rows[i][h] {
				t.Errorf("row %d column %s differs: %q vs %q", i, h, first.Rows[i][h], second.Rows[i][h])
			}
		}
	}
}

func TestSheetNames(t *testing.T) {
	source := NewSource(writeTestWorkbook(t))

	names, err := source.SheetNames()
	if err != nil {
		t.Fatalf("SheetNames returned error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("expected 2 sheets, got %v", names)
	}
	if names[0] != "Riksdag_SeatHolders_349" || names[1] != "Top_200_X" {
		t.Errorf("unexpected sheet order: %v", names)
	}
}

func TestMissingSheet(t *testing.T) {
	source := NewSource(writeTestWorkbook(t))

	_, err := source.ReadSheet("No_Such_Sheet")
	if err == nil {
		t.Fatal("expected error for missing sheet")
	}
	if !errors.HasCode(err, errors.CodeSheetNotFound) {
		t.Errorf("expected code %s, got %s", errors.CodeSheetNotFound, errors.GetCode(err))
	}
}

func TestMissingFile(t *testing.T) {
	source := NewSource(filepath.Join(t.TempDir(), "nope.xlsx"))

	_, err := source.ReadSheet("Riksdag_SeatHolders_349")
	if err == nil {
		t.Fatal("expected error for missing workbook")
	}
	if !errors.HasCode(err, errors.CodeFileNotFound) {
		t.Errorf("expected code %s, got %s", errors.CodeFileNotFound, errors.GetCode(err))
	}
}
