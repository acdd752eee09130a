package excel

import (
	"testing"
	"time"

	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/document"
)

func TestCellString(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cell     CellValue
		expected string
	}{
		{"integer", Integer(42), "42"},
		{"negative integer", Integer(-7), "-7"},
		{"float", Float(3.14), "3.14"},
		{"float whole", Float(2), "2"},
		{"string", String("test"), "test"},
		{"empty string", String(""), ""},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"datetime", DateTime(ts), "2024-03-15T09:30:00Z"},
		{"datetime text", DateTimeText("2024-03-15T09:30:00"), "2024-03-15T09:30:00"},
		{"duration text", DurationText("PT1H30M"), "PT1H30M"},
		{"error", Error("#DIV/0!"), "Error: #DIV/0!"},
		{"empty", Empty(), ""},
	}

	for _, tt := range tests {
		if got := cellString(tt.cell); got != tt.expected {
			t.Errorf("%s: cellString() = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestCellStringDeterministic(t *testing.T) {
	cells := []CellValue{Integer(1), Float(1.5), String("x"), Bool(true), Empty()}
	for _, c := range cells {
		if cellString(c) != cellString(c) {
			t.Errorf("cellString not deterministic for kind %d", c.Kind)
		}
	}
}

func TestRowContainsText(t *testing.T) {
	withText := []CellValue{String("Header"), Integer(42)}
	if !rowContainsText(withText) {
		t.Error("expected text in row with a string cell")
	}

	withoutText := []CellValue{Integer(42), Float(3.14)}
	if rowContainsText(withoutText) {
		t.Error("expected no text in numeric row")
	}

	if rowContainsText(nil) {
		t.Error("expected no text in empty row")
	}

	// Non-string text-ish variants do not count as text.
	isoRow := []CellValue{DateTimeText("2024-01-01"), DurationText("PT1H")}
	if rowContainsText(isoRow) {
		t.Error("ISO text variants must not trigger header detection")
	}
}

func TestSheetToTableEmpty(t *testing.T) {
	if table := sheetToTable(nil); table != nil {
		t.Errorf("expected nil table for empty grid, got %v", table)
	}

	// Rows with zero cells are skipped; a grid of only such rows yields
	// no table.
	grid := Grid{{}, {}}
	if table := sheetToTable(grid); table != nil {
		t.Errorf("expected nil table for grid of empty rows, got %v", table)
	}
}

func TestSheetToTableHeaderDetection(t *testing.T) {
	grid := Grid{
		{String("Name"), String("Age")},
		{String("Alice"), Integer(30)},
	}
	table := sheetToTable(grid)
	if table == nil {
		t.Fatal("expected a table")
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Kind != document.RowHeader {
		t.Error("expected first row to be a header")
	}
	if table.Rows[1].Kind != document.RowBody {
		t.Error("expected second row to be body")
	}
}

func TestSheetToTableNumericFirstRow(t *testing.T) {
	grid := Grid{
		{Integer(1), Float(2.5)},
		{String("label"), Integer(3)},
	}
	table := sheetToTable(grid)
	if table == nil {
		t.Fatal("expected a table")
	}
	if table.Rows[0].Kind != document.RowBody {
		t.Error("numeric first row must be body")
	}
	// The first-row state is consumed: later text rows stay body.
	if table.Rows[1].Kind != document.RowBody {
		t.Error("second row must be body even though it contains text")
	}
}

func TestSheetToTableSkippedRowsKeepFirstRowState(t *testing.T) {
	// Zero-cell rows are skipped without consuming header detection: the
	// first row with at least one cell is still eligible.
	grid := Grid{
		{},
		{String("Name")},
		{Integer(1)},
	}
	table := sheetToTable(grid)
	if table == nil {
		t.Fatal("expected a table")
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Kind != document.RowHeader {
		t.Error("first non-empty row should be classified header")
	}
}

func TestSheetToTableCellShape(t *testing.T) {
	grid := Grid{{String("x"), Empty()}}
	table := sheetToTable(grid)
	if table == nil {
		t.Fatal("expected a table")
	}

	row := table.Rows[0]
	if len(row.Cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(row.Cells))
	}

	for i, want := range []string{"x", ""} {
		cell := row.Cells[i]
		if cell.ColSpan != 1 || cell.RowSpan != 1 {
			t.Errorf("cell %d: spans = %dx%d, expected 1x1", i, cell.ColSpan, cell.RowSpan)
		}
		if len(cell.Blocks) != 1 {
			t.Fatalf("cell %d: expected 1 block, got %d", i, len(cell.Blocks))
		}
		para, ok := cell.Blocks[0].(*document.Paragraph)
		if !ok {
			t.Fatalf("cell %d: expected paragraph block, got %T", i, cell.Blocks[0])
		}
		if para.Kind != document.ParagraphNormal {
			t.Errorf("cell %d: expected normal paragraph", i)
		}
		if len(para.Inlines) != 1 {
			t.Fatalf("cell %d: expected 1 inline, got %d", i, len(para.Inlines))
		}
		text, ok := para.Inlines[0].(document.Text)
		if !ok {
			t.Fatalf("cell %d: expected text inline, got %T", i, para.Inlines[0])
		}
		if string(text) != want {
			t.Errorf("cell %d: text = %q, expected %q", i, text, want)
		}
	}
}

func TestSheetToTableRowCount(t *testing.T) {
	grid := Grid{
		{String("a")},
		{},
		{Integer(1)},
		{},
		{Float(2.5)},
	}
	table := sheetToTable(grid)
	if table == nil {
		t.Fatal("expected a table")
	}
	if len(table.Rows) != 3 {
		t.Errorf("expected 3 rows (empty rows skipped), got %d", len(table.Rows))
	}
}
