package excel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/document"
)

// sheetToTable lowers one sheet grid into a table block, or nil when the
// sheet yields no rows. Zero-cell source rows are skipped entirely and do
// not count as the first row for header detection.
func sheetToTable(grid Grid) *document.Table {
	var rows []document.TableRow
	isFirstRow := true

	for _, row := range grid {
		if len(row) == 0 {
			continue
		}

		cells := make([]document.TableCell, len(row))
		for i, cell := range row {
			cells[i] = document.TextCell(cellString(cell))
		}

		kind := document.RowBody
		if isFirstRow && rowContainsText(row) {
			kind = document.RowHeader
		}
		isFirstRow = false

		rows = append(rows, document.TableRow{Cells: cells, Kind: kind})
	}

	if len(rows) == 0 {
		return nil
	}
	return &document.Table{Rows: rows}
}

// cellString renders a raw cell value as text. Total over every CellKind
// and deterministic.
func cellString(v CellValue) string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindString:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDateTime:
		return v.Time.Format(time.RFC3339)
	case KindDateTimeText:
		return v.Str
	case KindDurationText:
		return v.Str
	case KindError:
		return "Error: " + v.Str
	case KindEmpty:
		return ""
	default:
		panic(fmt.Sprintf("excel: unknown cell kind %d", v.Kind))
	}
}

// rowContainsText reports whether a row has at least one text cell. Rows
// whose first occurrence carries text are heuristically treated as headers;
// a row made entirely of numbers is more likely body data.
func rowContainsText(row []CellValue) bool {
	for _, cell := range row {
		if cell.Kind == KindString {
			return true
		}
	}
	return false
}
