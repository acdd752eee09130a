// Package excel converts Excel workbooks into the normalized document model.
package excel

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// CellKind discriminates the raw cell value variants a workbook can hold.
type CellKind int

const (
	// KindEmpty is a cell with no value.
	KindEmpty CellKind = iota
	// KindInteger is a whole number.
	KindInteger
	// KindFloat is a fractional number.
	KindFloat
	// KindString is text.
	KindString
	// KindBool is a boolean.
	KindBool
	// KindDateTime is a date/time decoded from a numeric serial.
	KindDateTime
	// KindDateTimeText is an ISO 8601 date/time kept as text.
	KindDateTimeText
	// KindDurationText is an ISO 8601 duration kept as text.
	KindDurationText
	// KindError is a cell error code such as #DIV/0!.
	KindError
)

// CellValue is a raw typed cell value from a decoded sheet. Exactly one
// payload field is meaningful, selected by Kind.
type CellValue struct {
	Kind  CellKind
	Int   int64
	Float float64
	Str   string
	Bool  bool
	Time  time.Time
}

// Integer returns a whole-number cell value.
func Integer(i int64) CellValue { return CellValue{Kind: KindInteger, Int: i} }

// Float returns a fractional-number cell value.
func Float(f float64) CellValue { return CellValue{Kind: KindFloat, Float: f} }

// String returns a text cell value.
func String(s string) CellValue { return CellValue{Kind: KindString, Str: s} }

// Bool returns a boolean cell value.
func Bool(b bool) CellValue { return CellValue{Kind: KindBool, Bool: b} }

// DateTime returns a decoded date/time cell value.
func DateTime(t time.Time) CellValue { return CellValue{Kind: KindDateTime, Time: t} }

// DateTimeText returns an ISO date/time cell value kept as text.
func DateTimeText(s string) CellValue { return CellValue{Kind: KindDateTimeText, Str: s} }

// DurationText returns an ISO duration cell value kept as text.
func DurationText(s string) CellValue { return CellValue{Kind: KindDurationText, Str: s} }

// Error returns a cell-error value carrying the error code text.
func Error(code string) CellValue { return CellValue{Kind: KindError, Str: code} }

// Empty returns the empty cell value.
func Empty() CellValue { return CellValue{Kind: KindEmpty} }

// Grid is the 2D array of raw cell values for one sheet, in row order.
type Grid [][]CellValue

// Workbook is a decoded spreadsheet: ordered sheet names plus per-sheet
// typed cell grids.
type Workbook struct {
	f *excelize.File
}

// OpenWorkbook decodes a workbook from a byte buffer. The error is fatal to
// the whole conversion: an unrecognized or corrupt container cannot be
// partially read.
func OpenWorkbook(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f}, nil
}

// Close releases the underlying file resources.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// SheetNames returns the sheet names in the order stored in the source file.
func (w *Workbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// SheetGrid materializes the typed cell grid for one sheet. Errors here are
// per-sheet: callers are expected to skip the sheet and continue.
func (w *Workbook) SheetGrid(name string) (Grid, error) {
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, &SheetError{Sheet: name, Err: err}
	}

	grid := make(Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make([]CellValue, len(row))
		for colIdx, formatted := range row {
			cells[colIdx] = w.cellValue(name, colIdx+1, rowIdx+1, formatted)
		}
		grid[rowIdx] = cells
	}
	return grid, nil
}

// cellValue maps one cell to its typed raw value. The formatted value comes
// from GetRows; the cell type and raw serial disambiguate numbers, booleans,
// dates, and errors.
func (w *Workbook) cellValue(sheet string, col, row int, formatted string) CellValue {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return String(formatted)
	}

	cellType, err := w.f.GetCellType(sheet, cellName)
	if err != nil {
		cellType = excelize.CellTypeUnset
	}

	switch cellType {
	case excelize.CellTypeBool:
		return Bool(formatted == "TRUE" || formatted == "1")
	case excelize.CellTypeError:
		return Error(formatted)
	case excelize.CellTypeDate:
		// ISO 8601 text cells: durations lead with P, the rest are
		// date/time stamps.
		if strings.HasPrefix(formatted, "P") || strings.HasPrefix(formatted, "-P") {
			return DurationText(formatted)
		}
		return DateTimeText(formatted)
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		if formatted == "" {
			return Empty()
		}
		return String(formatted)
	}

	// Numeric or untyped cells.
	if formatted == "" {
		return Empty()
	}
	if i, err := strconv.ParseInt(formatted, 10, 64); err == nil {
		return Integer(i)
	}
	if f, err := strconv.ParseFloat(formatted, 64); err == nil {
		return Float(f)
	}

	// A numeric cell whose formatted value is not a number is date-styled;
	// decode the raw serial back into a timestamp. Number cells written
	// without an explicit type attribute report CellTypeUnset.
	if cellType == excelize.CellTypeNumber || cellType == excelize.CellTypeUnset {
		raw, err := w.f.GetCellValue(sheet, cellName, excelize.Options{RawCellValue: true})
		if err == nil {
			if serial, err := strconv.ParseFloat(raw, 64); err == nil {
				if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
					return DateTime(t)
				}
			}
		}
	}
	return String(formatted)
}
