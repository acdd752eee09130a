// Package csvdoc converts CSV buffers into the normalized document model.
// A CSV file is treated as a single-sheet workbook of text cells.
package csvdoc

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/document"
)

// Provider converts CSV buffers into documents.
type Provider struct{}

// NewProvider creates a CSV provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the provider identifier used for dispatch.
func (p *Provider) Name() string {
	return "csv"
}

// ParseBuffer parses CSV data into a document with at most one table
// block. An empty input yields a document with no blocks.
func (p *Provider) ParseBuffer(data []byte) (*document.Document, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	var rows []document.TableRow
	isFirstRow := true
	for _, record := range records {
		if len(record) == 0 {
			continue
		}

		cells := make([]document.TableCell, len(record))
		for i, field := range record {
			cells[i] = document.TextCell(field)
		}

		kind := document.RowBody
		if isFirstRow && recordContainsText(record) {
			kind = document.RowHeader
		}
		isFirstRow = false

		rows = append(rows, document.TableRow{Cells: cells, Kind: kind})
	}

	doc := &document.Document{Metadata: document.Metadata{}}
	if len(rows) > 0 {
		doc.Blocks = []document.Block{&document.Table{Rows: rows}}
	}
	return doc, nil
}

// recordContainsText reports whether a record has at least one field that
// is not a number. CSV carries no cell types, so numeric-looking fields
// stand in for the number variants of richer formats.
func recordContainsText(record []string) bool {
	for _, field := range record {
		if field == "" {
			continue
		}
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return true
		}
	}
	return false
}
