// Package output serializes documents to JSON and YAML. Block and Inline
// are closed interfaces, so serialization goes through an explicit view
// layer that tags each variant with a type field.
package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/document"
)

type documentView struct {
	Blocks   []blockView  `json:"blocks" yaml:"blocks"`
	Metadata metadataView `json:"metadata" yaml:"metadata"`
	Notes    []blockView  `json:"notes" yaml:"notes"`
	Comments []blockView  `json:"comments" yaml:"comments"`
}

type metadataView struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string   `json:"author,omitempty" yaml:"author,omitempty"`
	Subject  string   `json:"subject,omitempty" yaml:"subject,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Created  string   `json:"created,omitempty" yaml:"created,omitempty"`
	Modified string   `json:"modified,omitempty" yaml:"modified,omitempty"`
}

type blockView struct {
	Type string `json:"type" yaml:"type"`

	// Table fields.
	Rows []rowView `json:"rows,omitempty" yaml:"rows,omitempty"`

	// Paragraph fields.
	Kind    string       `json:"kind,omitempty" yaml:"kind,omitempty"`
	Inlines []inlineView `json:"inlines,omitempty" yaml:"inlines,omitempty"`
}

type rowView struct {
	Kind  string     `json:"kind" yaml:"kind"`
	Cells []cellView `json:"cells" yaml:"cells"`
}

type cellView struct {
	Blocks  []blockView `json:"blocks" yaml:"blocks"`
	ColSpan int         `json:"colspan" yaml:"colspan"`
	RowSpan int         `json:"rowspan" yaml:"rowspan"`
}

type inlineView struct {
	Type string `json:"type" yaml:"type"`
	Text string `json:"text" yaml:"text"`
}

// ToJSON serializes a document to JSON.
func ToJSON(doc *document.Document, pretty bool) ([]byte, error) {
	view := newDocumentView(doc)
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}

// ToYAML serializes a document to YAML.
func ToYAML(doc *document.Document) ([]byte, error) {
	return yaml.Marshal(newDocumentView(doc))
}

func newDocumentView(doc *document.Document) documentView {
	return documentView{
		Blocks:   blockViews(doc.Blocks),
		Metadata: newMetadataView(doc.Metadata),
		Notes:    blockViews(doc.Notes),
		Comments: blockViews(doc.Comments),
	}
}

func newMetadataView(m document.Metadata) metadataView {
	v := metadataView{
		Title:    m.Title,
		Author:   m.Author,
		Subject:  m.Subject,
		Keywords: m.Keywords,
	}
	if !m.Created.IsZero() {
		v.Created = m.Created.Format(time.RFC3339)
	}
	if !m.Modified.IsZero() {
		v.Modified = m.Modified.Format(time.RFC3339)
	}
	return v
}

func blockViews(blocks []document.Block) []blockView {
	views := make([]blockView, 0, len(blocks))
	for _, b := range blocks {
		views = append(views, newBlockView(b))
	}
	return views
}

func newBlockView(b document.Block) blockView {
	switch b := b.(type) {
	case *document.Table:
		rows := make([]rowView, 0, len(b.Rows))
		for _, row := range b.Rows {
			cells := make([]cellView, 0, len(row.Cells))
			for _, cell := range row.Cells {
				cells = append(cells, cellView{
					Blocks:  blockViews(cell.Blocks),
					ColSpan: cell.ColSpan,
					RowSpan: cell.RowSpan,
				})
			}
			rows = append(rows, rowView{Kind: row.Kind.String(), Cells: cells})
		}
		return blockView{Type: "table", Rows: rows}
	case *document.Paragraph:
		inlines := make([]inlineView, 0, len(b.Inlines))
		for _, in := range b.Inlines {
			inlines = append(inlines, newInlineView(in))
		}
		return blockView{Type: "paragraph", Kind: b.Kind.String(), Inlines: inlines}
	default:
		panic(fmt.Sprintf("output: unknown block type %T", b))
	}
}

func newInlineView(in document.Inline) inlineView {
	switch in := in.(type) {
	case document.Text:
		return inlineView{Type: "text", Text: string(in)}
	default:
		panic(fmt.Sprintf("output: unknown inline type %T", in))
	}
}
