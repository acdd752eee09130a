// Package document defines the normalized, format-agnostic document model
// that every provider produces. A Document is an ordered sequence of
// block-level elements; consumers never see the source file format.
package document

import "time"

// Document is the top-level conversion artifact. It is owned by the caller
// and never mutated after construction.
type Document struct {
	// Blocks are the block-level elements, in source order.
	Blocks []Block
	// Metadata holds document-level information, default-valued when the
	// source format carries none.
	Metadata Metadata
	// Notes holds footnote/endnote content.
	Notes []Block
	// Comments holds reviewer comment content.
	Comments []Block
}

// Metadata contains document-level information.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Created  time.Time
	Modified time.Time
}

// Block is a block-level element of a document. Implementations are closed:
// Table and Paragraph are the only variants.
type Block interface {
	blockNode()
}

// RowKind classifies a table row.
type RowKind int

const (
	// RowBody is an ordinary data row.
	RowBody RowKind = iota
	// RowHeader is a row holding column labels.
	RowHeader
)

// String returns the serialization tag for the row kind.
func (k RowKind) String() string {
	if k == RowHeader {
		return "header"
	}
	return "body"
}

// Table is an ordered sequence of rows. A Table is never constructed with
// zero rows; sources with no content produce no Table at all.
type Table struct {
	Rows []TableRow
}

func (*Table) blockNode() {}

// TableRow holds the cells of one row. Rows always have at least one cell.
type TableRow struct {
	Cells []TableCell
	Kind  RowKind
}

// TableCell holds block content plus its grid span. Spans are fixed at 1
// when the source has no merged-cell information.
type TableCell struct {
	Blocks  []Block
	ColSpan int
	RowSpan int
}

// ParagraphKind classifies a paragraph.
type ParagraphKind int

const (
	// ParagraphNormal is body text.
	ParagraphNormal ParagraphKind = iota
)

// String returns the serialization tag for the paragraph kind.
func (k ParagraphKind) String() string {
	return "normal"
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Kind    ParagraphKind
	Inlines []Inline
}

func (*Paragraph) blockNode() {}

// Inline is an inline element within a paragraph. Text is the only variant
// produced by the spreadsheet providers.
type Inline interface {
	inlineNode()
}

// Text is a plain text run.
type Text string

func (Text) inlineNode() {}

// TextCell builds the standard single-text-run cell used by tabular
// providers: one Normal paragraph wrapping one Text inline, 1x1 span.
func TextCell(text string) TableCell {
	return TableCell{
		Blocks: []Block{
			&Paragraph{
				Kind:    ParagraphNormal,
				Inlines: []Inline{Text(text)},
			},
		},
		ColSpan: 1,
		RowSpan: 1,
	}
}
