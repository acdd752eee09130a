package document

import "testing"

func TestTextCell(t *testing.T) {
	cell := TextCell("hello")

	if cell.ColSpan != 1 || cell.RowSpan != 1 {
		t.Errorf("spans = %dx%d, expected 1x1", cell.ColSpan, cell.RowSpan)
	}
	if len(cell.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(cell.Blocks))
	}

	para, ok := cell.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("expected paragraph, got %T", cell.Blocks[0])
	}
	if para.Kind != ParagraphNormal {
		t.Error("expected normal paragraph")
	}
	if len(para.Inlines) != 1 {
		t.Fatalf("expected 1 inline, got %d", len(para.Inlines))
	}
	if text := para.Inlines[0].(Text); string(text) != "hello" {
		t.Errorf("text = %q, expected %q", text, "hello")
	}
}

func TestRowKindString(t *testing.T) {
	if RowHeader.String() != "header" {
		t.Errorf("RowHeader.String() = %q", RowHeader.String())
	}
	if RowBody.String() != "body" {
		t.Errorf("RowBody.String() = %q", RowBody.String())
	}
}
