package excel

import (
	"log/slog"

	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/document"
)

// workbook is the decoder surface the assembler needs: ordered sheet names
// and per-sheet typed grids.
type workbook interface {
	SheetNames() []string
	SheetGrid(name string) (Grid, error)
}

// Provider converts Excel workbook buffers into documents.
type Provider struct {
	logger *slog.Logger
}

// NewProvider creates an Excel provider. A nil logger falls back to
// slog.Default.
func NewProvider(logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{logger: logger}
}

// Name returns the provider identifier used for dispatch.
func (p *Provider) Name() string {
	return "excel"
}

// ParseBuffer decodes a workbook and assembles one document. Only a failure
// to open the workbook itself aborts the conversion.
func (p *Provider) ParseBuffer(data []byte) (*document.Document, error) {
	wb, err := OpenWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return p.assemble(wb), nil
}

// assemble turns each sheet that yields rows into a table block, in sheet
// order. A sheet whose grid cannot be read is skipped: a single corrupt
// sheet must not abort the rest of the workbook.
func (p *Provider) assemble(wb workbook) *document.Document {
	var blocks []document.Block
	for _, name := range wb.SheetNames() {
		grid, err := wb.SheetGrid(name)
		if err != nil {
			p.logger.Debug("skipping unreadable sheet", "sheet", name, "err", err)
			continue
		}
		if table := sheetToTable(grid); table != nil {
			blocks = append(blocks, table)
		}
	}

	return &document.Document{
		Blocks:   blocks,
		Metadata: document.Metadata{},
	}
}
