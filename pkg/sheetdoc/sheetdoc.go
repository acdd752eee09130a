// Package sheetdoc converts spreadsheet files into a normalized document
// model. Each supported source format is handled by a Provider; the
// Pipeline detects the format and dispatches to the matching provider so
// consumers only ever see document values.
//
// Usage:
//
//	pipe := sheetdoc.New(sheetdoc.Config{})
//	doc, err := pipe.ConvertFile(ctx, "report.xlsx")
//	fmt.Println(len(doc.Blocks), "blocks")
package sheetdoc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/csvdoc"
	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/document"
	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/excel"
)

// Provider converts buffers of one source format into documents.
type Provider interface {
	// Name returns the static identifier used for selection.
	Name() string
	// ParseBuffer converts a byte buffer into a document. It has no side
	// effects beyond the returned value.
	ParseBuffer(data []byte) (*document.Document, error)
}

// Pipeline dispatches conversions to registered providers. The provider set
// is fixed at construction; a Pipeline is safe for concurrent use.
type Pipeline struct {
	cfg       Config
	logger    *slog.Logger
	providers map[string]Provider
}

// New creates a Pipeline with the built-in providers registered.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	p := &Pipeline{
		cfg:       cfg,
		logger:    cfg.Logger,
		providers: make(map[string]Provider),
	}
	p.register(excel.NewProvider(cfg.Logger))
	p.register(csvdoc.NewProvider())
	return p
}

func (p *Pipeline) register(prov Provider) {
	p.providers[prov.Name()] = prov
}

// Detect returns the provider name for a path based on its extension.
func (p *Pipeline) Detect(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return "excel", nil
	case ".csv":
		return "csv", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Convert parses a buffer with the named provider.
func (p *Pipeline) Convert(provider string, data []byte) (*document.Document, error) {
	prov, ok := p.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoProvider, provider)
	}

	p.logger.Debug("converting buffer", "provider", provider, "bytes", len(data))

	doc, err := prov.ParseBuffer(data)
	if err != nil {
		return nil, fmt.Errorf("convert (%s): %w", provider, err)
	}
	return doc, nil
}

// ConvertFile reads a file, detects its format, and converts it.
func (p *Pipeline) ConvertFile(ctx context.Context, path string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > p.cfg.MaxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), p.cfg.MaxFileSize)
	}

	provider, err := p.Detect(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p.Convert(provider, data)
}

// SupportedFormats returns all supported format extensions.
func SupportedFormats() []string {
	return []string{"xlsx", "xlsm", "xltx", "xltm", "csv"}
}
