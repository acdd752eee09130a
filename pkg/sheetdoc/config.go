package sheetdoc

import "log/slog"

// Config configures a conversion pipeline.
type Config struct {
	// MaxFileSize is the maximum file size ConvertFile will read
	// (default: 100 MB).
	MaxFileSize int64

	// Logger receives debug/skip diagnostics.
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
