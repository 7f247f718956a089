package dirzip

import "log/slog"

// packConfig holds configuration for Pack.
type packConfig struct {
	compression Compression
	logger      *slog.Logger
	progress    ProgressFunc
}

// PackOption configures Pack.
type PackOption func(*packConfig)

// PackWithCompression sets the method used to store file content.
// The default is CompressionDeflate.
func PackWithCompression(c Compression) PackOption {
	return func(cfg *packConfig) {
		cfg.compression = c
	}
}

// PackWithLogger sets the logger. Entries are logged at debug level and the
// summary at info level. By default, nothing is logged.
func PackWithLogger(logger *slog.Logger) PackOption {
	return func(cfg *packConfig) {
		cfg.logger = logger
	}
}

// PackWithProgress sets a callback invoked after each entry is written.
func PackWithProgress(fn ProgressFunc) PackOption {
	return func(cfg *packConfig) {
		cfg.progress = fn
	}
}

func (c *packConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}
