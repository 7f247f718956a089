package dirzip

import "log/slog"

// unpackConfig holds configuration for Unpack.
type unpackConfig struct {
	keepPartial bool
	logger      *slog.Logger
	progress    ProgressFunc
}

// UnpackOption configures Unpack.
type UnpackOption func(*unpackConfig)

// UnpackWithKeepPartial keeps whatever was extracted when Unpack fails.
// By default, the destination directory created by Unpack is removed again
// on failure.
func UnpackWithKeepPartial(keep bool) UnpackOption {
	return func(cfg *unpackConfig) {
		cfg.keepPartial = keep
	}
}

// UnpackWithLogger sets the logger. Entries are logged at debug level and
// the summary at info level. By default, nothing is logged.
func UnpackWithLogger(logger *slog.Logger) UnpackOption {
	return func(cfg *unpackConfig) {
		cfg.logger = logger
	}
}

// UnpackWithProgress sets a callback invoked after each entry is extracted.
func UnpackWithProgress(fn ProgressFunc) UnpackOption {
	return func(cfg *unpackConfig) {
		cfg.progress = fn
	}
}

func (c *unpackConfig) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}
