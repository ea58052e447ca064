package config

import (
	"io"
	"log/slog"

	"github.com/AntonStoeckl/bookface-go/library/shared/shell/oteladapters"
)

// NewLogger creates the slog logger described by cfg, writing to w.
// With observability enabled, records logged inside a span carry its trace and span IDs.
func (cfg Config) NewLogger(w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler = slog.NewTextHandler(w, options)
	if cfg.LogFormat == LogFormatJSON {
		handler = slog.NewJSONHandler(w, options)
	}

	if cfg.ObservabilityEnabled {
		handler = oteladapters.NewTraceLogHandler(handler)
	}

	return slog.New(handler)
}
