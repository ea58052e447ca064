package oteladapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Attribute keys added by TraceLogHandler.
const (
	LogAttrTraceID = "trace_id"
	LogAttrSpanID  = "span_id"
)

// TraceLogHandler is a slog.Handler that adds the trace and span IDs of the span active in the
// record's context, then delegates to the wrapped handler.
// Records logged without context, or outside any span, pass through unchanged.
type TraceLogHandler struct {
	next slog.Handler
}

// NewTraceLogHandler wraps next.
func NewTraceLogHandler(next slog.Handler) *TraceLogHandler {
	return &TraceLogHandler{next: next}
}

// Enabled implements slog.Handler.
func (h *TraceLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *TraceLogHandler) Handle(ctx context.Context, record slog.Record) error {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		record = record.Clone()
		record.AddAttrs(
			slog.String(LogAttrTraceID, spanCtx.TraceID().String()),
			slog.String(LogAttrSpanID, spanCtx.SpanID().String()),
		)
	}

	return h.next.Handle(ctx, record)
}

// WithAttrs implements slog.Handler.
func (h *TraceLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceLogHandler{next: h.next.WithAttrs(attrs)}
}

// WithGroup implements slog.Handler.
func (h *TraceLogHandler) WithGroup(name string) slog.Handler {
	return &TraceLogHandler{next: h.next.WithGroup(name)}
}

var _ slog.Handler = (*TraceLogHandler)(nil)
