package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
)

// TracingCollector implements shell.TracingCollector using the OpenTelemetry tracing API.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a new OpenTelemetry tracing collector.
// The tracer should be created from your OpenTelemetry TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan creates a new span with the given name and attributes.
func (t *TracingCollector) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, shell.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attributesFrom(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan adds the final attributes, maps status to a span status and ends the span.
// Span contexts from other implementations are ignored.
func (t *TracingCollector) FinishSpan(spanCtx shell.SpanContext, status string, attrs map[string]string) {
	otelSpanCtx, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpanCtx.span.SetAttributes(attributesFrom(attrs)...)
	otelSpanCtx.SetStatus(status)
	otelSpanCtx.span.End()
}

var _ shell.TracingCollector = (*TracingCollector)(nil)

// OTelSpanContext implements shell.SpanContext by wrapping an OpenTelemetry span.
type OTelSpanContext struct {
	span trace.Span
}

// SetStatus maps a command status to an OpenTelemetry span status.
// A rejected command is a regular business outcome, so its span is not marked as failed.
func (s *OTelSpanContext) SetStatus(status string) {
	switch status {
	case shell.StatusSuccess, shell.StatusRejected:
		s.span.SetStatus(codes.Ok, "")
	case shell.StatusSaveFailed:
		s.span.SetStatus(codes.Error, "Saving the library failed")
	case shell.StatusCanceled:
		s.span.SetStatus(codes.Error, "Operation canceled")
	case shell.StatusTimeout:
		s.span.SetStatus(codes.Error, "Operation timed out")
	default:
		s.span.SetAttributes(attribute.String(shell.LogAttrStatus, status))
	}
}

// AddAttribute adds an attribute to the span.
func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}

var _ shell.SpanContext = (*OTelSpanContext)(nil)
