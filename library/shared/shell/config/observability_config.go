package config

import (
	"context"
	"errors"

	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/AntonStoeckl/bookface-go/library/shared/shell/oteladapters"
)

const instrumentationName = "github.com/AntonStoeckl/bookface-go"

// ObservabilityProviders holds in-process OpenTelemetry providers.
//
// Metrics are kept in a ManualReader and read with CollectMetrics, spans are recorded by the
// TracerProvider but not exported. Log records go to the exporter given with WithLogExporter,
// and are dropped without one.
type ObservabilityProviders struct {
	MeterProvider  *sdkmetric.MeterProvider
	TracerProvider *sdktrace.TracerProvider
	LoggerProvider *sdklog.LoggerProvider
	Reader         *sdkmetric.ManualReader
}

// ObservabilityOption configures NewObservabilityProviders.
type ObservabilityOption func(*observabilityOptions)

type observabilityOptions struct {
	logExporter sdklog.Exporter
}

// WithLogExporter makes the LoggerProvider export each log record synchronously to exporter.
func WithLogExporter(exporter sdklog.Exporter) ObservabilityOption {
	return func(o *observabilityOptions) {
		o.logExporter = exporter
	}
}

// NewObservabilityProviders creates the in-process providers for serviceName.
func NewObservabilityProviders(serviceName string, opts ...ObservabilityOption) *ObservabilityProviders {
	options := observabilityOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	reader := sdkmetric.NewManualReader()

	loggerOptions := []sdklog.LoggerProviderOption{sdklog.WithResource(res)}
	if options.logExporter != nil {
		loggerOptions = append(loggerOptions, sdklog.WithProcessor(sdklog.NewSimpleProcessor(options.logExporter)))
	}

	return &ObservabilityProviders{
		MeterProvider:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader), sdkmetric.WithResource(res)),
		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithResource(res)),
		LoggerProvider: sdklog.NewLoggerProvider(loggerOptions...),
		Reader:         reader,
	}
}

// MetricsCollector returns a shell metrics collector backed by the MeterProvider.
func (p *ObservabilityProviders) MetricsCollector() *oteladapters.MetricsCollector {
	return oteladapters.NewMetricsCollector(p.MeterProvider.Meter(instrumentationName))
}

// TracingCollector returns a shell tracing collector backed by the TracerProvider.
func (p *ObservabilityProviders) TracingCollector() *oteladapters.TracingCollector {
	return oteladapters.NewTracingCollector(p.TracerProvider.Tracer(instrumentationName))
}

// Logger returns a shell logger that emits through the LoggerProvider with trace correlation.
func (p *ObservabilityProviders) Logger(name string) *oteladapters.SlogBridgeLogger {
	return oteladapters.NewSlogBridgeLogger(name, p.LoggerProvider)
}

// CollectMetrics reads everything recorded so far.
func (p *ObservabilityProviders) CollectMetrics(ctx context.Context) (metricdata.ResourceMetrics, error) {
	var resourceMetrics metricdata.ResourceMetrics
	err := p.Reader.Collect(ctx, &resourceMetrics)

	return resourceMetrics, err
}

// Shutdown stops all providers.
func (p *ObservabilityProviders) Shutdown(ctx context.Context) error {
	return errors.Join(
		p.MeterProvider.Shutdown(ctx),
		p.TracerProvider.Shutdown(ctx),
		p.LoggerProvider.Shutdown(ctx),
	)
}
