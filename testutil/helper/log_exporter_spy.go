package helper

import (
	"context"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/trace"
)

// SpyLogRecord is the part of an exported OpenTelemetry log record the tests look at.
type SpyLogRecord struct {
	Body       string
	Severity   log.Severity
	TraceID    trace.TraceID
	SpanID     trace.SpanID
	Attributes map[string]string
}

// LogExporterSpy is an sdk/log Exporter that keeps every exported record in memory.
type LogExporterSpy struct {
	records []SpyLogRecord
	mu      sync.Mutex
}

// NewLogExporterSpy creates an empty LogExporterSpy.
func NewLogExporterSpy() *LogExporterSpy {
	return &LogExporterSpy{}
}

// Export implements sdklog.Exporter.
func (s *LogExporterSpy) Export(_ context.Context, records []sdklog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range records {
		record := &records[i]

		attributes := make(map[string]string)
		record.WalkAttributes(func(kv log.KeyValue) bool {
			attributes[kv.Key] = kv.Value.String()
			return true
		})

		s.records = append(s.records, SpyLogRecord{
			Body:       record.Body().AsString(),
			Severity:   record.Severity(),
			TraceID:    record.TraceID(),
			SpanID:     record.SpanID(),
			Attributes: attributes,
		})
	}

	return nil
}

// Shutdown implements sdklog.Exporter.
func (s *LogExporterSpy) Shutdown(context.Context) error {
	return nil
}

// ForceFlush implements sdklog.Exporter.
func (s *LogExporterSpy) ForceFlush(context.Context) error {
	return nil
}

// Records returns a copy of everything exported so far.
func (s *LogExporterSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.records)
}

// RecordsWithBody returns the exported records whose body equals body.
func (s *LogExporterSpy) RecordsWithBody(body string) []SpyLogRecord {
	var matching []SpyLogRecord

	for _, record := range s.Records() {
		if record.Body == body {
			matching = append(matching, record)
		}
	}

	return matching
}

var _ sdklog.Exporter = (*LogExporterSpy)(nil)
