package helper

import (
	"maps"
	"sync"
	"time"
)

const (
	metricKindDuration = "duration"
	metricKindCounter  = "counter"
	metricKindValue    = "value"
)

// MetricsCollectorSpy is a MetricsCollector implementation that captures metrics calls for testing.
type MetricsCollectorSpy struct {
	records     []SpyMetricRecord
	mu          sync.Mutex
	recordCalls bool
}

// SpyMetricRecord represents one recorded metric call of any kind.
type SpyMetricRecord struct {
	Kind     string
	Metric   string
	Duration time.Duration
	Value    float64
	Labels   map[string]string
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
// Set recordCalls to true to capture all metrics calls for inspection in tests.
func NewMetricsCollectorSpy(recordCalls bool) *MetricsCollectorSpy {
	return &MetricsCollectorSpy{
		records:     make([]SpyMetricRecord, 0),
		recordCalls: recordCalls,
	}
}

// RecordDuration implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: metricKindDuration, Metric: metric, Duration: duration, Labels: labels})
}

// IncrementCounter implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: metricKindCounter, Metric: metric, Labels: labels})
}

// RecordValue implements the MetricsCollector interface.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: metricKindValue, Metric: metric, Value: value, Labels: labels})
}

func (s *MetricsCollectorSpy) record(record SpyMetricRecord) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// copy labels to avoid external modifications
	record.Labels = maps.Clone(record.Labels)
	s.records = append(s.records, record)
}

// GetRecordCount returns the number of captured metric calls of all kinds.
func (s *MetricsCollectorSpy) GetRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Reset clears all captured metric records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0]
}

// MetricRecordMatcher provides a fluent interface for checking metric records.
type MetricRecordMatcher struct {
	candidates []SpyMetricRecord
}

// HasDurationRecordForMetric starts a fluent chain to check a duration record.
func (s *MetricsCollectorSpy) HasDurationRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcherFor(metricKindDuration, metric)
}

// HasCounterRecordForMetric starts a fluent chain to check a counter record.
func (s *MetricsCollectorSpy) HasCounterRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcherFor(metricKindCounter, metric)
}

// HasValueRecordForMetric starts a fluent chain to check a value record.
func (s *MetricsCollectorSpy) HasValueRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcherFor(metricKindValue, metric)
}

func (s *MetricsCollectorSpy) matcherFor(kind, metric string) *MetricRecordMatcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidates := make([]SpyMetricRecord, 0)
	for _, record := range s.records {
		if record.Kind == kind && record.Metric == metric {
			candidates = append(candidates, record)
		}
	}

	return &MetricRecordMatcher{candidates: candidates}
}

// WithStatus checks if a matching record has the specified status label.
func (m *MetricRecordMatcher) WithStatus(status string) *MetricRecordMatcher {
	return m.WithLabel("status", status)
}

// WithLabel checks if a matching record has the specified label with the given value.
func (m *MetricRecordMatcher) WithLabel(key, value string) *MetricRecordMatcher {
	remaining := make([]SpyMetricRecord, 0, len(m.candidates))
	for _, record := range m.candidates {
		if labelValue, exists := record.Labels[key]; exists && labelValue == value {
			remaining = append(remaining, record)
		}
	}

	m.candidates = remaining

	return m
}

// WithValue checks if a matching record carries the given value.
func (m *MetricRecordMatcher) WithValue(value float64) *MetricRecordMatcher {
	remaining := make([]SpyMetricRecord, 0, len(m.candidates))
	for _, record := range m.candidates {
		if record.Value == value {
			remaining = append(remaining, record)
		}
	}

	m.candidates = remaining

	return m
}

// Assert returns true if at least one record met all conditions in the fluent chain.
func (m *MetricRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}
