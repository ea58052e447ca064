// Package oteladapters implements the shell's dependency-free MetricsCollector, TracingCollector and
// Logger interfaces with the OpenTelemetry API. SlogBridgeLogger emits log records through the
// OpenTelemetry slog bridge, TraceLogHandler adds trace correlation to plain slog records.
//
// The adapters only need a Meter, a Tracer or a LoggerProvider. Wiring providers and exporters stays
// with the caller, so the adapters work with in-process readers as well as with a remote collector.
package oteladapters
