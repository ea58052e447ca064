// Package helper provides test doubles and fixtures shared by the tests of the library packages:
// spies for slog handlers, metrics and tracing collectors, OpenTelemetry log exports and the snapshot store,
// plus builders for core entities.
package helper
