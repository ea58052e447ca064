// Package config builds the runtime configuration of the library application from environment variables,
// and creates the slog logger and the in-process OpenTelemetry providers that configuration asks for.
//
// This package is part of the shell (infrastructure) layer.
package config
