// Package observable decorates command handlers with metrics, tracing and logging.
//
// The wrapped handlers stay free of observability code; CommandWrapper translates their
// HandlerResult and error into the instrumentation defined in package shell.
package observable
