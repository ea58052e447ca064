package shell

import (
	"context"
	"errors"
	"strconv"
	"time"
)

const (
	// CommandHandlerDurationMetric tracks command handler execution duration.
	CommandHandlerDurationMetric = "commandhandler_handle_duration_seconds"
	// CommandHandlerCallsMetric tracks total command handler calls.
	CommandHandlerCallsMetric = "commandhandler_handle_calls_total"
	// CommandHandlerSaveRetriesMetric tracks snapshot save retries.
	CommandHandlerSaveRetriesMetric = "commandhandler_save_retries_total"
	// CommandHandlerSaveRetryDelayMetric tracks the time spent waiting between save attempts.
	CommandHandlerSaveRetryDelayMetric = "commandhandler_save_retry_delay_seconds"

	// StatusSuccess indicates successful command completion.
	StatusSuccess = "success"
	// StatusRejected indicates that the library refused the command, e.g. a book that is still on loan.
	StatusRejected = "rejected"
	// StatusSaveFailed indicates that the mutation was applied but the snapshot could not be saved.
	StatusSaveFailed = "save_failed"
	// StatusCanceled indicates the context was canceled.
	StatusCanceled = "canceled"
	// StatusTimeout indicates the context deadline was exceeded.
	StatusTimeout = "timeout"

	// LogMsgCommandStarted is logged when command processing begins.
	LogMsgCommandStarted = "command handler started"
	// LogMsgCommandCompleted is logged when command processing succeeds.
	LogMsgCommandCompleted = "command handler completed"
	// LogMsgCommandFailed is logged when command processing fails.
	LogMsgCommandFailed = "command handler failed"

	// LogAttrCommandType identifies the command type in logs.
	LogAttrCommandType = "command_type"
	// LogAttrStatus indicates the command processing status.
	LogAttrStatus = "status"
	// LogAttrSubject names the affected book or person.
	LogAttrSubject = "subject"
	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"
	// LogAttrSaveAttempts indicates how many attempts the snapshot save needed.
	LogAttrSaveAttempts = "save_attempts"
	// LogAttrError contains error details.
	LogAttrError = "error"

	// SpanNameCommandHandle is the tracing span name for command handling.
	SpanNameCommandHandle = "commandhandler.handle"
)

// ClassifyCommandError maps a command handler error to its status label.
func ClassifyCommandError(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, ErrSavingLibraryFailed):
		return StatusSaveFailed
	default:
		return StatusRejected
	}
}

// BuildCommandLabels creates standard metric labels for command handler operations.
func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		LogAttrStatus:      status,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with precision.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// RecordCommandMetrics records the duration and the call count of a command operation.
// It handles both context-aware and basic metrics collectors automatically.
func RecordCommandMetrics(
	ctx context.Context,
	collector MetricsCollector,
	commandType string,
	status string,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildCommandLabels(commandType, status)

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, CommandHandlerDurationMetric, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, CommandHandlerCallsMetric, labels)

		return
	}

	collector.RecordDuration(CommandHandlerDurationMetric, duration, labels)
	collector.IncrementCounter(CommandHandlerCallsMetric, labels)
}

// RecordSaveRetryMetrics records retries of the snapshot save reported by a HandlerResult.
// Nothing is recorded when the first attempt settled the save.
func RecordSaveRetryMetrics(
	ctx context.Context,
	collector MetricsCollector,
	commandType string,
	result HandlerResult,
) {
	if collector == nil || result.SaveAttempts <= 1 {
		return
	}

	labels := map[string]string{
		LogAttrCommandType: commandType,
		"final_error_type": result.LastErrorType,
	}

	retries := float64(result.SaveAttempts - 1)

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, CommandHandlerSaveRetriesMetric, retries, labels)
		contextualCollector.RecordDurationContext(ctx, CommandHandlerSaveRetryDelayMetric, result.TotalRetryDelay, labels)

		return
	}

	collector.RecordValue(CommandHandlerSaveRetriesMetric, retries, labels)
	collector.RecordDuration(CommandHandlerSaveRetryDelayMetric, result.TotalRetryDelay, labels)
}

// LogCommandStart logs the beginning of command processing.
func LogCommandStart(ctx context.Context, logger Logger, commandType string) {
	logAt(ctx, logger, levelInfo, LogMsgCommandStarted, LogAttrCommandType, commandType)
}

// LogCommandSuccess logs successful command completion.
func LogCommandSuccess(ctx context.Context, logger Logger, commandType string, result HandlerResult, duration time.Duration) {
	logAt(ctx, logger, levelInfo,
		LogMsgCommandCompleted,
		LogAttrCommandType, commandType,
		LogAttrSubject, result.Subject,
		LogAttrSaveAttempts, result.SaveAttempts,
		LogAttrDurationMS, ToMilliseconds(duration),
	)
}

// LogCommandError logs command processing errors.
// Rejected commands are expected outcomes and are logged at warn level, everything else at error level.
func LogCommandError(
	ctx context.Context,
	logger Logger,
	commandType string,
	status string,
	err error,
	duration time.Duration,
) {
	level := levelError
	if status == StatusRejected {
		level = levelWarn
	}

	logAt(ctx, logger, level,
		LogMsgCommandFailed,
		LogAttrCommandType, commandType,
		LogAttrStatus, status,
		LogAttrDurationMS, ToMilliseconds(duration),
		LogAttrError, err.Error(),
	)
}

type logLevel int

const (
	levelInfo logLevel = iota
	levelWarn
	levelError
)

// logAt uses the context-aware methods when the logger has them.
func logAt(ctx context.Context, logger Logger, level logLevel, msg string, args ...any) {
	if logger == nil {
		return
	}

	if contextual, ok := logger.(ContextualLogger); ok {
		switch level {
		case levelInfo:
			contextual.InfoContext(ctx, msg, args...)
		case levelWarn:
			contextual.WarnContext(ctx, msg, args...)
		default:
			contextual.ErrorContext(ctx, msg, args...)
		}

		return
	}

	switch level {
	case levelInfo:
		logger.Info(msg, args...)
	case levelWarn:
		logger.Warn(msg, args...)
	default:
		logger.Error(msg, args...)
	}
}

// StartCommandSpan starts a tracing span for command operations.
// Returns the updated context and span context, or original context and nil if tracing is disabled.
func StartCommandSpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	commandType string,
) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	attrs := map[string]string{
		LogAttrCommandType: commandType,
	}

	return tracingCollector.StartSpan(ctx, SpanNameCommandHandle, attrs)
}

// FinishCommandSpan completes a tracing span with the operation outcome.
func FinishCommandSpan(
	tracingCollector TracingCollector,
	span SpanContext,
	status string,
	result HandlerResult,
	duration time.Duration,
	err error,
) {
	if tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:       status,
		LogAttrDurationMS:   strconv.FormatFloat(ToMilliseconds(duration), 'f', 2, 64),
		LogAttrSaveAttempts: strconv.Itoa(result.SaveAttempts),
	}

	if result.Subject != "" {
		attrs[LogAttrSubject] = result.Subject
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	tracingCollector.FinishSpan(span, status, attrs)
}
