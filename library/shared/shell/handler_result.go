package shell

import (
	"context"
	"time"

	"github.com/AntonStoeckl/bookface-go/library/shared/model"
)

// HandlerResult represents the outcome of a command handler execution.
// It captures the business outcome (the affected book or person) and the execution metadata of the
// snapshot save, without coupling the handler to specific observability implementations.
type HandlerResult struct {
	// Subject is the title of the affected book or the name of the affected person.
	// It is empty when the command failed before any mutation.
	Subject string

	// SaveAttempts is the number of attempts needed to write the snapshot (0 if nothing was saved).
	SaveAttempts int

	// TotalRetryDelay is the time spent waiting between save attempts.
	TotalRetryDelay time.Duration

	// LastErrorType classifies the final save error, see RetryMetrics.
	LastErrorType string

	// RetriesExhausted indicates that every save attempt failed with a retryable error.
	RetriesExhausted bool
}

// NewMutationResult creates a HandlerResult for a mutation that was applied to the library.
// It is also returned together with a save error, because the in-memory mutation is not rolled back.
func NewMutationResult(subject string, retryMetrics RetryMetrics) HandlerResult {
	return HandlerResult{
		Subject:          subject,
		SaveAttempts:     retryMetrics.Attempts,
		TotalRetryDelay:  retryMetrics.TotalDelay,
		LastErrorType:    retryMetrics.LastErrorType,
		RetriesExhausted: retryMetrics.RetriesExhausted,
	}
}

// NewRejectedResult creates a HandlerResult for commands the library rejected without mutating anything.
func NewRejectedResult() HandlerResult {
	return HandlerResult{LastErrorType: errorTypeNone}
}

// SaveMutation saves library after a mutation that affected subject.
// The result carries the save metadata whether or not the save succeeded.
func SaveMutation(ctx context.Context, saver SavesLibrary, library *model.Model, subject string) (HandlerResult, error) {
	retryMetrics, err := saver.Save(ctx, library)

	return NewMutationResult(subject, retryMetrics), err
}
