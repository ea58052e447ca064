package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/bookface-go/snapshotstore"
)

var errDiskHiccup = errors.Join(snapshotstore.ErrSavingDocumentsFailed, errors.New("disk hiccup"))

func Test_RetryWithExponentialBackoff_Success_NoRetries(t *testing.T) {
	ctx := context.Background()
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		return nil
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn)

	assert.NoError(t, err)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, 1, meta.Attempts)
	assert.Equal(t, time.Duration(0), meta.TotalDelay)
	assert.Equal(t, "none", meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_RetryOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		if callCount < 3 {
			return errDiskHiccup
		}
		return nil
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn, WithBaseDelay(time.Millisecond))

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
	assert.Equal(t, 3, meta.Attempts)
	assert.Greater(t, meta.TotalDelay, time.Duration(0))
	assert.Equal(t, "none", meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_NonRetryableFailsFast(t *testing.T) {
	ctx := context.Background()
	callCount := 0
	permanent := errors.New("permanent")

	fn := func(_ context.Context) error {
		callCount++
		return permanent
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn)

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, "other", meta.LastErrorType)
	assert.False(t, meta.RetriesExhausted)
}

func Test_RetryWithExponentialBackoff_ContextCanceledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	callCount := 0

	fn := func(_ context.Context) error {
		callCount++
		cancel()
		return errDiskHiccup
	}

	meta, err := RetryWithExponentialBackoff(ctx, fn, WithBaseDelay(time.Hour))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, "context_canceled", meta.LastErrorType)
}

func Test_RetryWithExponentialBackoff_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		option  RetryOption
		wantErr error
	}{
		{name: "zero attempts", option: WithMaxAttempts(0), wantErr: ErrInvalidMaxAttempts},
		{name: "negative delay", option: WithBaseDelay(-time.Millisecond), wantErr: ErrNegativeBaseDelay},
		{name: "jitter above one", option: WithJitterFactor(1.5), wantErr: ErrInvalidJitterFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RetryWithExponentialBackoff(context.Background(), func(context.Context) error { return nil }, tt.option)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
