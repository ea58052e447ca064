package observable_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell"
	"github.com/AntonStoeckl/bookface-go/library/shared/shell/observable"
	. "github.com/AntonStoeckl/bookface-go/testutil/helper" //nolint:revive
)

func Test_CommandWrapper_Handle_Success(t *testing.T) {
	// arrange
	expectedResult := shell.HandlerResult{Subject: "The Hobbit", SaveAttempts: 1}
	handler := newMockHandler(expectedResult, nil)
	metricsCollector := NewMetricsCollectorSpy(true)
	tracingCollector := NewTracingCollectorSpy(true)
	logHandler := NewLogHandlerSpy(false)

	wrapper, err := observable.NewCommandWrapper[mockCommand](
		handler,
		observable.WithCommandMetrics[mockCommand](metricsCollector),
		observable.WithCommandTracing[mockCommand](tracingCollector),
		observable.WithCommandLogging[mockCommand](slog.New(logHandler)),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockCommand{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, expectedResult, result)
	assert.Len(t, handler.calls, 1)

	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithLabel("command_type", "MockCommand").
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).
		WithStatus(shell.StatusSuccess).
		Assert())
	assert.False(t, metricsCollector.HasValueRecordForMetric(shell.CommandHandlerSaveRetriesMetric).Assert())

	assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameCommandHandle).
		WithStartAttribute("command_type", "MockCommand").
		WithStatus(shell.StatusSuccess).
		WithEndAttribute("subject", "The Hobbit").
		Assert())

	assert.True(t, logHandler.HasInfoLogWithMessage(shell.LogMsgCommandStarted).Assert())
	assert.True(t, logHandler.HasInfoLogWithMessage(shell.LogMsgCommandCompleted).
		WithStringAttribute("subject", "The Hobbit").
		WithDurationMS().
		Assert())
}

func Test_CommandWrapper_Handle_SaveRetries_RecordsMetrics(t *testing.T) {
	// arrange
	resultWithRetries := shell.HandlerResult{
		Subject:         "Alice",
		SaveAttempts:    3,
		TotalRetryDelay: 15 * time.Millisecond,
		LastErrorType:   "none",
	}
	handler := newMockHandler(resultWithRetries, nil)
	metricsCollector := NewMetricsCollectorSpy(true)

	wrapper, err := observable.NewCommandWrapper[mockCommand](
		handler,
		observable.WithCommandMetrics[mockCommand](metricsCollector),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockCommand{})

	// assert
	require.NoError(t, err)
	assert.True(t, metricsCollector.HasValueRecordForMetric(shell.CommandHandlerSaveRetriesMetric).
		WithLabel("command_type", "MockCommand").
		WithValue(2).
		Assert())
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.CommandHandlerSaveRetryDelayMetric).
		WithLabel("command_type", "MockCommand").
		Assert())
}

func Test_CommandWrapper_Handle_Errors_RecordStatus(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus string
		logsAtWarn     bool
	}{
		{
			name:           "rejected by the library",
			err:            core.ErrOutOfCopies,
			expectedStatus: shell.StatusRejected,
			logsAtWarn:     true,
		},
		{
			name:           "save failed",
			err:            errors.Join(shell.ErrSavingLibraryFailed, errors.New("disk full")),
			expectedStatus: shell.StatusSaveFailed,
		},
		{
			name:           "canceled",
			err:            context.Canceled,
			expectedStatus: shell.StatusCanceled,
		},
		{
			name:           "timeout",
			err:            context.DeadlineExceeded,
			expectedStatus: shell.StatusTimeout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			expectedResult := shell.NewRejectedResult()
			handler := newMockHandler(expectedResult, tc.err)
			metricsCollector := NewMetricsCollectorSpy(true)
			tracingCollector := NewTracingCollectorSpy(true)
			logHandler := NewLogHandlerSpy(false)

			wrapper, err := observable.NewCommandWrapper[mockCommand](
				handler,
				observable.WithCommandMetrics[mockCommand](metricsCollector),
				observable.WithCommandTracing[mockCommand](tracingCollector),
				observable.WithCommandLogging[mockCommand](slog.New(logHandler)),
			)
			require.NoError(t, err)

			// act
			result, err := wrapper.Handle(context.Background(), mockCommand{})

			// assert
			assert.Equal(t, tc.err, err)
			assert.Equal(t, expectedResult, result)
			assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
				WithStatus(tc.expectedStatus).
				Assert())
			assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameCommandHandle).
				WithStatus(tc.expectedStatus).
				WithEndAttribute("error", tc.err.Error()).
				Assert())

			if tc.logsAtWarn {
				assert.True(t, logHandler.HasWarnLogWithMessage(shell.LogMsgCommandFailed).
					WithStringAttribute("status", tc.expectedStatus).
					Assert())
				assert.False(t, logHandler.HasErrorLogWithMessage(shell.LogMsgCommandFailed).Assert())
			} else {
				assert.True(t, logHandler.HasErrorLogWithMessage(shell.LogMsgCommandFailed).
					WithStringAttribute("status", tc.expectedStatus).
					Assert())
			}
		})
	}
}

func Test_CommandWrapper_Handle_WithoutObservability(t *testing.T) {
	// arrange
	expectedResult := shell.HandlerResult{Subject: "Dune", SaveAttempts: 1}
	handler := newMockHandler(expectedResult, nil)

	wrapper, err := observable.NewCommandWrapper[mockCommand](handler)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockCommand{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, expectedResult, result)
	assert.Len(t, handler.calls, 1)
}

func Test_CommandWrapper_NewCommandWrapper_OptionError(t *testing.T) {
	// arrange
	errBadOption := errors.New("bad option")
	failingOption := func(*observable.CommandWrapper[mockCommand]) error { return errBadOption }

	// act
	wrapper, err := observable.NewCommandWrapper[mockCommand](newMockHandler(shell.HandlerResult{}, nil), failingOption)

	// assert
	assert.ErrorIs(t, err, errBadOption)
	assert.Nil(t, wrapper)
}

type mockCommand struct{}

func (mockCommand) CommandType() string {
	return "MockCommand"
}

type mockHandler struct {
	result shell.HandlerResult
	err    error
	calls  []mockCommand
}

func newMockHandler(result shell.HandlerResult, err error) *mockHandler {
	return &mockHandler{result: result, err: err}
}

func (h *mockHandler) Handle(_ context.Context, command mockCommand) (shell.HandlerResult, error) {
	h.calls = append(h.calls, command)
	return h.result, h.err
}
