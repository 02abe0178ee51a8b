package api

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Outcome
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: OutcomeOK,
		},
		{
			name:     "canceled",
			err:      fmt.Errorf("lookup: %w", context.Canceled),
			expected: OutcomeCanceled,
		},
		{
			name:     "command timeout",
			err:      fmt.Errorf("%w after 30s", ErrTimeout),
			expected: OutcomeTimeout,
		},
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			expected: OutcomeTimeout,
		},
		{
			name:     "non-zero exit",
			err:      fmt.Errorf("%w: exit status 1", ErrCommandFailed),
			expected: OutcomeExit,
		},
		{
			name:     "malformed",
			err:      fmt.Errorf("%w: unexpected end of JSON input", ErrMalformedResponse),
			expected: OutcomeMalformed,
		},
		{
			name:     "http status",
			err:      &HTTPStatusError{Code: 429, Body: "rate limit"},
			expected: OutcomeHTTPStatus,
		},
		{
			name:     "transport",
			err:      fmt.Errorf("%w: connection refused", ErrTransport),
			expected: OutcomeTransport,
		},
		{
			name:     "unknown error",
			err:      errors.New("some unknown error"),
			expected: OutcomeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyError(tt.err)
			if result != tt.expected {
				t.Errorf("ClassifyError() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestShouldStopProcessing(t *testing.T) {
	if !ShouldStopProcessing(context.Canceled) {
		t.Error("cancellation should stop processing")
	}
	for _, err := range []error{nil, ErrTimeout, ErrCommandFailed, ErrMalformedResponse, &HTTPStatusError{Code: 500}} {
		if ShouldStopProcessing(err) {
			t.Errorf("ShouldStopProcessing(%v) = true, want false", err)
		}
	}
}

func BenchmarkClassifyError(b *testing.B) {
	err := fmt.Errorf("lookup: %w", ErrMalformedResponse)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ClassifyError(err)
	}
}
