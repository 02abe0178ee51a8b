package api

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrTimeout           = errors.New("haloscan lookup timed out")
	ErrCommandFailed     = errors.New("haloscan command failed")
	ErrMalformedResponse = errors.New("malformed haloscan response")
	ErrTransport         = errors.New("haloscan transport error")
	ErrHTTPStatus        = errors.New("unexpected haloscan HTTP status")
)

// HTTPStatusError reports a non-200 answer from the HTTP API.
type HTTPStatusError struct {
	Code int
	Body string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("API returned status %d: %s", e.Code, e.Body)
}

func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// Outcome labels the result of one lookup for logs and metrics.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeNoData     Outcome = "no_data"
	OutcomeTimeout    Outcome = "timeout"
	OutcomeExit       Outcome = "exit"
	OutcomeMalformed  Outcome = "malformed"
	OutcomeTransport  Outcome = "transport"
	OutcomeHTTPStatus Outcome = "http_status"
	OutcomeCanceled   Outcome = "canceled"
	OutcomeUnknown    Outcome = "unknown"
)

// ClassifyError maps a lookup error to an Outcome. A nil error is OutcomeOK.
func ClassifyError(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	case errors.Is(err, ErrCommandFailed):
		return OutcomeExit
	case errors.Is(err, ErrMalformedResponse):
		return OutcomeMalformed
	case errors.Is(err, ErrHTTPStatus):
		return OutcomeHTTPStatus
	case errors.Is(err, ErrTransport):
		return OutcomeTransport
	default:
		return OutcomeUnknown
	}
}

// ShouldStopProcessing reports whether the enrichment pass must stop. Only
// cancellation does; every other failure skips the current record.
func ShouldStopProcessing(err error) bool {
	return ClassifyError(err) == OutcomeCanceled
}
