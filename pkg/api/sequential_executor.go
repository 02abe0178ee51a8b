package api

import (
	"context"
	"sync"
	"time"
)

// SequentialExecutor runs calls one at a time and waits a fixed delay after
// each of them, whether it failed or not. The wait is cut short when the
// context is done.
type SequentialExecutor struct {
	mu    sync.Mutex
	delay time.Duration
}

func NewSequentialExecutor(delay time.Duration) *SequentialExecutor {
	return &SequentialExecutor{delay: delay}
}

// Execute runs fn, then sleeps. It returns fn's error, or the context error
// if the context was done before fn could start.
func (se *SequentialExecutor) Execute(ctx context.Context, fn func() error) error {
	se.mu.Lock()
	defer se.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	err := fn()

	if se.delay > 0 {
		timer := time.NewTimer(se.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}
	return err
}
