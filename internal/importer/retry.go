package importer

import (
	"context"
	"time"
)

// RetryPolicy is a bounded fixed-delay retry: at most Attempts calls,
// Delay apart. It exists as a named policy so call sites state their
// bounds instead of inlining sleep loops.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// Do calls fn until it succeeds or the attempts are exhausted. The
// last error is returned; ctx cancellation stops the loop early.
func (p RetryPolicy) Do(ctx context.Context, fn func(context.Context) error) error {
	var lastErr error
	for i := 0; i < p.Attempts; i++ {
		if i > 0 {
			select {
			case <-time.After(p.Delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
	}
	return lastErr
}
