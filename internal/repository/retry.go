package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const readAttempts = 3

// retryRead retries an idempotent read query on transient connection
// failures with a linear backoff. Writes are never routed through here: a
// write that failed mid-flight is surfaced to the caller instead of being
// retried into a possible double effect.
func retryRead[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var result T
	var err error
	for attempt := 0; attempt < readAttempts; attempt++ {
		result, err = fn()
		if err == nil || !pgconn.SafeToRetry(err) {
			return result, err
		}
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 100 * time.Millisecond):
		}
	}
	return result, err
}
