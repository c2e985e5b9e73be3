// Package retry provides a bounded retry helper for provider calls.
// This is part of the platform layer and contains no business logic.
package retry

import (
	"context"
	"errors"
	"time"
)

// ErrRateLimited marks an error as retryable. Provider clients wrap 429
// responses with it; any other error aborts the loop immediately so that
// hard failures degrade to "no data" without burning attempts.
var ErrRateLimited = errors.New("rate limited")

// Do runs fn up to attempts times, sleeping an exponentially increasing
// delay (base, 2*base, 4*base, ...) between attempts. Only errors wrapping
// ErrRateLimited are retried. The last error is returned on exhaustion.
func Do(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, ErrRateLimited) {
			return lastErr
		}
		if attempt == attempts-1 {
			break
		}

		delay := base << uint(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}
