package common

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryOptions configures retry behavior for transient failures.
type RetryOptions struct {
	MaxAttempts int
	Delay       time.Duration
}

// WithRetry executes an operation, retrying retryable failures up to
// opts.MaxAttempts with a fixed delay between attempts.
func WithRetry(ctx context.Context, operation func() error, opts RetryOptions) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.Delay <= 0 {
		opts.Delay = 2 * time.Second
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsRetryable(err) {
			return err
		}

		if attempt == opts.MaxAttempts {
			break
		}

		slog.Warn("Operation failed, retrying",
			"attempt", attempt,
			"max_attempts", opts.MaxAttempts,
			"delay", opts.Delay,
			"error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.Delay):
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrMaxRetries, opts.MaxAttempts, lastErr)
}
