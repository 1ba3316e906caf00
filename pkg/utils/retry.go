package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryConfig defines the retry policy used by the LLM generation service.
type RetryConfig struct {
	MaxRetries   uint64
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig returns the standard policy: 3 retries, 1s initial
// delay, capped at 10s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   3,
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}
}

// newExponentialBackOff creates a backoff.ExponentialBackOff from the config.
func (rc RetryConfig) newExponentialBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = rc.InitialDelay
	b.MaxInterval = rc.MaxDelay
	b.Multiplier = rc.Multiplier
	b.MaxElapsedTime = 0 // bounded by retry count and context, not wall time
	return b
}

// ExecuteWithRetryContext runs operation with exponential backoff, stopping on
// success, on backoff.Permanent errors, after MaxRetries attempts, or when ctx
// is cancelled.
func ExecuteWithRetryContext(ctx context.Context, operation func() error, config RetryConfig) error {
	b := backoff.WithContext(
		backoff.WithMaxRetries(config.newExponentialBackOff(), config.MaxRetries),
		ctx,
	)
	if err := backoff.Retry(operation, b); err != nil {
		return fmt.Errorf("operation failed after retries: %w", err)
	}
	return nil
}
