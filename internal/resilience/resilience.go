// Package resilience holds the retry and circuit-breaker helpers used around
// the database and the PDF renderer.
package resilience

import (
	"context"
	"math/rand"
	"time"

	"github.com/sony/gobreaker"
)

// RetryConfig bounds a retry loop
type RetryConfig struct {
	Attempts int
	Backoff  time.Duration
	// OnRetry, when set, is called before every new attempt
	OnRetry func(attempt int, err error)
}

// Retry runs fn until it succeeds, returns an error shouldRetry rejects, or
// the attempts run out. Waits grow exponentially with jitter.
func Retry(ctx context.Context, cfg RetryConfig, shouldRetry func(error) bool, fn func() error) error {
	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == attempts || !shouldRetry(lastErr) {
			return lastErr
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait(cfg.Backoff, attempt)):
		}
	}
	return lastErr
}

func wait(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	backoff := base << (attempt - 1)
	if half := int64(backoff / 2); half > 0 {
		backoff += time.Duration(rand.Int63n(half))
	}
	return backoff
}

// NewCircuitBreaker trips after five requests with at least 60% failures
// and lets a trial request through after timeout.
func NewCircuitBreaker(name string, timeout time.Duration, onChange func(name string, from, to gobreaker.State)) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: onChange,
	})
}
