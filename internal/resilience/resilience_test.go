package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("transient")

func always(error) bool { return true }

func TestRetry_SucceedsFirstTime(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryConfig{Attempts: 4, Backoff: time.Millisecond}, always, func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	retried := 0
	cfg := RetryConfig{
		Attempts: 4,
		Backoff:  time.Millisecond,
		OnRetry:  func(int, error) { retried++ },
	}
	err := Retry(context.Background(), cfg, always, func() error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, retried)
}

func TestRetry_StopsAfterAttempts(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryConfig{Attempts: 3, Backoff: time.Millisecond}, always, func() error {
		calls++
		return errTransient
	})
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, calls)
}

func TestRetry_DoesNotRetryPermanentErrors(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0
	err := Retry(context.Background(), RetryConfig{Attempts: 5, Backoff: time.Millisecond},
		func(err error) bool { return errors.Is(err, errTransient) },
		func() error {
			calls++
			return permanent
		})
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetry_RespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Retry(ctx, RetryConfig{Attempts: 3, Backoff: time.Second}, always, func() error {
		return errTransient
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWait_ZeroBackoff(t *testing.T) {
	assert.Equal(t, time.Duration(0), wait(0, 3))
	assert.GreaterOrEqual(t, wait(time.Nanosecond, 1), time.Nanosecond)
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	cb := NewCircuitBreaker("test", time.Minute, nil)
	for i := 0; i < 5; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, errTransient })
	}
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Execute(func() (interface{}, error) { return nil, nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
