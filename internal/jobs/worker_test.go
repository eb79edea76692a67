package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorker_EnqueueAsyncTracksFailures(t *testing.T) {
	w := NewWorker(2)

	var ran atomic.Int32
	done := make(chan struct{}, 3)
	w.EnqueueAsync(func(ctx context.Context) error {
		ran.Add(1)
		done <- struct{}{}
		return nil
	})
	w.EnqueueAsync(func(ctx context.Context) error {
		ran.Add(1)
		done <- struct{}{}
		return errors.New("boom")
	})
	w.EnqueueAsync(func(ctx context.Context) error {
		ran.Add(1)
		done <- struct{}{}
		panic("bad job")
	})

	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("jobs did not run")
		}
	}
	w.Shutdown()

	stats := w.GetStats()
	assert.Equal(t, int32(3), ran.Load())
	assert.Equal(t, int64(3), stats.FinishedJobs)
	assert.Equal(t, int64(2), stats.FailedJobs)
	assert.Equal(t, 0, stats.ActiveJobs)
	assert.Equal(t, 2, stats.MaxConcurrent)
}

func TestWorker_ScheduleEveryImmediateRunsAtStartup(t *testing.T) {
	w := NewWorker(1)

	ran := make(chan struct{}, 1)
	w.ScheduleEveryImmediate("startup-check", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled job did not run at startup")
	}
	w.Shutdown()
	require.ErrorIs(t, w.Context().Err(), context.Canceled)
	assert.Equal(t, int64(1), w.GetStats().FinishedJobs)
}
