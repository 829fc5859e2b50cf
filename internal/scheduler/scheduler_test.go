//go:build unit

package scheduler_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"library-api/internal/scheduler"

	"github.com/stretchr/testify/assert"
)

func TestScheduler(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("runs the job on every tick", func(t *testing.T) {
		var runs atomic.Int32
		s := scheduler.New("test-job", 10*time.Millisecond, func(_ context.Context) error {
			runs.Add(1)
			return nil
		}, logger)

		s.Start()
		defer s.Stop()

		assert.Eventually(t, func() bool {
			return runs.Load() >= 3
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("stop waits for the loop to exit", func(t *testing.T) {
		var runs atomic.Int32
		s := scheduler.New("test-job", 10*time.Millisecond, func(_ context.Context) error {
			runs.Add(1)
			return nil
		}, logger)

		s.Start()
		assert.Eventually(t, func() bool {
			return runs.Load() >= 1
		}, time.Second, 5*time.Millisecond)
		s.Stop()

		after := runs.Load()
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, after, runs.Load())
	})

	t.Run("job failures do not stop the loop", func(t *testing.T) {
		var runs atomic.Int32
		s := scheduler.New("test-job", 10*time.Millisecond, func(_ context.Context) error {
			runs.Add(1)
			return errors.New("boom")
		}, logger)

		s.Start()
		defer s.Stop()

		assert.Eventually(t, func() bool {
			return runs.Load() >= 2
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("start is idempotent", func(t *testing.T) {
		var runs atomic.Int32
		s := scheduler.New("test-job", 10*time.Millisecond, func(_ context.Context) error {
			runs.Add(1)
			return nil
		}, logger)

		s.Start()
		s.Start()
		defer s.Stop()

		assert.Eventually(t, func() bool {
			return runs.Load() >= 1
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("stop without start is a no-op", func(t *testing.T) {
		s := scheduler.New("test-job", time.Minute, func(_ context.Context) error {
			return nil
		}, logger)

		s.Stop()
		s.Stop()
	})
}
