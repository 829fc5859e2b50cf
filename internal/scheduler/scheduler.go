package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs a job at a fixed interval on a single goroutine, so ticks
// are strictly serialized: a run that outlasts the interval simply causes the
// missed ticks to be dropped, never a second concurrent run.
type Scheduler struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context) error
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(name string, interval time.Duration, job func(ctx context.Context) error, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		name:     name,
		interval: interval,
		job:      job,
		logger:   logger,
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
	s.logger.Info("scheduler started",
		slog.String("job", s.name),
		slog.Duration("interval", s.interval),
	)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Info("scheduler stopped", slog.String("job", s.name))
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.job(ctx); err != nil {
				s.logger.Error("scheduled job failed",
					slog.String("job", s.name),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
