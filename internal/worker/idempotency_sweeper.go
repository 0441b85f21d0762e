package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type IdempotencyPurger interface {
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int, error)
}

// IdempotencySweeper periodically drops expired idempotency records.
type IdempotencySweeper struct {
	purger   IdempotencyPurger
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

func NewIdempotencySweeper(purger IdempotencyPurger, interval time.Duration) *IdempotencySweeper {
	return &IdempotencySweeper{
		purger:   purger,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start blocks until ctx is canceled or Stop is called.
func (s *IdempotencySweeper) Start(ctx context.Context) {
	slog.Info("idempotency sweeper started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(s.doneCh)

	for {
		select {
		case <-ctx.Done():
			slog.Info("idempotency sweeper stopped", "reason", "context canceled")
			return
		case <-s.stopCh:
			slog.Info("idempotency sweeper stopped", "reason", "stop requested")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Stop signals Start to return and waits for it. Start must have been called.
func (s *IdempotencySweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
}

func (s *IdempotencySweeper) sweep(ctx context.Context) {
	count, err := s.purger.PurgeExpiredIdempotencyKeys(ctx)
	if err != nil {
		slog.Error("idempotency sweep failed", "error", err.Error())
		return
	}
	if count > 0 {
		slog.Info("expired idempotency keys purged", "count", count)
	} else {
		slog.Debug("no expired idempotency keys")
	}
}
