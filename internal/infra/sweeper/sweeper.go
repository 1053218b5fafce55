package sweeper

import (
	"context"
	"log/slog"
	"time"
)

// Registry is the slice of the store the sweeper needs: one idempotent
// expiration pass.
type Registry interface {
	Sweep() int
}

// Sweeper periodically expires stale Available listings. It is the sole
// writer of the Expired state; read queries still re-filter by time, so
// a missed tick only delays the visible transition.
type Sweeper struct {
	registry Registry
	interval time.Duration
	logger   *slog.Logger
}

func New(registry Registry, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Second
	}
	return &Sweeper{
		registry: registry,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps on a fixed cadence until the context is canceled. It runs
// one pass immediately so listings seeded in the past expire without
// waiting out the first tick.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweepOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *Sweeper) sweepOnce() {
	if n := s.registry.Sweep(); n > 0 {
		s.logger.Info("expired stale listings", "count", n)
	}
}
