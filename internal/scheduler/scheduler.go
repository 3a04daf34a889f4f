package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type cartPurger interface {
	PurgeStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// Scheduler periodically removes abandoned guest cart blobs.
type Scheduler struct {
	purger   cartPurger
	interval time.Duration
	maxAge   time.Duration
	logger   logger.Logger
}

func New(
	purger cartPurger,
	interval time.Duration,
	maxAge time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		purger:   purger,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("max_age", s.maxAge),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	purged, err := s.purger.PurgeStale(ctx, s.maxAge)
	if err != nil {
		s.logger.Error("failed to purge stale guest carts",
			logger.String("error", err.Error()),
		)
		return
	}

	if purged > 0 {
		s.logger.Info("stale guest carts purged",
			logger.Int("count", purged),
		)
	}
}
