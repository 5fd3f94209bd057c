package sched

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper is the slice of the local rate limiter the worker needs.
type Sweeper interface {
	Sweep(olderThan time.Duration) int
	Size() int
}

// SweepWorker periodically evicts idle rate-limit buckets so the
// in-process limiter does not grow with every client address it has
// ever seen.
type SweepWorker struct {
	interval time.Duration
	sweeper  Sweeper
	log      *zerolog.Logger
}

func NewSweepWorker(interval time.Duration, sweeper Sweeper, logger *zerolog.Logger) *SweepWorker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	swLog := logger.With().Str("component", "SweepWorker").Logger()
	return &SweepWorker{
		interval: interval,
		sweeper:  sweeper,
		log:      &swLog,
	}
}

func (w *SweepWorker) Run(ctx context.Context) error {
	w.log.Info().Dur("interval", w.interval).Msg("starting sweep worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("stopping sweep worker")
			return ctx.Err()
		case <-ticker.C:
			n := w.sweeper.Sweep(w.interval)
			if n > 0 {
				w.log.Debug().Int("evicted", n).Int("live", w.sweeper.Size()).Msg("idle buckets swept")
			}
		}
	}
}
