package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Sweeper periodically re-evaluates undispatched triggers so time-driven
// rules (deny window ends, rollout soaks, approval arrivals) take effect
// without an inbound request. Mutating services poke it for an immediate
// pass instead of waiting out the interval.
type Sweeper struct {
	dispatch *DispatchService
	interval time.Duration
	poke     chan struct{}
}

// NewSweeper creates a new sweeper with the given pass interval
func NewSweeper(dispatch *DispatchService, interval time.Duration) *Sweeper {
	return &Sweeper{
		dispatch: dispatch,
		interval: interval,
		poke:     make(chan struct{}, 1),
	}
}

// Poke requests an immediate sweep pass. Non-blocking; a pending poke is
// enough, more are redundant.
func (s *Sweeper) Poke() {
	select {
	case s.poke <- struct{}{}:
	default:
	}
}

// Run sweeps until the context is cancelled
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-s.poke:
		}

		dispatched, err := s.dispatch.SweepOnce()
		if err != nil {
			logrus.WithError(err).Error("dispatch sweep failed")
			continue
		}
		if dispatched > 0 {
			logrus.WithField("dispatched", dispatched).Info("dispatch sweep released jobs")
		}
	}
}
