// Package maintenance runs the scheduled housekeeping jobs: Badger
// value-log garbage collection on a cron schedule.
package maintenance

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/loacademie/academie-server/internal/logger"
	"github.com/loacademie/academie-server/internal/store"
)

// Scheduler owns the cron runner.
type Scheduler struct {
	cron   *cron.Cron
	store  *store.Store
	logger *logger.Logger
}

// NewScheduler creates a scheduler with the value-log GC job registered
// on the given cron expression.
func NewScheduler(st *store.Store, schedule string, log *logger.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		store:  st,
		logger: log,
	}

	if _, err := s.cron.AddFunc(schedule, s.runGC); err != nil {
		return nil, fmt.Errorf("invalid gc schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.logger.Info("maintenance scheduler starting")
	s.cron.Start()
}

// Shutdown stops the scheduler and waits for running jobs to finish or
// the context to expire.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.logger.Info("maintenance scheduler stopping")

	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runGC reclaims value-log space.
func (s *Scheduler) runGC() {
	s.logger.Info("running value log GC")
	if err := s.store.RunValueLogGC(); err != nil {
		s.logger.Error("value log GC failed", "error", err)
		return
	}
	s.logger.Info("value log GC complete")
}
