// Package scheduler runs the background jobs of the API.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"finanzas/internal/logger"
	"finanzas/internal/services"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	cron    *cron.Cron
	periods services.PeriodServicer
	ctx     context.Context
}

// New creates a new Scheduler. Jobs run with ctx, so cancelling it aborts
// in-flight queries.
func New(ctx context.Context, periods services.PeriodServicer) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		periods: periods,
		ctx:     ctx,
	}
}

// Register adds the period job on a standard five-field cron expression.
func (s *Scheduler) Register(periodCron string) error {
	if _, err := s.cron.AddFunc(periodCron, s.ensureCurrentPeriod); err != nil {
		return fmt.Errorf("register period task: %w", err)
	}
	return nil
}

// Start runs the period job once and then starts the cron scheduler.
func (s *Scheduler) Start() {
	s.ensureCurrentPeriod()
	s.cron.Start()
	logger.Get().Info("scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.Get().Info("scheduler stopped")
}

// ensureCurrentPeriod makes sure a record exists for today's period.
func (s *Scheduler) ensureCurrentPeriod() {
	log := logger.Get().With("job", "current_period")
	record, err := s.periods.Current(s.ctx)
	if err != nil {
		log.Errorw("failed to ensure current period", "error", err)
		return
	}
	log.Infow("current period ensured", "anio", record.Year, "mes", record.Month)
}
