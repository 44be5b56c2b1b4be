package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically cancels orders stuck in awaiting payment.
// Customers who abandon checkout never come back to cancel; sweeping them
// keeps the restaurant queue free of orders that will never be paid.
type StaleOrderJob struct {
	handler  commands.CancelStaleOrdersCommandHandler
	cron     *cron.Cron
	schedule string
	ttl      time.Duration
	logger   *zap.Logger
}

// NewStaleOrderJob creates the sweep job. The schedule is a standard
// five-field cron expression; ttl is how long an unpaid order may sit
// before it is cancelled.
func NewStaleOrderJob(
	handler commands.CancelStaleOrdersCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *zap.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		ttl:      ttl,
		logger:   logger.With(zap.String("component", "stale_order_job")),
	}
}

// Start schedules the sweep. Returns an error on a malformed schedule.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.ttl)
		if err != nil {
			j.logger.Error("stale order sweep misconfigured", zap.Error(err))
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.Error("stale order sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stale order job started",
		zap.String("schedule", j.schedule),
		zap.Duration("ttl", j.ttl))
	return nil
}

// Stop stops the sweep.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.Info("stale order job stopped")
}
