// Package jobs provides the scheduled background tasks of the storefront.
// Jobs run on github.com/robfig/cron/v3 and are coordinated through
// JobManager, which the composition root starts after the HTTP server
// and stops on shutdown.
package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"storefront/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleOrderJob *StaleOrderJob
}

// NewJobManager wires up every background job with its handler.
func NewJobManager(
	cancelStaleHandler commands.CancelStaleOrdersCommandHandler,
	staleSweepSchedule string,
	staleOrderTTL time.Duration,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob: NewStaleOrderJob(cancelStaleHandler, staleSweepSchedule, staleOrderTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.staleOrderJob.Stop()
}
