package jobs

import (
	"fmt"
	"time"

	"laundromart/internal/core/application/usecases/commands"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	retentionSweepJob *RetentionSweepJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	purgeHandler commands.PurgeTerminalOrdersCommandHandler,
	retentionWindow time.Duration,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		retentionSweepJob: NewRetentionSweepJob(purgeHandler, retentionWindow, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.retentionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start retention sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.retentionSweepJob.Stop()
}
