package jobs

import (
	"context"
	"time"

	"laundromart/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RetentionSweepJob periodically removes completed and cancelled orders
// that have outlived their retention window.
type RetentionSweepJob struct {
	handler commands.PurgeTerminalOrdersCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewRetentionSweepJob creates a job that runs the retention sweep at the
// top of every hour. A non-positive window falls back to the default.
func NewRetentionSweepJob(
	handler commands.PurgeTerminalOrdersCommandHandler,
	window time.Duration,
	logger *zap.Logger,
) *RetentionSweepJob {
	if window <= 0 {
		window = commands.DefaultRetentionWindow
	}
	return &RetentionSweepJob{
		handler: handler,
		window:  window,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "retention_sweep_job")),
	}
}

// Start schedules the hourly sweep.
func (j *RetentionSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeTerminalOrdersCommand(time.Now().UTC(), j.window)
		if err != nil {
			j.logger.Error("retention sweep command construction failed", zap.Error(err))
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error("retention sweep failed", zap.Error(err))
			return
		}

		if removed > 0 {
			j.logger.Info("retention sweep removed expired orders", zap.Int64("removed", removed))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("retention sweep job started (running hourly)")
	return nil
}

// Stop stops the sweep job.
func (j *RetentionSweepJob) Stop() {
	j.cron.Stop()
	j.logger.Info("retention sweep job stopped")
}
