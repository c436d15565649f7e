// Package jobs provides scheduled background tasks for the laundry
// marketplace.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RetentionSweepJob - Runs hourly to delete completed and cancelled
// orders whose retention window has passed. Order images are released
// when an order goes terminal, so the sweep only removes database rows.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, retentionWindow, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep run is logged and retried on the next tick. Failed job
// starts stop any already running jobs.
package jobs
