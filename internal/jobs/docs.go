// Package jobs provides scheduled background tasks for the parcel tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. OrphanPhotoCleanupJob - Runs hourly to remove stored delivery photos
// that no delivery event references
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses the cron expression "0 0 * * * *", running at the top
// of every hour. Orphaned photos carry no user-facing state, so hourly sweeps
// are frequent enough.
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next tick; a failed run
// never stops the schedule. Failed job starts will stop any already running
// jobs.
package jobs
