// Package jobs provides scheduled background tasks for the procurement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the procurement service.
//
// # Available Jobs
//
// 1. OverdueOrderJob - Runs every minute to report purchase orders past their
// expected delivery date that are not yet fully received
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueOrdersHandler, logger)
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
// The overdue check uses the cron expression "* * * * *" which means it runs
// every minute. Overdue reporting is advisory; missing a tick only delays the
// next log line.
//
// # Error Handling
//
// - Query failures are logged and the job waits for the next tick
// - Failed job starts propagate to the caller so startup can abort
package jobs
