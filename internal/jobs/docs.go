// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. OverdueOrdersJob - Runs every minute to surface open orders that are past
// their requested due date. The job is strictly read-only: every state change
// in the order lifecycle is triggered by a user request, so the sweep reports
// overdue work in the log instead of mutating it.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the required query handler
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
// The sweep uses the cron expression "0 * * * * *", running at the top of
// every minute. Due dates are day-granular, so a tighter schedule buys
// nothing.
//
// # Error Handling
//
// Query failures are logged and the sweep retries on the next tick; a failed
// job start reports the error to the caller.
package jobs
