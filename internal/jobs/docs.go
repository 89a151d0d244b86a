// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - Runs every minute to flag orders past their estimated delivery
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
// The overdue sweep uses the standard five-field cron expression "* * * * *",
// once per minute. Delivery estimates carry day-level precision, so a tighter
// schedule would only repeat the same findings.
//
// # Error Handling
//
// Sweep failures are logged and the next tick retries from scratch; the job
// itself never stops on a failed sweep.
package jobs
