// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that run alongside the order lifecycle.
//
// # Available Jobs
//
// 1. LowStockAlertJob - Runs every five minutes to scan each tenant's
// ingredients and log a warning for every counter at or below its minimum
// threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(tenantsHandler, lowStockHandler, logger)
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
// The low stock scan uses the cron expression "*/5 * * * *". Alerts are
// advisory only: the STRICT policy guards stock at consumption time inside
// the lifecycle transaction, so the scan never needs to block anything.
package jobs
