// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DeliveryReconciliationJob - Periodically scans the delivery ledger for
// records that were never resolved even though their order already reached a
// terminal status. Such drift happens when an order is delivered or cancelled
// through a path that bypassed the resolution transaction; the pending feed
// silently hides these records, so the job surfaces them in the logs for
// operator attention.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, cronSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job only reads; a failed scan is logged and retried on
// the next tick. Failed job starts stop any already running jobs.
package jobs
