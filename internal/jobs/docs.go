// Package jobs provides scheduled background tasks for the warehouse service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. WarehouseStatsJob - Runs every minute to log order counts per lifecycle
// status and the number of available drivers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getAllOrdersHandler, getAllDriversHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stats job is read-only; a failed run is logged and retried on the next
// tick, never escalated.
package jobs
