// Package jobs provides scheduled background tasks for the dishes and orders
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderBacklogJob - Logs the number of orders in each status, every minute by default
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(ordersHandler, cfg.BacklogReportSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field, for
// example "0 * * * * *" for the start of every minute.
//
// # Error Handling
//
// - A failed report is logged and the schedule keeps running
// - An invalid schedule makes StartAll fail
package jobs
