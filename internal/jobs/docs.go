// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DispatchReminderJob - periodically reminds the dispatch chat about
// pending orders that no courier has claimed yet.
//
// 2. StatsDigestJob - sends a daily sales digest for the current day to the
// admin chat.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, statsHandler, notifier, cfg, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and retry on the next tick; a failed notification
// never interrupts the schedule. Failed job starts stop any already running
// jobs.
package jobs
