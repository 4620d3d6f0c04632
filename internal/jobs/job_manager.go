package jobs

import (
	"fmt"
	"log/slog"

	"shopbot/internal/core/application/usecases/queries"
	"shopbot/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchReminderJob *DispatchReminderJob
	statsDigestJob      *StatsDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dispatchHandler queries.GetDispatchQueueQueryHandler,
	statsHandler queries.GetCourierStatsQueryHandler,
	notifier ports.Notifier,
	dispatchChatID int64,
	adminChatID int64,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchReminderJob: NewDispatchReminderJob(dispatchHandler, notifier, dispatchChatID, logger),
		statsDigestJob:      NewStatsDigestJob(statsHandler, notifier, adminChatID, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch reminder job: %w", err)
	}

	if err := jm.statsDigestJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchReminderJob.Stop()
		return fmt.Errorf("failed to start stats digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsDigestJob.Stop()
	jm.dispatchReminderJob.Stop()
}
