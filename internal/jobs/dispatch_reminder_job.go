package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shopbot/internal/core/application/usecases/queries"
	"shopbot/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DispatchReminderJob periodically posts the pending unclaimed orders to the
// dispatch chat so couriers notice work waiting for them. Quiet when the
// queue is empty.
type DispatchReminderJob struct {
	handler        queries.GetDispatchQueueQueryHandler
	notifier       ports.Notifier
	dispatchChatID int64
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewDispatchReminderJob creates a reminder job posting to the given chat.
func NewDispatchReminderJob(
	handler queries.GetDispatchQueueQueryHandler,
	notifier ports.Notifier,
	dispatchChatID int64,
	logger *slog.Logger,
) *DispatchReminderJob {
	return &DispatchReminderJob{
		handler:        handler,
		notifier:       notifier,
		dispatchChatID: dispatchChatID,
		cron:           cron.New(),
		logger:         logger.With("component", "dispatch_reminder_job"),
	}
}

// Start begins the reminder job, running every five minutes.
func (j *DispatchReminderJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		queue, err := j.handler.Handle(ctx, queries.NewGetDispatchQueueQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "dispatch reminder failed", "error", err)
			return
		}

		if len(queue) == 0 {
			return
		}

		if err := j.notifier.Notify(ctx, j.dispatchChatID, formatReminder(queue)); err != nil {
			j.logger.ErrorContext(ctx, "failed to notify dispatch chat", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "dispatch reminder job started")
	return nil
}

// Stop stops the reminder job.
func (j *DispatchReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "dispatch reminder job stopped")
}

func formatReminder(queue []queries.GetDispatchQueueQueryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d order(s) waiting for a courier:\n", len(queue))
	for _, entry := range queue {
		fmt.Fprintf(&b, "%s: %s x%d to %s\n",
			entry.OrderID, entry.ProductName, entry.Quantity, entry.Destination)
	}
	return b.String()
}
