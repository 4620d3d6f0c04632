package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shopbot/internal/core/application/usecases/queries"
	"shopbot/internal/core/domain/services"
	"shopbot/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatsDigestJob sends the admin chat a nightly sales digest: per-courier
// deliveries, sales and commission for the closing day.
type StatsDigestJob struct {
	handler     queries.GetCourierStatsQueryHandler
	notifier    ports.Notifier
	adminChatID int64
	now         func() time.Time
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewStatsDigestJob creates a digest job posting to the given chat.
func NewStatsDigestJob(
	handler queries.GetCourierStatsQueryHandler,
	notifier ports.Notifier,
	adminChatID int64,
	logger *slog.Logger,
) *StatsDigestJob {
	return &StatsDigestJob{
		handler:     handler,
		notifier:    notifier,
		adminChatID: adminChatID,
		now:         time.Now,
		cron:        cron.New(),
		logger:      logger.With("component", "stats_digest_job"),
	}
}

// Start begins the digest job, running nightly at 21:00.
func (j *StatsDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 21 * * *", func() {
		ctx := context.Background()
		day := j.now()

		query, err := queries.NewGetCourierStatsQuery(0, services.DateFilter{Day: day})
		if err != nil {
			j.logger.ErrorContext(ctx, "stats digest failed", "error", err)
			return
		}

		stats, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "stats digest failed", "error", err)
			return
		}

		if err := j.notifier.Notify(ctx, j.adminChatID, formatDigest(day, stats)); err != nil {
			j.logger.ErrorContext(ctx, "failed to notify admin chat", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "stats digest job started")
	return nil
}

// Stop stops the digest job.
func (j *StatsDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "stats digest job stopped")
}

func formatDigest(day time.Time, stats []queries.GetCourierStatsQueryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sales digest for %s\n", day.Format("2006-01-02"))

	if len(stats) == 0 {
		b.WriteString("No deliveries today.\n")
		return b.String()
	}

	for _, s := range stats {
		fmt.Fprintf(&b, "courier %d: %d delivered, sales %d, commission %d\n",
			s.CourierID, s.Count, s.TotalSales, s.TotalCommission)
	}
	return b.String()
}
