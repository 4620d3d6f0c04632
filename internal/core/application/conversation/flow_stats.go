package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopbot/internal/core/application/usecases/queries"
	"shopbot/internal/core/domain/services"
)

const statsDayLayout = "2006-01-02"

// advanceStats collects a start day and an end day, then reports the
// courier's deliveries inside that range. The chat user is the courier.
func (m *Manager) advanceStats(ctx context.Context, userID int64, s *session, event Event) (Reply, error) {
	switch s.state {
	case StateStatsFrom:
		day, ok := dayFromEvent(event)
		if !ok {
			return textReply(msgBadDay), nil
		}

		s.scratch.statsFrom = day
		s.state = StateStatsTo
		return textReply(msgAskEndDay), nil

	case StateStatsTo:
		day, ok := dayFromEvent(event)
		if !ok {
			return textReply(msgBadDay), nil
		}
		if day.Before(s.scratch.statsFrom) {
			return textReply(msgBadDay), nil
		}

		filter := services.DateFilter{
			Start: s.scratch.statsFrom,
			End:   day.Add(24*time.Hour - time.Nanosecond),
		}

		query, err := queries.NewGetCourierStatsQuery(userID, filter)
		if err != nil {
			s.reset()
			return textReply(msgBadInput), nil
		}

		stats, err := m.handlers.CourierStats.Handle(ctx, query)
		if err != nil {
			s.reset()
			return Reply{}, err
		}

		s.reset()
		return textReply(formatStats(stats)), nil

	default:
		s.reset()
		return textReply(msgIdle), nil
	}
}

// dayFromEvent parses a calendar day in 2006-01-02 form, truncated to
// midnight UTC.
func dayFromEvent(event Event) (time.Time, bool) {
	if event.Kind() != KindText {
		return time.Time{}, false
	}

	day, err := time.Parse(statsDayLayout, strings.TrimSpace(event.Text()))
	if err != nil {
		return time.Time{}, false
	}

	return day, true
}

func formatStats(stats []queries.GetCourierStatsQueryResponse) string {
	if len(stats) == 0 {
		return msgNoDeliveries
	}

	s := stats[0]
	if s.Count == 0 {
		return msgNoDeliveries
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Delivered %d order(s), sales %d, commission %d\n", s.Count, s.TotalSales, s.TotalCommission)
	for _, o := range s.Orders {
		fmt.Fprintf(&b, "%s: %s, %d on %s\n",
			o.OrderID, o.ProductName, o.Total, o.DeliveredAt.Format(statsDayLayout))
	}

	return strings.TrimRight(b.String(), "\n")
}
