package conversation

import (
	"context"
	"strconv"
	"strings"

	"shopbot/internal/core/application/usecases/commands"
)

// advanceRating collects a 1..5 value for the order chosen at flow start
// and records it. A repeated rating attempt surfaces the conflict to the
// transport and ends the flow.
func (m *Manager) advanceRating(ctx context.Context, userID int64, s *session, event Event) (Reply, error) {
	value, err := strconv.Atoi(strings.TrimSpace(ratingInput(event)))
	if err != nil {
		return textReply(msgBadRating), nil
	}

	cmd, err := commands.NewRateOrderCommand(userID, s.scratch.orderID, value, m.now())
	if err != nil {
		return textReply(msgBadRating), nil
	}

	if err = m.handlers.RateOrder.Handle(ctx, cmd); err != nil {
		s.reset()
		return Reply{}, err
	}

	s.reset()
	return textReply(msgRated), nil
}

func ratingInput(event Event) string {
	switch event.Kind() {
	case KindText:
		return event.Text()
	case KindOption:
		return event.Option()
	default:
		return ""
	}
}
