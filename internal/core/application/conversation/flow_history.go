package conversation

import (
	"context"
	"fmt"
	"strings"

	"shopbot/internal/core/application/usecases/queries"
)

// listOrders renders the user's order history. History is a single-step
// flow: the session stays idle.
func (m *Manager) listOrders(ctx context.Context, userID int64) (Reply, error) {
	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return textReply(msgBadInput), nil
	}

	orders, err := m.handlers.UserOrders.Handle(ctx, query)
	if err != nil {
		return Reply{}, err
	}

	if len(orders) == 0 {
		return textReply(msgNoOrders), nil
	}

	var b strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&b, "%s: %s x%d, %d, %s\n", o.OrderID, o.ProductName, o.Quantity, o.Total, o.Status)
	}

	return textReply(strings.TrimRight(b.String(), "\n")), nil
}
