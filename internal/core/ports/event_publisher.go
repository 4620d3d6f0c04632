package ports

import (
	"context"

	"shopbot/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order lifecycle changes to the message
// broker for downstream consumers.
type OrderEventPublisher interface {
	// PublishOrderChanged publishes the order's current state after a
	// lifecycle transition.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
