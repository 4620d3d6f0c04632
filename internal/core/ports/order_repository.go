package ports

import (
	"context"

	"shopbot/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Order identifiers are unique within the owning user, so lookups take the
// (userID, orderID) pair.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist for the user.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Claim persists a courier acceptance with a compare-and-set guard:
	// the stored row is updated only while it is still pending and
	// unassigned. Returns errs.ConflictError when another courier claimed
	// the order first.
	Claim(ctx context.Context, aggregate *order.Order) error

	// Cancel persists a cancellation with a compare-and-set guard: the
	// stored row is updated only while it is still pending and unassigned.
	// Returns errs.ConflictError when a courier claimed the order between
	// the caller's read and this write.
	Cancel(ctx context.Context, aggregate *order.Order) error

	// MarkRated persists a rating with a compare-and-set guard: the stored
	// row is updated only while it is still unrated. Returns
	// errs.ConflictError when the order was already rated.
	MarkRated(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its owner and identifier.
	Get(ctx context.Context, userID int64, id string) (*order.Order, error)

	// GetAllPendingUnassigned retrieves the orders awaiting a courier,
	// oldest first.
	GetAllPendingUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAllByCourier retrieves every order ever claimed by the courier.
	GetAllByCourier(ctx context.Context, courierID int64) ([]*order.Order, error)

	// GetAll retrieves every stored order. Used by the stats aggregation,
	// which scans the full history.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
