// Package ports defines the outbound contracts of the application core:
// repositories, the catalog, chat notification and event publishing.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"shopbot/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for the courier
// directory.
type CourierRepository interface {
	// Add persists a newly onboarded courier.
	// The courier must be valid and not already exist in the directory.
	Add(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by id. Returns errs.ObjectNotFoundError when
	// the id is not in the directory.
	Get(ctx context.Context, id int64) (*courier.Courier, error)

	// GetAll retrieves the whole courier directory.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// Delete removes a courier from the directory. Returns
	// errs.ObjectNotFoundError when the id is not in the directory. Orders
	// referencing the courier are left alone.
	Delete(ctx context.Context, id int64) error
}
