package ports

import (
	"context"

	"shopbot/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// A user is loaded with its cart and full order history.
type UserRepository interface {
	// Add persists a newly registered user.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate, including its
	// cart and any new or changed orders.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its chat id. Returns
	// errs.ObjectNotFoundError when the user is not registered.
	Get(ctx context.Context, id int64) (*user.User, error)
}
