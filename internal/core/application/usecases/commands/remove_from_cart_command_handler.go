package commands

import (
	"context"
)

// RemoveFromCartCommandHandler lowers a cart quantity by one. Removing a
// product that is not in the cart is a harmless no-op, matching the chat
// flow where stale buttons can be pressed twice.
type RemoveFromCartCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRemoveFromCartCommandHandler creates a handler for cart removals.
func NewRemoveFromCartCommandHandler(uowFactory UserUoWFactory) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle lowers the cart quantity and persists the user.
func (h *RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if _, err = aggregate.RemoveFromCart(cmd.ProductID()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
