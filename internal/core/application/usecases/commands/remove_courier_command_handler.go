package commands

import (
	"context"
)

// RemoveCourierCommandHandler handles taking a courier out of the directory.
// Past deliveries are untouched; only the directory entry goes away, so the
// courier can no longer claim orders.
type RemoveCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewRemoveCourierCommandHandler creates a handler for courier removal.
func NewRemoveCourierCommandHandler(uowFactory CourierUoWFactory) RemoveCourierCommandHandler {
	return RemoveCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveCourierCommandHandler) Handle(ctx context.Context, cmd RemoveCourierCommand) error {
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

	if err := uow.CourierRepository().Delete(ctx, cmd.CourierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
