package commands

import (
	"context"

	"shopbot/internal/core/domain/model/courier"
)

// AddCourierCommandHandler handles courier onboarding by an administrator.
type AddCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewAddCourierCommandHandler creates a handler for courier onboarding.
func NewAddCourierCommandHandler(uowFactory CourierUoWFactory) AddCourierCommandHandler {
	return AddCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the onboarding command.
func (h *AddCourierCommandHandler) Handle(ctx context.Context, cmd AddCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newCourier, err := courier.NewCourier(cmd.CourierID(), cmd.Handle(), cmd.OnboardedAt(), cmd.OnboardedBy())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
