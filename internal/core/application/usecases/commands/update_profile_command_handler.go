package commands

import (
	"context"
	"errors"
)

// UpdateProfileCommandHandler applies partial profile updates to an existing
// customer.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the user, applies the changed fields and persists the result.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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

	var applyErr error
	if cmd.Name() != nil {
		applyErr = errors.Join(applyErr, aggregate.UpdateName(*cmd.Name()))
	}
	if cmd.Phone() != nil {
		applyErr = errors.Join(applyErr, aggregate.UpdatePhone(*cmd.Phone()))
	}
	if cmd.HomeAddress() != nil {
		applyErr = errors.Join(applyErr, aggregate.UpdateHomeAddress(*cmd.HomeAddress()))
	}
	if cmd.CurrentAddress() != nil {
		applyErr = errors.Join(applyErr, aggregate.UpdateCurrentAddress(*cmd.CurrentAddress()))
	}
	if applyErr != nil {
		return applyErr
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
