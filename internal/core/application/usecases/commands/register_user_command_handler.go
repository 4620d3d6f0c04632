package commands

import (
	"context"

	"shopbot/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles customer registration. The new user
// starts with an empty cart and no orders.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for customer registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command within a transaction.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newUser, err := user.NewUser(
		cmd.UserID(),
		cmd.Name(),
		cmd.Phone(),
		cmd.HomeAddress(),
		cmd.CurrentAddress(),
		cmd.RegisteredAt(),
	)
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

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
