package commands

import (
	"context"

	"shopbot/internal/core/ports"
	"shopbot/internal/pkg/errs"
)

// RateOrderCommandHandler records a customer rating. The order's rated flag
// and the rating log entry are written in the same transaction so the two
// can never diverge.
type RateOrderCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewRateOrderCommandHandler creates a handler for order rating.
func NewRateOrderCommandHandler(uowFactory RatingUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command. The order must be delivered and not
// yet rated.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.UserID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Rate(cmd.Value()); err != nil {
		return err
	}

	if aggregate.Courier() == nil {
		return errs.NewValueIsRequiredError("courierId")
	}

	// Conditional write keyed on the rated flag, so a repeated rating for
	// the same order conflicts instead of overwriting the first one.
	if err = orderRepo.MarkRated(ctx, aggregate); err != nil {
		return err
	}

	record := ports.RatingRecord{
		UserID:    cmd.UserID(),
		OrderID:   aggregate.ID(),
		CourierID: *aggregate.Courier(),
		Value:     cmd.Value(),
		CreatedAt: cmd.RatedAt(),
	}
	if err = uow.RatingRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
