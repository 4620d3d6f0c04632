package commands

import (
	"context"
	"log/slog"

	"shopbot/internal/core/ports"
)

// AcceptOrderCommandHandler handles a courier claiming an order. The claim
// is persisted with a compare-and-set guard, so when two couriers race for
// the same order exactly one wins and the other receives a conflict.
type AcceptOrderCommandHandler struct {
	uowFactory OrderCourierUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderCourierUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "accept_order"),
	}
}

// Handle processes the acceptance command. The courier must be in the
// directory and the order must still be pending and unclaimed.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.UserID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Accept(cmd.CourierID(), cmd.AcceptedAt()); err != nil {
		return err
	}

	if err = orderRepo.Claim(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event",
			"order_id", aggregate.ID(), "error", err)
	}

	return nil
}
