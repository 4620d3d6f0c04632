package commands

import (
	"context"
	"log/slog"

	"shopbot/internal/core/ports"
)

// DeliverOrderCommandHandler completes a delivery. Only the courier who
// claimed the order may complete it; the commission is computed from the
// rate in effect now and frozen on the order.
type DeliverOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	publisher      ports.OrderEventPublisher
	logger         *slog.Logger
	commissionRate float64
}

// NewDeliverOrderCommandHandler creates a handler for delivery completion.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	commissionRate float64,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory:     uowFactory,
		publisher:      publisher,
		logger:         logger.With("component", "deliver_order"),
		commissionRate: commissionRate,
	}
}

// Handle processes the delivery completion command.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	if err = aggregate.Deliver(cmd.CourierID(), cmd.DeliveredAt(), h.commissionRate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
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
