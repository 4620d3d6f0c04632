package commands

import (
	"context"
	"fmt"
	"log/slog"

	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/core/ports"
	"shopbot/internal/pkg/errs"
)

// CreateOrderCommandHandler handles checkout confirmation. The quantity
// comes from the customer's cart, which must hold the product. The handler
// freezes the product name and variant price from the catalog into a new
// pending order, attaches it to the user and clears the product's cart
// entry, all in one transaction. The lifecycle event and the dispatch-chat
// announcement are sent after the commit, best effort.
type CreateOrderCommandHandler struct {
	uowFactory     UserOrderUoWFactory
	catalog        ports.Catalog
	publisher      ports.OrderEventPublisher
	notifier       ports.Notifier
	dispatchChatID int64
	logger         *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for checkout confirmation.
func NewCreateOrderCommandHandler(
	uowFactory UserOrderUoWFactory,
	catalog ports.Catalog,
	publisher ports.OrderEventPublisher,
	notifier ports.Notifier,
	dispatchChatID int64,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		catalog:        catalog,
		publisher:      publisher,
		notifier:       notifier,
		dispatchChatID: dispatchChatID,
		logger:         logger.With("component", "create_order"),
	}
}

// Handle processes the checkout command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	unitPrice, err := product.PriceFor(cmd.Packaging())
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

	userRepo := uow.UserRepository()

	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	quantity := aggregate.CartQuantity(cmd.ProductID())
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("product %s is not in the cart", cmd.ProductID()))
	}

	newOrder, err := order.NewOrder(
		cmd.UserID(),
		product.ID,
		product.Name,
		unitPrice,
		quantity,
		cmd.CreatedAt(),
		cmd.Packaging(),
		cmd.Destination(),
		cmd.DeliveryTime(),
		cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.PlaceOrder(newOrder); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, newOrder); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event",
			"order_id", newOrder.ID(), "error", err)
	}

	announcement := fmt.Sprintf("New order %s: %s x%d to %s",
		newOrder.ID(), newOrder.ProductName(), newOrder.Quantity(), newOrder.Destination().Text())
	if err = h.notifier.Notify(ctx, h.dispatchChatID, announcement); err != nil {
		h.logger.WarnContext(ctx, "failed to announce new order",
			"order_id", newOrder.ID(), "error", err)
	}

	return nil
}
