package commands

import (
	"context"

	"shopbot/internal/core/ports"
)

// AddToCartCommandHandler adds a catalog product to a customer's cart. The
// product is checked against the catalog before the cart changes.
type AddToCartCommandHandler struct {
	uowFactory UserUoWFactory
	catalog    ports.Catalog
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(uowFactory UserUoWFactory, catalog ports.Catalog) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle validates the product against the catalog, raises the cart quantity
// and persists the user.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.catalog.GetProduct(ctx, cmd.ProductID()); err != nil {
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

	if _, err = aggregate.AddToCart(cmd.ProductID()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
