package commands

import (
	"errors"

	"shopbot/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrProductIDIsRequired = errors.New("product id is required")
)

// AddToCartCommand represents a request to add one unit of a product to a
// customer's cart. Repeated commands for the same product raise the
// quantity.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	userID    int64
	productID string

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a cart addition command.
func NewAddToCartCommand(userID int64, productID string) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// UserID returns the customer's chat id.
func (c AddToCartCommand) UserID() int64 {
	return c.userID
}

// ProductID returns the catalog id of the product to add.
func (c AddToCartCommand) ProductID() string {
	return c.productID
}

func (c *AddToCartCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *AddToCartCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}
