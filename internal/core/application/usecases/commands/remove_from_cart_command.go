package commands

import (
	"errors"

	"shopbot/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand represents a request to remove one unit of a product
// from a customer's cart. When the quantity reaches zero the cart entry
// disappears.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	userID    int64
	productID string

	guard guard.ConstructorGuard
}

// NewRemoveFromCartCommand creates a cart removal command.
func NewRemoveFromCartCommand(userID int64, productID string) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

// UserID returns the customer's chat id.
func (c RemoveFromCartCommand) UserID() int64 {
	return c.userID
}

// ProductID returns the catalog id of the product to remove.
func (c RemoveFromCartCommand) ProductID() string {
	return c.productID
}

func (c *RemoveFromCartCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *RemoveFromCartCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}
