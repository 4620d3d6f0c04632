package commands

import (
	"errors"

	"shopbot/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer abandoning a pending order before
// any courier claimed it.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	userID  int64
	orderID string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates an order cancellation command.
func NewCancelOrderCommand(userID int64, orderID string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// UserID returns the customer's chat id.
func (c CancelOrderCommand) UserID() int64 {
	return c.userID
}

// OrderID returns the order identifier within the customer's history.
func (c CancelOrderCommand) OrderID() string {
	return c.orderID
}

func (c *CancelOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *CancelOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
