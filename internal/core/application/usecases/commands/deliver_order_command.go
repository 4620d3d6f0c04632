package commands

import (
	"errors"
	"time"

	"shopbot/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a courier marking their claimed order as
// handed to the customer.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	userID      int64
	orderID     string
	courierID   int64
	deliveredAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a delivery completion command.
func NewDeliverOrderCommand(userID int64, orderID string, courierID int64, deliveredAt time.Time) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	cmd.deliveredAt = deliveredAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// UserID returns the chat id of the order's owner.
func (c DeliverOrderCommand) UserID() int64 {
	return c.userID
}

// OrderID returns the order identifier within the owner's history.
func (c DeliverOrderCommand) OrderID() string {
	return c.orderID
}

// CourierID returns the delivering courier's chat id.
func (c DeliverOrderCommand) CourierID() int64 {
	return c.courierID
}

// DeliveredAt returns the delivery timestamp.
func (c DeliverOrderCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}

func (c *DeliverOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *DeliverOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return ErrCourierIDIsInvalid
	}

	c.courierID = courierID
	return nil
}
