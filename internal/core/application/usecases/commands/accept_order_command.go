package commands

import (
	"errors"
	"time"

	"shopbot/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrOrderIDIsRequired  = errors.New("order id is required")
	ErrCourierIDIsInvalid = errors.New("courier id must be greater than 0")
)

// AcceptOrderCommand represents a courier's claim on a pending order. The
// order is addressed by its owner and id, the pair shown in the dispatch
// queue.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	userID     int64
	orderID    string
	courierID  int64
	acceptedAt time.Time

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates an order acceptance command.
func NewAcceptOrderCommand(userID int64, orderID string, courierID int64, acceptedAt time.Time) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	cmd.acceptedAt = acceptedAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// UserID returns the chat id of the order's owner.
func (c AcceptOrderCommand) UserID() int64 {
	return c.userID
}

// OrderID returns the order identifier within the owner's history.
func (c AcceptOrderCommand) OrderID() string {
	return c.orderID
}

// CourierID returns the claiming courier's chat id.
func (c AcceptOrderCommand) CourierID() int64 {
	return c.courierID
}

// AcceptedAt returns the acceptance timestamp.
func (c AcceptOrderCommand) AcceptedAt() time.Time {
	return c.acceptedAt
}

func (c *AcceptOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *AcceptOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return ErrCourierIDIsInvalid
	}

	c.courierID = courierID
	return nil
}
