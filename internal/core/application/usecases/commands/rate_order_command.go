package commands

import (
	"errors"
	"time"

	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a customer rating a delivered order.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	userID  int64
	orderID string
	value   int
	ratedAt time.Time

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a rating command. The value must be within
// the order rating scale.
func NewRateOrderCommand(userID int64, orderID string, value int, ratedAt time.Time) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOrderID(orderID),
		cmd.setValue(value),
	); err != nil {
		return RateOrderCommand{}, err
	}

	cmd.ratedAt = ratedAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// UserID returns the customer's chat id.
func (c RateOrderCommand) UserID() int64 {
	return c.userID
}

// OrderID returns the order identifier within the customer's history.
func (c RateOrderCommand) OrderID() string {
	return c.orderID
}

// Value returns the rating value.
func (c RateOrderCommand) Value() int {
	return c.value
}

// RatedAt returns the rating timestamp.
func (c RateOrderCommand) RatedAt() time.Time {
	return c.ratedAt
}

func (c *RateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *RateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setValue(value int) error {
	if value < order.RatingMin || value > order.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", value, order.RatingMin, order.RatingMax)
	}

	c.value = value
	return nil
}
