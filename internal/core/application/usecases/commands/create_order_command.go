package commands

import (
	"errors"
	"time"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a completed checkout dialog: the chosen
// product, packaging, destination and delivery preferences. The quantity is
// not part of the command; the handler draws it from the customer's cart.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    chatID, "flowers-7", order.PackagingWithContainer,
//	    destination, order.DeliveryImmediate, "leave at the door", time.Now(),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID       int64
	productID    string
	packaging    order.Packaging
	destination  kernel.Address
	deliveryTime order.DeliveryTime
	comment      string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. Validates ids,
// packaging, destination and delivery time; the comment may be empty.
func NewCreateOrderCommand(
	userID int64,
	productID string,
	packaging order.Packaging,
	destination kernel.Address,
	deliveryTime order.DeliveryTime,
	comment string,
	createdAt time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setProductID(productID),
		packaging.Validate(),
		destination.Validate(),
		deliveryTime.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.packaging = packaging
	cmd.destination = destination
	cmd.deliveryTime = deliveryTime
	cmd.comment = comment
	cmd.createdAt = createdAt

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the customer's chat id.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

// ProductID returns the catalog id of the ordered product.
func (c CreateOrderCommand) ProductID() string {
	return c.productID
}

// Packaging returns the chosen packaging variant.
func (c CreateOrderCommand) Packaging() order.Packaging {
	return c.packaging
}

// Destination returns the delivery address.
func (c CreateOrderCommand) Destination() kernel.Address {
	return c.destination
}

// DeliveryTime returns the delivery timing preference.
func (c CreateOrderCommand) DeliveryTime() order.DeliveryTime {
	return c.deliveryTime
}

// Comment returns the free-form delivery comment, possibly empty.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

// CreatedAt returns the checkout confirmation time, which also seeds the
// order id.
func (c CreateOrderCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}
