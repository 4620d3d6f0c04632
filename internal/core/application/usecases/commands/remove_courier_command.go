package commands

import (
	"errors"

	"shopbot/internal/pkg/guard"
)

var ErrRemoveCourierCommandIsNotConstructed = errors.New(
	"RemoveCourierCommand must be created via NewRemoveCourierCommand constructor",
)

// RemoveCourierCommand represents an administrator taking a courier out of
// the directory. Orders the courier already delivered keep their courier id;
// the reference simply stops resolving.
type RemoveCourierCommand struct { //nolint:recvcheck //using for validation
	courierID int64

	guard guard.ConstructorGuard
}

// NewRemoveCourierCommand creates a courier removal command.
func NewRemoveCourierCommand(courierID int64) (RemoveCourierCommand, error) {
	if courierID <= 0 {
		return RemoveCourierCommand{}, ErrCourierIDIsInvalid
	}

	return RemoveCourierCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCourierCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCourierCommandIsNotConstructed)
}

// CourierID returns the courier to remove.
func (c RemoveCourierCommand) CourierID() int64 {
	return c.courierID
}
