package commands

import (
	"errors"
	"time"

	"shopbot/internal/pkg/guard"
)

var (
	ErrAddCourierCommandIsNotConstructed = errors.New(
		"AddCourierCommand must be created via NewAddCourierCommand constructor",
	)
	ErrHandleIsRequired    = errors.New("courier handle is required")
	ErrOnboardedByIsNotSet = errors.New("onboarding admin id must be greater than 0")
)

// AddCourierCommand represents an administrator onboarding a courier into
// the directory.
type AddCourierCommand struct { //nolint:recvcheck //using for validation
	courierID   int64
	handle      string
	onboardedBy int64
	onboardedAt time.Time

	guard guard.ConstructorGuard
}

// NewAddCourierCommand creates a courier onboarding command.
func NewAddCourierCommand(courierID int64, handle string, onboardedBy int64, onboardedAt time.Time) (AddCourierCommand, error) {
	cmd := AddCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setHandle(handle),
		cmd.setOnboardedBy(onboardedBy),
	); err != nil {
		return AddCourierCommand{}, err
	}

	cmd.onboardedAt = onboardedAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCourierCommand) Validate() error {
	return c.guard.Validate(ErrAddCourierCommandIsNotConstructed)
}

// CourierID returns the new courier's chat id.
func (c AddCourierCommand) CourierID() int64 {
	return c.courierID
}

// Handle returns the courier's display handle.
func (c AddCourierCommand) Handle() string {
	return c.handle
}

// OnboardedBy returns the chat id of the onboarding administrator.
func (c AddCourierCommand) OnboardedBy() int64 {
	return c.onboardedBy
}

// OnboardedAt returns the onboarding timestamp.
func (c AddCourierCommand) OnboardedAt() time.Time {
	return c.onboardedAt
}

func (c *AddCourierCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return ErrCourierIDIsInvalid
	}

	c.courierID = courierID
	return nil
}

func (c *AddCourierCommand) setHandle(handle string) error {
	if handle == "" {
		return ErrHandleIsRequired
	}

	c.handle = handle
	return nil
}

func (c *AddCourierCommand) setOnboardedBy(onboardedBy int64) error {
	if onboardedBy <= 0 {
		return ErrOnboardedByIsNotSet
	}

	c.onboardedBy = onboardedBy
	return nil
}
