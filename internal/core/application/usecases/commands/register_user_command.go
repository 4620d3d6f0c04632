package commands

import (
	"errors"
	"time"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUserIDIsInvalid = errors.New("user id must be greater than 0")
	ErrNameIsRequired  = errors.New("name is required")
	ErrPhoneIsRequired = errors.New("phone is required")
)

// RegisterUserCommand represents a request to register a new customer after
// the registration dialog collected their name, phone, home address and
// current address.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID         int64
	name           string
	phone          string
	homeAddress    kernel.Address
	currentAddress kernel.Address
	registeredAt   time.Time

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new customer.
// Validates that the user id is positive, name and phone are not empty and
// both addresses are constructed.
func NewRegisterUserCommand(
	userID int64,
	name string,
	phone string,
	homeAddress kernel.Address,
	currentAddress kernel.Address,
	registeredAt time.Time,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setHomeAddress(homeAddress),
		cmd.setCurrentAddress(currentAddress),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.registeredAt = registeredAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the customer's chat id.
func (c RegisterUserCommand) UserID() int64 {
	return c.userID
}

// Name returns the customer's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Phone returns the customer's contact phone.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// HomeAddress returns the customer's default delivery address.
func (c RegisterUserCommand) HomeAddress() kernel.Address {
	return c.homeAddress
}

// CurrentAddress returns where the customer is right now.
func (c RegisterUserCommand) CurrentAddress() kernel.Address {
	return c.currentAddress
}

// RegisteredAt returns the registration timestamp.
func (c RegisterUserCommand) RegisteredAt() time.Time {
	return c.registeredAt
}

func (c *RegisterUserCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterUserCommand) setHomeAddress(homeAddress kernel.Address) error {
	if err := homeAddress.Validate(); err != nil {
		return err
	}

	c.homeAddress = homeAddress
	return nil
}

func (c *RegisterUserCommand) setCurrentAddress(currentAddress kernel.Address) error {
	if err := currentAddress.Validate(); err != nil {
		return err
	}

	c.currentAddress = currentAddress
	return nil
}
