package commands

import (
	"errors"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/pkg/guard"
)

var (
	ErrUpdateProfileCommandIsNotConstructed = errors.New(
		"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one profile field must be set")
)

// UpdateProfileCommand represents a request to change one or more fields of
// a customer's profile. Unset fields are left untouched.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID      int64
	name        *string
	phone       *string
	homeAddress *kernel.Address
	currentAddr *kernel.Address

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a profile update command. Nil fields are
// skipped; at least one field must be present.
func NewUpdateProfileCommand(
	userID int64,
	name *string,
	phone *string,
	homeAddress *kernel.Address,
	currentAddr *kernel.Address,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return UpdateProfileCommand{}, err
	}

	if name == nil && phone == nil && homeAddress == nil && currentAddr == nil {
		return UpdateProfileCommand{}, ErrNothingToUpdate
	}

	if name != nil && *name == "" {
		return UpdateProfileCommand{}, ErrNameIsRequired
	}
	if phone != nil && *phone == "" {
		return UpdateProfileCommand{}, ErrPhoneIsRequired
	}
	if homeAddress != nil {
		if err := homeAddress.Validate(); err != nil {
			return UpdateProfileCommand{}, err
		}
	}
	if currentAddr != nil {
		if err := currentAddr.Validate(); err != nil {
			return UpdateProfileCommand{}, err
		}
	}

	cmd.name = name
	cmd.phone = phone
	cmd.homeAddress = homeAddress
	cmd.currentAddr = currentAddr

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// UserID returns the customer's chat id.
func (c UpdateProfileCommand) UserID() int64 {
	return c.userID
}

// Name returns the new display name, or nil when unchanged.
func (c UpdateProfileCommand) Name() *string {
	return c.name
}

// Phone returns the new contact phone, or nil when unchanged.
func (c UpdateProfileCommand) Phone() *string {
	return c.phone
}

// HomeAddress returns the new default delivery address, or nil when unchanged.
func (c UpdateProfileCommand) HomeAddress() *kernel.Address {
	return c.homeAddress
}

// CurrentAddress returns the new current address, or nil when unchanged.
func (c UpdateProfileCommand) CurrentAddress() *kernel.Address {
	return c.currentAddr
}

func (c *UpdateProfileCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return ErrUserIDIsInvalid
	}

	c.userID = userID
	return nil
}
