package courier

import (
	"errors"
	"fmt"
	"time"

	"shopbot/internal/pkg/errs"
)

var (
	// ErrCourierIsNotConstructed is returned when a Courier instance was not
	// created through the NewCourier or RestoreCourier factory methods.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier represents a delivery courier onboarded by an administrator.
//
// Orders reference a courier by id as a weak reference: removing a courier
// from the directory never cascades into their historical orders.
type Courier struct {
	id          int64
	handle      string
	onboardedAt time.Time
	onboardedBy int64

	isConstructed bool
}

// NewCourier creates a Courier during admin onboarding.
func NewCourier(id int64, handle string, onboardedAt time.Time, onboardedBy int64) (*Courier, error) {
	if err := errors.Join(
		validateID(id),
		validateHandle(handle),
		validateOnboardedBy(onboardedBy),
	); err != nil {
		return nil, err
	}

	return &Courier{
		id:            id,
		handle:        handle,
		onboardedAt:   onboardedAt,
		onboardedBy:   onboardedBy,
		isConstructed: true,
	}, nil
}

// RestoreCourier reconstructs a Courier from persistence.
func RestoreCourier(id int64, handle string, onboardedAt time.Time, onboardedBy int64) (*Courier, error) {
	return NewCourier(id, handle, onboardedAt, onboardedBy)
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}

	return nil
}

// IsEqual compares two couriers by their identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id == other.id
}

// ID returns the courier's numeric chat id.
func (c *Courier) ID() int64 { return c.id }

// Handle returns the courier's display handle.
func (c *Courier) Handle() string { return c.handle }

// OnboardedAt returns the onboarding timestamp.
func (c *Courier) OnboardedAt() time.Time { return c.onboardedAt }

// OnboardedBy returns the id of the administrator who onboarded the courier.
func (c *Courier) OnboardedBy() int64 { return c.onboardedBy }

func validateID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courierId", fmt.Errorf("%d is not a valid courier id", id))
	}
	return nil
}

func validateHandle(handle string) error {
	if handle == "" {
		return errs.NewValueIsRequiredError("handle")
	}
	return nil
}

func validateOnboardedBy(onboardedBy int64) error {
	if onboardedBy <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("onboardedBy", fmt.Errorf("%d is not a valid admin id", onboardedBy))
	}
	return nil
}
