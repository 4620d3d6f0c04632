package kernel

import (
	"errors"

	"shopbot/internal/pkg/errs"
	"shopbot/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through one of the Address factory methods.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a value object describing a delivery destination. It combines
// an optional geographic point with a free-text description; at least one of
// the two must be present.
//
// Address follows these invariants:
//   - A present GeoPoint has passed coordinate validation
//   - When no GeoPoint is present, the text description is non-empty
//   - Can only be created through NewAddress
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(41.3111, 69.2797)
//	addr, err := kernel.NewAddress(&point, "Chilonzor district, block 9")
type Address struct {
	geo   *GeoPoint
	text  string
	guard guard.ConstructorGuard
}

// NewAddress creates an Address from an optional geographic point and a
// free-text description. geo may be nil when text is non-empty.
func NewAddress(geo *GeoPoint, text string) (Address, error) {
	if geo == nil && text == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if geo != nil {
		if err := geo.Validate(); err != nil {
			return Address{}, err
		}
	}

	return Address{
		geo:   geo,
		text:  text,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// HasGeo reports whether the address carries geographic coordinates.
func (a Address) HasGeo() bool {
	return a.geo != nil
}

// Geo returns the geographic point, or nil when the address is text-only.
func (a Address) Geo() *GeoPoint {
	return a.geo
}

// Text returns the free-text description, possibly empty when a GeoPoint is
// present.
func (a Address) Text() string {
	return a.text
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
