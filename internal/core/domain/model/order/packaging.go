package order

import (
	"fmt"

	"shopbot/internal/pkg/errs"
)

// Packaging identifies the packaging variant chosen during checkout.
// Products whose catalog entry defines a container price pair require the
// customer to choose WithContainer or WithoutContainer; the chosen variant
// selects the unit price that is frozen into the order. Single-price
// products use PackagingPlain.
type Packaging int

const (
	// PackagingUnknown represents an invalid or undefined variant.
	PackagingUnknown Packaging = iota

	// PackagingPlain is used for products with a single catalog price.
	PackagingPlain

	// PackagingWithContainer includes the returnable container fee.
	PackagingWithContainer

	// PackagingWithoutContainer excludes the container fee; the customer
	// exchanges an own container at handover.
	PackagingWithoutContainer
)

func getPackagingStrings() map[Packaging]string {
	return map[Packaging]string{
		PackagingUnknown:          "unknown",
		PackagingPlain:            "plain",
		PackagingWithContainer:    "with_container",
		PackagingWithoutContainer: "without_container",
	}
}

// Validate checks if the Packaging value is a defined variant.
func (p Packaging) Validate() error {
	if p == PackagingUnknown {
		return errs.NewValueIsInvalidErrorWithCause("packaging is invalid", fmt.Errorf("%d is not a valid packaging", p))
	}
	if _, ok := getPackagingStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packaging is invalid", fmt.Errorf("%d is not a valid packaging", p))
	}
	return nil
}

// PackagingFromString parses the wire-level packaging name used in
// persistence.
func PackagingFromString(s string) (Packaging, error) {
	for packaging, str := range getPackagingStrings() {
		if packaging != PackagingUnknown && str == s {
			return packaging, nil
		}
	}
	return PackagingUnknown, errs.NewValueIsInvalidErrorWithCause("packaging is invalid", fmt.Errorf("%q is not a valid packaging", s))
}

// String returns the wire-level name of the packaging variant.
func (p Packaging) String() string {
	if str, ok := getPackagingStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// DeliveryTime is the customer's delivery-time preference collected at
// checkout. It is informational only and never affects the lifecycle.
type DeliveryTime int

const (
	// DeliveryTimeUnknown represents an invalid or undefined preference.
	DeliveryTimeUnknown DeliveryTime = iota

	// DeliveryImmediate asks for delivery as soon as possible.
	DeliveryImmediate

	// DeliveryDeferred asks for delivery later today.
	DeliveryDeferred
)

func getDeliveryTimeStrings() map[DeliveryTime]string {
	return map[DeliveryTime]string{
		DeliveryTimeUnknown: "unknown",
		DeliveryImmediate:   "immediate",
		DeliveryDeferred:    "deferred",
	}
}

// Validate checks if the DeliveryTime value is a defined preference.
func (d DeliveryTime) Validate() error {
	if d != DeliveryImmediate && d != DeliveryDeferred {
		return errs.NewValueIsInvalidErrorWithCause("delivery time is invalid", fmt.Errorf("%d is not a valid delivery time", d))
	}
	return nil
}

// DeliveryTimeFromString parses the wire-level preference name used in
// persistence.
func DeliveryTimeFromString(s string) (DeliveryTime, error) {
	for dt, str := range getDeliveryTimeStrings() {
		if dt != DeliveryTimeUnknown && str == s {
			return dt, nil
		}
	}
	return DeliveryTimeUnknown, errs.NewValueIsInvalidErrorWithCause("delivery time is invalid", fmt.Errorf("%q is not a valid delivery time", s))
}

// String returns the wire-level name of the preference.
func (d DeliveryTime) String() string {
	if str, ok := getDeliveryTimeStrings()[d]; ok {
		return str
	}
	return "unknown"
}
