package order

import (
	"fmt"

	"shopbot/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> OnDelivery ──> Delivered
//	   │
//	   └──> Cancelled
//
// Delivered and Cancelled are final states. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be claimed by a courier.
	Pending

	// OnDelivery indicates a courier has accepted the order and is
	// fulfilling it.
	OnDelivery

	// Delivered indicates the order has been handed to the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the customer abandoned the order before a
	// courier accepted it. This is a final state distinct from Delivered.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		OnDelivery: "on_delivery",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		OnDelivery: "on_delivery",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, OnDelivery, Delivered and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status. It implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses the wire-level status name used in persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAccept checks if the status allows a courier to claim the order
// without performing the transition. Only Pending orders may be accepted.
func (s Status) ValidateAccept() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return nil
}

// Accept transitions the status to OnDelivery.
//
// Valid transitions:
//   - Pending -> OnDelivery
//
// Returns (0, error) if the transition is not allowed from the current
// status.
func (s Status) Accept() (Status, error) {
	if err := s.ValidateAccept(); err != nil {
		return 0, err
	}

	return OnDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - OnDelivery -> Delivered
//
// Returns (0, error) if the transition is not allowed from the current
// status.
func (s Status) Deliver() (Status, error) {
	if s != OnDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Returns (0, error) if the transition is not allowed from the current
// status.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment when reconstructing an order from persistence.
//
// Business rules:
//   - Pending and Cancelled orders must not have a courier assigned
//   - OnDelivery and Delivered orders must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != OnDelivery && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == OnDelivery || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}
