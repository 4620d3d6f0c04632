// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and guarded state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, frozen pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Packaging: The packaging variant chosen at checkout, which selects the frozen unit price
//   - DeliveryTime: The customer's delivery-time preference (informational only)
//
// Key business rules:
//   - Order status follows a defined workflow: Pending -> OnDelivery -> Delivered
//   - A pending, unassigned order may instead be cancelled by the customer
//   - Accept requires the order to be pending and unassigned; only the
//     accepting courier may later deliver it
//   - Unit price is resolved from the catalog at creation time and frozen;
//     commission is computed and frozen at delivery time
//   - A delivered order can be rated exactly once, with a value from 1 to 5
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
