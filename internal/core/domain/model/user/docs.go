// Package user provides the User aggregate root: a registered customer with
// profile data, two delivery addresses (home and current), a shopping cart
// keyed by product id, and an append-only order list.
//
// The aggregate enforces cart and order-list invariants; individual order
// lifecycle rules live in the order package.
package user
