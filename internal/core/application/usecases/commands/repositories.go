// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shopbot/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface covering the aggregates it
// touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// RatingRepoFactory provides access to the rating log within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// UserUoW manages transactions for user-only operations: registration,
	// profile updates and cart edits.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UserOrderUoW coordinates changes spanning a user aggregate and its
	// orders, as in checkout where the cart entry and the new order must
	// move together.
	UserOrderUoW interface {
		TxManager
		UserRepoFactory
		OrderRepoFactory
	}

	// UserOrderUoWFactory creates new user+order unit of work instances.
	UserOrderUoWFactory interface {
		Create() UserOrderUoW
	}

	// OrderCourierUoW coordinates an order change that must check the
	// courier directory, as in order acceptance.
	OrderCourierUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// OrderCourierUoWFactory creates new order+courier unit of work instances.
	OrderCourierUoWFactory interface {
		Create() OrderCourierUoW
	}

	// RatingUoW coordinates the dual write of a rating: the order's rated
	// flag and the rating log entry commit in the same transaction.
	RatingUoW interface {
		TxManager
		OrderRepoFactory
		RatingRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}

	// CourierUoW manages transactions for courier directory operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}
)
