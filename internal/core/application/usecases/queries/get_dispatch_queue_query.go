// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"shopbot/internal/pkg/guard"
)

var ErrGetDispatchQueueQueryIsNotConstructed = errors.New(
	"GetDispatchQueueQuery must be created via NewGetDispatchQueueQuery constructor",
)

// GetDispatchQueueQuery retrieves the orders awaiting a courier, oldest
// first. This is the list shown to couriers when they ask for work.
type GetDispatchQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDispatchQueueQuery creates a query for the dispatch queue.
func NewGetDispatchQueueQuery() GetDispatchQueueQuery {
	return GetDispatchQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchQueueQueryIsNotConstructed)
}

// GetDispatchQueueQueryResponse is one dispatch queue entry. The owner's
// chat id travels with the order id because order ids are only unique per
// user.
type GetDispatchQueueQueryResponse struct {
	UserID      int64
	OrderID     string
	ProductName string
	Quantity    int
	Total       int64
	Destination string
	Comment     string
	CreatedAt   time.Time
}
