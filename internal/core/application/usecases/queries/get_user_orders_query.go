package queries

import (
	"errors"
	"time"

	"shopbot/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrUserIDIsInvalid = errors.New("user id must be greater than 0")
)

// GetUserOrdersQuery retrieves a customer's order history, newest first.
type GetUserOrdersQuery struct { //nolint:recvcheck //using for validation
	userID int64

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates an order history query.
func NewGetUserOrdersQuery(userID int64) (GetUserOrdersQuery, error) {
	if userID <= 0 {
		return GetUserOrdersQuery{}, ErrUserIDIsInvalid
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the customer's chat id.
func (q GetUserOrdersQuery) UserID() int64 {
	return q.userID
}

// GetUserOrdersQueryResponse is one history entry in the customer's order
// list read model.
type GetUserOrdersQueryResponse struct {
	OrderID     string
	ProductName string
	Quantity    int
	Total       int64
	Status      string
	CreatedAt   time.Time
	DeliveredAt *time.Time
	Rating      *int
}
