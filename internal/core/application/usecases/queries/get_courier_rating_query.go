package queries

import (
	"errors"

	"shopbot/internal/pkg/guard"
)

var (
	ErrGetCourierRatingQueryIsNotConstructed = errors.New(
		"GetCourierRatingQuery must be created via NewGetCourierRatingQuery constructor",
	)
	ErrCourierIDIsInvalid = errors.New("courier id must be greater than 0")
)

// GetCourierRatingQuery retrieves a courier's average customer rating.
type GetCourierRatingQuery struct { //nolint:recvcheck //using for validation
	courierID int64

	guard guard.ConstructorGuard
}

// NewGetCourierRatingQuery creates a rating summary query.
func NewGetCourierRatingQuery(courierID int64) (GetCourierRatingQuery, error) {
	if courierID <= 0 {
		return GetCourierRatingQuery{}, ErrCourierIDIsInvalid
	}

	return GetCourierRatingQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierRatingQueryIsNotConstructed)
}

// CourierID returns the courier to report on.
func (q GetCourierRatingQuery) CourierID() int64 {
	return q.courierID
}

// GetCourierRatingQueryResponse is the rating summary read model. Average
// is zero when the courier has no ratings yet.
type GetCourierRatingQueryResponse struct {
	CourierID int64
	Count     int
	Average   float64
}
