package queries

import (
	"errors"
	"time"

	"shopbot/internal/core/domain/services"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/pkg/guard"
)

var ErrGetCourierStatsQueryIsNotConstructed = errors.New(
	"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
)

// GetCourierStatsQuery retrieves per-courier sales figures. With a courier
// id it reports a single courier; with zero it reports every courier,
// ranked by total sales. The optional date filter narrows the report to a
// day or a range.
type GetCourierStatsQuery struct { //nolint:recvcheck //using for validation
	courierID int64
	filter    services.DateFilter

	guard guard.ConstructorGuard
}

// NewGetCourierStatsQuery creates a stats query. courierID may be zero to
// rank all couriers.
func NewGetCourierStatsQuery(courierID int64, filter services.DateFilter) (GetCourierStatsQuery, error) {
	if courierID < 0 {
		return GetCourierStatsQuery{}, errs.NewValueIsInvalidError("courierId")
	}

	return GetCourierStatsQuery{
		courierID: courierID,
		filter:    filter,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}

// CourierID returns the courier to report on, or zero for all couriers.
func (q GetCourierStatsQuery) CourierID() int64 {
	return q.courierID
}

// Filter returns the date filter.
func (q GetCourierStatsQuery) Filter() services.DateFilter {
	return q.filter
}

// CourierStatsOrder is one delivered order inside a stats response, newest
// first.
type CourierStatsOrder struct {
	UserID      int64
	OrderID     string
	ProductName string
	Total       int64
	Commission  int64
	DeliveredAt time.Time
}

// GetCourierStatsQueryResponse is the per-courier aggregation read model.
type GetCourierStatsQueryResponse struct {
	CourierID       int64
	Count           int
	TotalSales      int64
	TotalCommission int64
	Orders          []CourierStatsOrder
}
