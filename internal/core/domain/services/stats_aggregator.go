package services

import (
	"sort"
	"time"

	"shopbot/internal/core/domain/model/order"
)

// DateFilter restricts a stats aggregation to a time window. The zero value
// matches every order.
//
// When Day is set, only orders whose stats date falls on that calendar day
// match. Otherwise Start and End bound the window inclusively; either side
// may be left zero to leave it open.
type DateFilter struct {
	Day   time.Time
	Start time.Time
	End   time.Time
}

// Matches reports whether the given stats date falls inside the filter.
func (f DateFilter) Matches(at time.Time) bool {
	if !f.Day.IsZero() {
		y1, m1, d1 := f.Day.Date()
		y2, m2, d2 := at.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}

	if !f.Start.IsZero() && at.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && at.After(f.End) {
		return false
	}

	return true
}

// CourierStats is the per-courier aggregation produced by StatsAggregator.
type CourierStats struct {
	CourierID       int64
	Orders          []*order.Order
	Count           int
	TotalSales      int64
	TotalCommission int64
}

// StatsAggregator is a domain service that computes per-courier sales
// figures over a set of orders.
//
// Only delivered orders with a courier are counted. The commission frozen
// at delivery time is preferred; orders delivered before commission
// freezing was introduced fall back to the current rate.
type StatsAggregator struct {
	commissionRate float64
}

// NewStatsAggregator creates a StatsAggregator using the given commission
// rate as a fallback for orders without a frozen commission.
func NewStatsAggregator(commissionRate float64) StatsAggregator {
	return StatsAggregator{commissionRate: commissionRate}
}

// AggregateForCourier computes the stats of a single courier over the given
// orders, applying the date filter to each order's stats date.
func (a StatsAggregator) AggregateForCourier(courierID int64, orders []*order.Order, filter DateFilter) (CourierStats, error) {
	stats := CourierStats{CourierID: courierID}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return CourierStats{}, err
		}

		if o.Status() != order.Delivered {
			continue
		}
		if o.Courier() == nil || *o.Courier() != courierID {
			continue
		}
		if !filter.Matches(o.StatsDate()) {
			continue
		}

		stats.Orders = append(stats.Orders, o)
		stats.Count++
		stats.TotalSales += o.Total()
		stats.TotalCommission += a.commission(o)
	}

	sort.SliceStable(stats.Orders, func(i, j int) bool {
		return stats.Orders[i].StatsDate().After(stats.Orders[j].StatsDate())
	})

	return stats, nil
}

// Aggregate computes the stats of every courier that delivered at least one
// matching order, sorted by total sales descending. Couriers with equal
// sales keep their first-seen order.
func (a StatsAggregator) Aggregate(orders []*order.Order, filter DateFilter) ([]CourierStats, error) {
	byCourier := make(map[int64]*CourierStats)
	var seen []int64

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		if o.Status() != order.Delivered || o.Courier() == nil {
			continue
		}
		if !filter.Matches(o.StatsDate()) {
			continue
		}

		id := *o.Courier()
		stats, ok := byCourier[id]
		if !ok {
			stats = &CourierStats{CourierID: id}
			byCourier[id] = stats
			seen = append(seen, id)
		}

		stats.Orders = append(stats.Orders, o)
		stats.Count++
		stats.TotalSales += o.Total()
		stats.TotalCommission += a.commission(o)
	}

	result := make([]CourierStats, 0, len(seen))
	for _, id := range seen {
		stats := byCourier[id]
		sort.SliceStable(stats.Orders, func(i, j int) bool {
			return stats.Orders[i].StatsDate().After(stats.Orders[j].StatsDate())
		})
		result = append(result, *stats)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSales > result[j].TotalSales
	})

	return result, nil
}

func (a StatsAggregator) commission(o *order.Order) int64 {
	if frozen := o.FrozenCommission(); frozen != nil {
		return *frozen
	}
	return order.Commission(o.Total(), a.commissionRate)
}
