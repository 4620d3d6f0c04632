package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/core/domain/services"
)

func newDeliveredOrder(t *testing.T, userID, courierID int64, total int64, createdAt, deliveredAt time.Time) *order.Order {
	t.Helper()

	o := newPendingOrder(t, userID, createdAt)
	require.NoError(t, o.Accept(courierID, deliveredAt.Add(-time.Minute)))
	require.NoError(t, o.Deliver(courierID, deliveredAt, 0.10))

	// the helper builds 2 x 25000 orders; scale via a fresh restore when a
	// custom total is needed
	if total == o.Total() {
		return o
	}

	restored, err := order.RestoreOrder(
		o.ID(), o.UserID(), o.ProductID(), o.ProductName(),
		total, 1, total,
		o.CreatedAt(), o.Packaging(), o.Destination(), o.DeliveryTime(), o.Comment(),
		order.Delivered, o.Courier(), o.AcceptedAt(), o.DeliveredAt(),
		ptr(order.Commission(total, 0.10)), false, nil,
	)
	require.NoError(t, err)

	return restored
}

func ptr[T any](v T) *T { return &v }

func Test_StatsAggregator_AggregateForCourier(t *testing.T) {
	agg := services.NewStatsAggregator(0.10)
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("sums sales and commission for one courier", func(t *testing.T) {
		o1 := newDeliveredOrder(t, 100, 501, 45000, base, base.Add(time.Hour))
		o2 := newDeliveredOrder(t, 101, 501, 30000, base.Add(time.Second), base.Add(2*time.Hour))
		other := newDeliveredOrder(t, 102, 502, 99000, base.Add(2*time.Second), base.Add(time.Hour))

		stats, err := agg.AggregateForCourier(501, []*order.Order{o1, o2, other}, services.DateFilter{})
		require.NoError(t, err)

		assert.Equal(t, 2, stats.Count)
		assert.Equal(t, int64(75000), stats.TotalSales)
		assert.Equal(t, int64(7500), stats.TotalCommission)
	})

	t.Run("commission of 45000 at 10 percent is 4500", func(t *testing.T) {
		o := newDeliveredOrder(t, 100, 501, 45000, base, base.Add(time.Hour))

		stats, err := agg.AggregateForCourier(501, []*order.Order{o}, services.DateFilter{})
		require.NoError(t, err)

		assert.Equal(t, int64(4500), stats.TotalCommission)
	})

	t.Run("frozen commission wins over current rate", func(t *testing.T) {
		o := newDeliveredOrder(t, 100, 501, 45000, base, base.Add(time.Hour))

		higher := services.NewStatsAggregator(0.25)
		stats, err := higher.AggregateForCourier(501, []*order.Order{o}, services.DateFilter{})
		require.NoError(t, err)

		// 45000 x 0.10 frozen at delivery, not 45000 x 0.25
		assert.Equal(t, int64(4500), stats.TotalCommission)
	})

	t.Run("pending orders are never counted", func(t *testing.T) {
		pending := newPendingOrder(t, 100, base)

		stats, err := agg.AggregateForCourier(501, []*order.Order{pending}, services.DateFilter{})
		require.NoError(t, err)

		assert.Zero(t, stats.Count)
		assert.Zero(t, stats.TotalSales)
	})

	t.Run("orders come out newest first", func(t *testing.T) {
		older := newDeliveredOrder(t, 100, 501, 50000, base, base.Add(time.Hour))
		newer := newDeliveredOrder(t, 101, 501, 50000, base.Add(time.Second), base.Add(3*time.Hour))

		stats, err := agg.AggregateForCourier(501, []*order.Order{older, newer}, services.DateFilter{})
		require.NoError(t, err)

		require.Len(t, stats.Orders, 2)
		assert.Equal(t, newer.ID(), stats.Orders[0].ID())
		assert.Equal(t, older.ID(), stats.Orders[1].ID())
	})
}

func Test_StatsAggregator_DateFilter(t *testing.T) {
	agg := services.NewStatsAggregator(0.10)
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	inDay := newDeliveredOrder(t, 100, 501, 50000, base, base.Add(time.Hour))
	nextDay := newDeliveredOrder(t, 101, 501, 30000, base.Add(time.Second), base.AddDate(0, 0, 1))

	t.Run("day filter matches calendar day of delivery", func(t *testing.T) {
		stats, err := agg.AggregateForCourier(501, []*order.Order{inDay, nextDay},
			services.DateFilter{Day: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)})
		require.NoError(t, err)

		assert.Equal(t, 1, stats.Count)
		assert.Equal(t, int64(50000), stats.TotalSales)
	})

	t.Run("range filter is inclusive", func(t *testing.T) {
		stats, err := agg.AggregateForCourier(501, []*order.Order{inDay, nextDay},
			services.DateFilter{Start: base.Add(time.Hour), End: base.AddDate(0, 0, 1)})
		require.NoError(t, err)

		assert.Equal(t, 2, stats.Count)
	})

	t.Run("open ended range", func(t *testing.T) {
		stats, err := agg.AggregateForCourier(501, []*order.Order{inDay, nextDay},
			services.DateFilter{Start: base.Add(2 * time.Hour)})
		require.NoError(t, err)

		assert.Equal(t, 1, stats.Count)
		assert.Equal(t, int64(30000), stats.TotalSales)
	})

	t.Run("zero filter matches everything", func(t *testing.T) {
		stats, err := agg.AggregateForCourier(501, []*order.Order{inDay, nextDay}, services.DateFilter{})
		require.NoError(t, err)

		assert.Equal(t, 2, stats.Count)
	})
}

func Test_StatsAggregator_Aggregate(t *testing.T) {
	agg := services.NewStatsAggregator(0.10)
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("couriers sorted by sales descending", func(t *testing.T) {
		small := newDeliveredOrder(t, 100, 501, 10000, base, base.Add(time.Hour))
		big := newDeliveredOrder(t, 101, 502, 90000, base.Add(time.Second), base.Add(time.Hour))
		medium := newDeliveredOrder(t, 102, 503, 40000, base.Add(2*time.Second), base.Add(time.Hour))

		result, err := agg.Aggregate([]*order.Order{small, big, medium}, services.DateFilter{})
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, int64(502), result[0].CourierID)
		assert.Equal(t, int64(503), result[1].CourierID)
		assert.Equal(t, int64(501), result[2].CourierID)
	})

	t.Run("orders without courier are skipped", func(t *testing.T) {
		pending := newPendingOrder(t, 100, base)

		result, err := agg.Aggregate([]*order.Order{pending}, services.DateFilter{})
		require.NoError(t, err)

		assert.Empty(t, result)
	})
}
