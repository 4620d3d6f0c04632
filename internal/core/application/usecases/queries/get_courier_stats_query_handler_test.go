package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopbot/internal/core/application/usecases/queries"
	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/core/domain/services"
)

func newDeliveredOrder(t *testing.T, userID, courierID int64, createdAt, deliveredAt time.Time) *order.Order {
	t.Helper()

	o := newPendingOrder(t, userID, createdAt)
	require.NoError(t, o.Accept(courierID, deliveredAt.Add(-time.Minute)))
	require.NoError(t, o.Deliver(courierID, deliveredAt, 0.10))
	return o
}

func TestGetCourierStatsQueryHandler_Handle_SingleCourier(t *testing.T) {
	ctx := t.Context()
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	mine := newDeliveredOrder(t, 100, 501, base, base.Add(time.Hour))
	other := newDeliveredOrder(t, 101, 502, base.Add(time.Second), base.Add(time.Hour))
	pending := newPendingOrder(t, 102, base.Add(2*time.Second))

	repo := new(MockOrderRepository)
	repo.On("GetAll", ctx).Return([]*order.Order{mine, other, pending}, nil).Once()

	q, err := queries.NewGetCourierStatsQuery(501, services.DateFilter{})
	require.NoError(t, err)

	h := queries.NewGetCourierStatsQueryHandler(repo, 0.10)
	result, err := h.Handle(ctx, q)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, int64(501), result[0].CourierID)
	assert.Equal(t, 1, result[0].Count)
	assert.Equal(t, int64(50000), result[0].TotalSales)
	assert.Equal(t, int64(5000), result[0].TotalCommission)
	require.Len(t, result[0].Orders, 1)
	assert.Equal(t, mine.ID(), result[0].Orders[0].OrderID)
	assert.Equal(t, int64(5000), result[0].Orders[0].Commission)
}

func TestGetCourierStatsQueryHandler_Handle_AllCouriersRanked(t *testing.T) {
	ctx := t.Context()
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	small := newDeliveredOrder(t, 100, 501, base, base.Add(time.Hour))
	big1 := newDeliveredOrder(t, 101, 502, base.Add(time.Second), base.Add(time.Hour))
	big2 := newDeliveredOrder(t, 102, 502, base.Add(2*time.Second), base.Add(2*time.Hour))

	repo := new(MockOrderRepository)
	repo.On("GetAll", ctx).Return([]*order.Order{small, big1, big2}, nil).Once()

	q, err := queries.NewGetCourierStatsQuery(0, services.DateFilter{})
	require.NoError(t, err)

	h := queries.NewGetCourierStatsQueryHandler(repo, 0.10)
	result, err := h.Handle(ctx, q)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, int64(502), result[0].CourierID)
	assert.Equal(t, 2, result[0].Count)
	assert.Equal(t, int64(501), result[1].CourierID)
}

func TestGetCourierStatsQueryHandler_Handle_DayFilter(t *testing.T) {
	ctx := t.Context()
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	today := newDeliveredOrder(t, 100, 501, base, base.Add(time.Hour))
	tomorrow := newDeliveredOrder(t, 101, 501, base.Add(time.Second), base.AddDate(0, 0, 1))

	repo := new(MockOrderRepository)
	repo.On("GetAll", ctx).Return([]*order.Order{today, tomorrow}, nil).Once()

	q, err := queries.NewGetCourierStatsQuery(501,
		services.DateFilter{Day: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	h := queries.NewGetCourierStatsQueryHandler(repo, 0.10)
	result, err := h.Handle(ctx, q)
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].Count)
	assert.Equal(t, today.ID(), result[0].Orders[0].OrderID)
}
