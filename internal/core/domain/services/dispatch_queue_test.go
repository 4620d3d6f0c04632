package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/core/domain/services"
)

func newPendingOrder(t *testing.T, userID int64, createdAt time.Time) *order.Order {
	t.Helper()

	destination, err := kernel.NewAddress(nil, "Lenina 1, apt 5")
	require.NoError(t, err)

	o, err := order.NewOrder(
		userID,
		"flowers-7",
		"Peony bouquet",
		25000,
		2,
		createdAt,
		order.PackagingPlain,
		destination,
		order.DeliveryImmediate,
		"",
	)
	require.NoError(t, err)

	return o
}

func Test_DispatchQueue_Build(t *testing.T) {
	queue := services.NewDispatchQueue()
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("orders come out oldest first", func(t *testing.T) {
		second := newPendingOrder(t, 100, base.Add(2*time.Second))
		first := newPendingOrder(t, 101, base.Add(1*time.Second))
		third := newPendingOrder(t, 102, base.Add(3*time.Second))

		result, err := queue.Build([]*order.Order{second, first, third})
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, first.ID(), result[0].ID())
		assert.Equal(t, second.ID(), result[1].ID())
		assert.Equal(t, third.ID(), result[2].ID())
	})

	t.Run("claimed and terminal orders are excluded", func(t *testing.T) {
		pending := newPendingOrder(t, 100, base)

		accepted := newPendingOrder(t, 101, base.Add(time.Second))
		require.NoError(t, accepted.Accept(501, base.Add(time.Minute)))

		delivered := newPendingOrder(t, 102, base.Add(2*time.Second))
		require.NoError(t, delivered.Accept(501, base.Add(time.Minute)))
		require.NoError(t, delivered.Deliver(501, base.Add(2*time.Minute), 0.10))

		cancelled := newPendingOrder(t, 103, base.Add(3*time.Second))
		require.NoError(t, cancelled.Cancel())

		result, err := queue.Build([]*order.Order{pending, accepted, delivered, cancelled})
		require.NoError(t, err)

		require.Len(t, result, 1)
		assert.Equal(t, pending.ID(), result[0].ID())
	})

	t.Run("empty input yields empty queue", func(t *testing.T) {
		result, err := queue.Build(nil)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		a := newPendingOrder(t, 100, base)
		b := newPendingOrder(t, 101, base)

		result, err := queue.Build([]*order.Order{a, b})
		require.NoError(t, err)

		require.Len(t, result, 2)
		assert.Equal(t, int64(100), result[0].UserID())
		assert.Equal(t, int64(101), result[1].UserID())
	})

	t.Run("not constructed order fails the build", func(t *testing.T) {
		_, err := queue.Build([]*order.Order{{}})
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
