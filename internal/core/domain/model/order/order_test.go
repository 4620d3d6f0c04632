package order_test

import (
	"testing"
	"time"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDestination(t *testing.T) kernel.Address {
	t.Helper()
	point, err := kernel.NewGeoPoint(41.3111, 69.2797)
	require.NoError(t, err)
	addr, err := kernel.NewAddress(&point, "Chilonzor district, block 9")
	require.NoError(t, err)
	return addr
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	createdAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	o, err := order.NewOrder(
		42, "water_19l", "Drinking water 19L", 25000, 2, createdAt,
		order.PackagingWithContainer, validDestination(t),
		order.DeliveryImmediate, "call before arriving",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("should create valid pending order", func(t *testing.T) {
		o, err := order.NewOrder(
			42, "water_19l", "Drinking water 19L", 25000, 2, createdAt,
			order.PackagingWithContainer, validDestination(t),
			order.DeliveryImmediate, "call before arriving",
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "20240315103000", o.ID())
		assert.Equal(t, int64(42), o.UserID())
		assert.Equal(t, int64(25000), o.UnitPrice())
		assert.Equal(t, int64(50000), o.Total())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.AcceptedAt())
		assert.Nil(t, o.DeliveredAt())
		assert.Nil(t, o.FrozenCommission())
		assert.False(t, o.IsRated())
		assert.True(t, o.IsUnassigned())
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := order.NewOrder(
			42, "water_19l", "Drinking water 19L", 25000, 0, createdAt,
			order.PackagingWithContainer, validDestination(t),
			order.DeliveryImmediate, "",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should fail with non-positive price", func(t *testing.T) {
		_, err := order.NewOrder(
			42, "water_19l", "Drinking water 19L", -1, 2, createdAt,
			order.PackagingWithContainer, validDestination(t),
			order.DeliveryImmediate, "",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unitPrice")
	})

	t.Run("should fail with unknown packaging", func(t *testing.T) {
		_, err := order.NewOrder(
			42, "water_19l", "Drinking water 19L", 25000, 2, createdAt,
			order.PackagingUnknown, validDestination(t),
			order.DeliveryImmediate, "",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "packaging")
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var noDestination kernel.Address

		_, err := order.NewOrder(
			0, "", "", 0, 0, time.Time{},
			order.PackagingUnknown, noDestination,
			order.DeliveryTimeUnknown, "",
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "userId")
		assert.Contains(t, err.Error(), "productId")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "Address must be created")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Accept(t *testing.T) {
	acceptedAt := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)

	t.Run("should claim pending unassigned order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Accept(7, acceptedAt)

		require.NoError(t, err)
		assert.Equal(t, order.OnDelivery, o.Status())
		require.NotNil(t, o.Courier())
		assert.Equal(t, int64(7), *o.Courier())
		require.NotNil(t, o.AcceptedAt())
		assert.Equal(t, acceptedAt, *o.AcceptedAt())
	})

	t.Run("second accept observes conflict and keeps first courier", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(7, acceptedAt))

		err := o.Accept(9, acceptedAt.Add(time.Second))

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, int64(7), *o.Courier())
	})

	t.Run("should reject invalid courier id", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Accept(0, acceptedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cancelled order cannot be accepted", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Accept(7, acceptedAt)

		require.Error(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_Deliver(t *testing.T) {
	acceptedAt := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)
	deliveredAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("should deliver and freeze commission", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(7, acceptedAt))

		err := o.Deliver(7, deliveredAt, 0.10)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
		require.NotNil(t, o.FrozenCommission())
		assert.Equal(t, int64(5000), *o.FrozenCommission())
	})

	t.Run("frozen commission survives later rate changes", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(7, acceptedAt))
		require.NoError(t, o.Deliver(7, deliveredAt, 0.10))
		frozen := *o.FrozenCommission()

		// Redelivery at another rate is rejected and the frozen value holds.
		err := o.Deliver(7, deliveredAt.Add(time.Hour), 0.25)

		require.Error(t, err)
		assert.Equal(t, frozen, *o.FrozenCommission())
	})

	t.Run("only the accepting courier may deliver", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(7, acceptedAt))

		err := o.Deliver(9, deliveredAt, 0.10)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.OnDelivery, o.Status())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("pending order cannot be delivered", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Deliver(7, deliveredAt, 0.10)

		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending unassigned order can be cancelled", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("accepted order cannot be cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(7, time.Now()))

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.OnDelivery, o.Status())
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(7, time.Now()))
		require.NoError(t, o.Deliver(7, time.Now(), 0.10))

		require.Error(t, o.Cancel())
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Rate(t *testing.T) {
	deliver := func(t *testing.T) *order.Order {
		t.Helper()
		o := newPendingOrder(t)
		require.NoError(t, o.Accept(7, time.Now()))
		require.NoError(t, o.Deliver(7, time.Now(), 0.10))
		return o
	}

	t.Run("delivered order can be rated once", func(t *testing.T) {
		o := deliver(t)

		err := o.Rate(5)

		require.NoError(t, err)
		assert.True(t, o.IsRated())
		require.NotNil(t, o.Rating())
		assert.Equal(t, 5, *o.Rating())
	})

	t.Run("second rating observes conflict", func(t *testing.T) {
		o := deliver(t)
		require.NoError(t, o.Rate(5))

		err := o.Rate(1)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 5, *o.Rating())
	})

	t.Run("rating outside bounds is rejected", func(t *testing.T) {
		o := deliver(t)

		require.ErrorIs(t, o.Rate(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, o.Rate(6), errs.ErrValueIsOutOfRange)
		assert.False(t, o.IsRated())
	})

	t.Run("undelivered order cannot be rated", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.Rate(4), errs.ErrValueIsInvalid)
	})
}

func TestOrder_StatsDate(t *testing.T) {
	t.Run("prefers delivery date", func(t *testing.T) {
		o := newPendingOrder(t)
		deliveredAt := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
		require.NoError(t, o.Accept(7, time.Now()))
		require.NoError(t, o.Deliver(7, deliveredAt, 0.10))

		assert.Equal(t, deliveredAt, o.StatsDate())
	})

	t.Run("falls back to creation date", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Equal(t, o.CreatedAt(), o.StatsDate())
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	courierID := int64(7)
	acceptedAt := createdAt.Add(30 * time.Minute)
	deliveredAt := createdAt.Add(90 * time.Minute)
	commission := int64(5000)
	rating := 5

	t.Run("restores delivered rated order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			"20240315103000", 42, "water_19l", "Drinking water 19L",
			25000, 2, 50000, createdAt,
			order.PackagingWithContainer, validDestination(t),
			order.DeliveryImmediate, "",
			order.Delivered, &courierID, &acceptedAt, &deliveredAt,
			&commission, true, &rating,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, commission, *o.FrozenCommission())
		assert.Equal(t, rating, *o.Rating())
	})

	t.Run("rejects pending order with courier assigned", func(t *testing.T) {
		_, err := order.RestoreOrder(
			"20240315103000", 42, "water_19l", "Drinking water 19L",
			25000, 2, 50000, createdAt,
			order.PackagingWithContainer, validDestination(t),
			order.DeliveryImmediate, "",
			order.Pending, &courierID, nil, nil, nil, false, nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to have a courier")
	})

	t.Run("rejects delivered order with no courier", func(t *testing.T) {
		_, err := order.RestoreOrder(
			"20240315103000", 42, "water_19l", "Drinking water 19L",
			25000, 2, 50000, createdAt,
			order.PackagingWithContainer, validDestination(t),
			order.DeliveryImmediate, "",
			order.Delivered, nil, nil, &deliveredAt, &commission, false, nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status to have no courier")
	})

	t.Run("rejects rated flag without rating value", func(t *testing.T) {
		_, err := order.RestoreOrder(
			"20240315103000", 42, "water_19l", "Drinking water 19L",
			25000, 2, 50000, createdAt,
			order.PackagingWithContainer, validDestination(t),
			order.DeliveryImmediate, "",
			order.Delivered, &courierID, &acceptedAt, &deliveredAt,
			&commission, true, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCommission(t *testing.T) {
	t.Run("rounds down to whole currency unit", func(t *testing.T) {
		assert.Equal(t, int64(4500), order.Commission(45000, 0.10))
		assert.Equal(t, int64(2), order.Commission(25, 0.10))
		assert.Equal(t, int64(0), order.Commission(9, 0.10))
	})
}
