package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/core/domain/model/user"
	"shopbot/internal/core/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(t *testing.T, id int64) *user.User {
	t.Helper()

	u, err := user.NewUser(id, "Alice", "+79990001122", testAddress(t), testAddress(t),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return u
}

func newTestOrder(t *testing.T, userID int64, createdAt time.Time) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		userID, "flowers-7", "Peony bouquet", 25000, 2, createdAt,
		order.PackagingPlain, testAddress(t), order.DeliveryImmediate, "",
	)
	require.NoError(t, err)
	return o
}

func plainProduct() ports.Product {
	return ports.Product{ID: "flowers-7", Name: "Peony bouquet", Price: 25000}
}
