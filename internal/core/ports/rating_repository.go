package ports

import (
	"context"
	"time"
)

// RatingRecord is the append-only log entry written when a customer rates a
// delivered order. It is a flat record rather than an aggregate: entries are
// never updated or deleted.
type RatingRecord struct {
	UserID    int64
	OrderID   string
	CourierID int64
	Value     int
	CreatedAt time.Time
}

// RatingRepository defines the persistence contract for the rating log.
type RatingRepository interface {
	// Add appends a rating entry to the log.
	Add(ctx context.Context, record RatingRecord) error

	// GetAllByCourier retrieves every rating left for the courier's
	// deliveries, newest first.
	GetAllByCourier(ctx context.Context, courierID int64) ([]RatingRecord, error)
}
