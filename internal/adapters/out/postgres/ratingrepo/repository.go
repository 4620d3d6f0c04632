package ratingrepo

import (
	"context"

	"shopbot/internal/core/ports"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Add appends a rating entry to the log.
func (r *GormRatingRepository) Add(ctx context.Context, record ports.RatingRecord) error {
	dto := fromRecord(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByCourier retrieves every rating left for the courier's deliveries,
// newest first.
func (r *GormRatingRepository) GetAllByCourier(ctx context.Context, courierID int64) ([]ports.RatingRecord, error) {
	var dtos []RatingDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "courier_id = ?", courierID).Error
	if err != nil {
		return nil, err
	}

	records := make([]ports.RatingRecord, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toRecord(dto))
	}

	return records, nil
}
