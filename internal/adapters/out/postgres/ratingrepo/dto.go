// Package ratingrepo persists the append-only rating log.
package ratingrepo

import (
	"time"

	"shopbot/internal/core/ports"
)

// RatingDTO represents one row of the rating log. Rows are written once and
// never updated, so the table carries a plain surrogate key.
type RatingDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"not null"`
	OrderID   string    `gorm:"not null"`
	CourierID int64     `gorm:"not null;index"`
	Value     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for rating entries.
func (RatingDTO) TableName() string {
	return "ratings"
}

func fromRecord(record ports.RatingRecord) RatingDTO {
	return RatingDTO{
		UserID:    record.UserID,
		OrderID:   record.OrderID,
		CourierID: record.CourierID,
		Value:     record.Value,
		CreatedAt: record.CreatedAt,
	}
}

func toRecord(dto RatingDTO) ports.RatingRecord {
	return ports.RatingRecord{
		UserID:    dto.UserID,
		OrderID:   dto.OrderID,
		CourierID: dto.CourierID,
		Value:     dto.Value,
		CreatedAt: dto.CreatedAt,
	}
}
