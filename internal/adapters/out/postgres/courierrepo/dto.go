// Package courierrepo provides data transfer objects and mapping functions
// for the courier directory.
package courierrepo

import (
	"time"

	"shopbot/internal/core/domain/model/courier"
)

// CourierDTO represents the database structure for persisting couriers.
type CourierDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false"`
	Handle      string    `gorm:"not null;uniqueIndex"`
	OnboardedAt time.Time `gorm:"not null"`
	OnboardedBy int64     `gorm:"not null"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:          aggregate.ID(),
		Handle:      aggregate.Handle(),
		OnboardedAt: aggregate.OnboardedAt(),
		OnboardedBy: aggregate.OnboardedBy(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(dto.ID, dto.Handle, dto.OnboardedAt, dto.OnboardedBy)
}
