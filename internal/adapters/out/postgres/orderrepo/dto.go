// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders are stored in a single table keyed by the
// (user_id, id) pair because order identifiers are derived from the creation
// timestamp and are only unique within the owning user.
package orderrepo

import (
	"time"

	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Enum-like value objects are stored as their wire-level strings so that the
// read models can select them without a mapping step.
type OrderDTO struct {
	UserID       int64      `gorm:"primaryKey;autoIncrement:false"`
	ID           string     `gorm:"primaryKey"`
	ProductID    string     `gorm:"not null"`
	ProductName  string     `gorm:"not null"`
	UnitPrice    int64      `gorm:"not null"`
	Quantity     int        `gorm:"not null"`
	Total        int64      `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"not null;index"`
	Packaging    string     `gorm:"not null"`
	Destination  AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	DeliveryTime string     `gorm:"not null"`
	Comment      string
	Status       string `gorm:"not null;index"`
	CourierID    *int64 `gorm:"index"`
	AcceptedAt   *time.Time
	DeliveredAt  *time.Time
	Commission   *int64
	Rated        bool `gorm:"not null"`
	Rating       *int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents an embedded delivery address. Either the coordinate
// pair or the text form is populated, mirroring the address value object.
type AddressDTO struct {
	Lat  *float64
	Lon  *float64
	Text string
}

func addressFromDomain(addr kernel.Address) AddressDTO {
	if addr.HasGeo() {
		lat, lon := addr.Geo().Lat(), addr.Geo().Lon()
		return AddressDTO{Lat: &lat, Lon: &lon}
	}
	return AddressDTO{Text: addr.Text()}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	if dto.Lat != nil && dto.Lon != nil {
		geo, err := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if err != nil {
			return kernel.Address{}, err
		}
		return kernel.NewAddress(&geo, "")
	}
	return kernel.NewAddress(nil, dto.Text)
}

// FromDomain converts an order domain aggregate to its database
// representation.
func FromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		UserID:       aggregate.UserID(),
		ID:           aggregate.ID(),
		ProductID:    aggregate.ProductID(),
		ProductName:  aggregate.ProductName(),
		UnitPrice:    aggregate.UnitPrice(),
		Quantity:     aggregate.Quantity(),
		Total:        aggregate.Total(),
		CreatedAt:    aggregate.CreatedAt(),
		Packaging:    aggregate.Packaging().String(),
		Destination:  addressFromDomain(aggregate.Destination()),
		DeliveryTime: aggregate.DeliveryTime().String(),
		Comment:      aggregate.Comment(),
		Status:       aggregate.Status().String(),
		CourierID:    aggregate.Courier(),
		AcceptedAt:   aggregate.AcceptedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Commission:   aggregate.FrozenCommission(),
		Rated:        aggregate.IsRated(),
		Rating:       aggregate.Rating(),
	}
}

// ToDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-validates cross-field consistency.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	packaging, err := order.PackagingFromString(dto.Packaging)
	if err != nil {
		return nil, err
	}

	deliveryTime, err := order.DeliveryTimeFromString(dto.DeliveryTime)
	if err != nil {
		return nil, err
	}

	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.ProductID,
		dto.ProductName,
		dto.UnitPrice,
		dto.Quantity,
		dto.Total,
		dto.CreatedAt,
		packaging,
		destination,
		deliveryTime,
		dto.Comment,
		status,
		dto.CourierID,
		dto.AcceptedAt,
		dto.DeliveredAt,
		dto.Commission,
		dto.Rated,
		dto.Rating,
	)
}
