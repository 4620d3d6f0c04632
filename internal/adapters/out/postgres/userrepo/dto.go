// Package userrepo provides data transfer objects and mapping functions for
// user persistence. The user row holds the profile and addresses; the cart
// lives in a child table keyed by (user_id, product_id). Orders are stored by
// the order repository and joined back in when the aggregate is loaded.
package userrepo

import (
	"time"

	"shopbot/internal/adapters/out/postgres/orderrepo"
	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user profiles.
type UserDTO struct {
	ID             int64      `gorm:"primaryKey;autoIncrement:false"`
	Name           string     `gorm:"not null"`
	Phone          string     `gorm:"not null"`
	HomeAddress    AddressDTO `gorm:"embedded;embeddedPrefix:home_"`
	CurrentAddress AddressDTO `gorm:"embedded;embeddedPrefix:current_"`
	RegisteredAt   time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO represents an embedded address. Either the coordinate pair or
// the text form is populated, mirroring the address value object.
type AddressDTO struct {
	Lat  *float64
	Lon  *float64
	Text string
}

// CartItemDTO represents one cart line. The cart is replaced wholesale on
// every user update, so rows carry no identity beyond the composite key.
type CartItemDTO struct {
	UserID    int64  `gorm:"primaryKey;autoIncrement:false"`
	ProductID string `gorm:"primaryKey"`
	Quantity  int    `gorm:"not null"`
}

// TableName specifies the database table name for cart entries.
func (CartItemDTO) TableName() string {
	return "cart_items"
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

func fromDomain(aggregate *user.User) (UserDTO, []CartItemDTO) {
	dto := UserDTO{
		ID:             aggregate.ID(),
		Name:           aggregate.Name(),
		Phone:          aggregate.Phone(),
		HomeAddress:    addressFromDomain(aggregate.HomeAddress()),
		CurrentAddress: addressFromDomain(aggregate.CurrentAddress()),
		RegisteredAt:   aggregate.RegisteredAt(),
	}

	cart := aggregate.Cart()
	items := make([]CartItemDTO, 0, len(cart))
	for productID, quantity := range cart {
		items = append(items, CartItemDTO{
			UserID:    aggregate.ID(),
			ProductID: productID,
			Quantity:  quantity,
		})
	}

	return dto, items
}

func toDomain(dto UserDTO, items []CartItemDTO, orderDTOs []orderrepo.OrderDTO) (*user.User, error) {
	home, err := addressToDomain(dto.HomeAddress)
	if err != nil {
		return nil, err
	}

	current, err := addressToDomain(dto.CurrentAddress)
	if err != nil {
		return nil, err
	}

	cart := make(map[string]int, len(items))
	for _, item := range items {
		cart[item.ProductID] = item.Quantity
	}

	orders := make([]*order.Order, 0, len(orderDTOs))
	for _, orderDTO := range orderDTOs {
		o, orderErr := orderrepo.ToDomain(orderDTO)
		if orderErr != nil {
			return nil, orderErr
		}
		orders = append(orders, o)
	}

	return user.RestoreUser(dto.ID, dto.Name, dto.Phone, home, current, dto.RegisteredAt, cart, orders)
}
