// Package catalogrepo provides read access to the product catalog table.
package catalogrepo

import (
	"shopbot/internal/core/ports"
)

// ProductDTO represents one catalog row. A product carries either the plain
// price or the packaging price pair; the unused columns stay NULL.
type ProductDTO struct {
	ID                    string `gorm:"primaryKey"`
	Name                  string `gorm:"not null"`
	Price                 int64
	PriceWithContainer    *int64
	PriceWithoutContainer *int64
}

// TableName specifies the database table name for catalog entries.
func (ProductDTO) TableName() string {
	return "products"
}

func toProduct(dto ProductDTO) ports.Product {
	return ports.Product{
		ID:                    dto.ID,
		Name:                  dto.Name,
		Price:                 dto.Price,
		PriceWithContainer:    dto.PriceWithContainer,
		PriceWithoutContainer: dto.PriceWithoutContainer,
	}
}
