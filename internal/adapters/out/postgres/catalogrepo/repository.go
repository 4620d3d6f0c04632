package catalogrepo

import (
	"context"
	"errors"

	"shopbot/internal/core/ports"
	"shopbot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalog implements the catalog port over the products table. The
// catalog is read-only from the application's point of view; rows are
// maintained operationally.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a new GORM catalog.
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetProduct retrieves a product by id.
func (c *GormCatalog) GetProduct(ctx context.Context, id string) (ports.Product, error) {
	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("product", id)
		}
		return ports.Product{}, err
	}

	return toProduct(dto), nil
}

// GetAllProducts retrieves the whole catalog for menu rendering.
func (c *GormCatalog) GetAllProducts(ctx context.Context) ([]ports.Product, error) {
	var dtos []ProductDTO
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]ports.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, toProduct(dto))
	}

	return products, nil
}
