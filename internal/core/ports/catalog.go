package ports

import (
	"context"

	"shopbot/internal/core/domain/model/order"
	"shopbot/internal/pkg/errs"
)

// Product is a catalog entry. Prices are stored in minor currency units.
//
// A product either carries a single plain price or a packaging price pair,
// letting the customer choose between delivery with or without a container.
type Product struct {
	ID   string
	Name string

	// Price is the plain price, used when the product has no packaging
	// choice.
	Price int64

	// PriceWithContainer and PriceWithoutContainer are both set when the
	// customer must pick a packaging variant.
	PriceWithContainer    *int64
	PriceWithoutContainer *int64
}

// HasPackagingChoice reports whether the customer must pick a packaging
// variant for this product.
func (p Product) HasPackagingChoice() bool {
	return p.PriceWithContainer != nil && p.PriceWithoutContainer != nil
}

// PriceFor resolves the unit price for the chosen packaging.
func (p Product) PriceFor(packaging order.Packaging) (int64, error) {
	switch packaging {
	case order.PackagingPlain:
		if p.HasPackagingChoice() {
			return 0, errs.NewValueIsInvalidError("packaging")
		}
		return p.Price, nil
	case order.PackagingWithContainer:
		if p.PriceWithContainer == nil {
			return 0, errs.NewValueIsInvalidError("packaging")
		}
		return *p.PriceWithContainer, nil
	case order.PackagingWithoutContainer:
		if p.PriceWithoutContainer == nil {
			return 0, errs.NewValueIsInvalidError("packaging")
		}
		return *p.PriceWithoutContainer, nil
	default:
		return 0, errs.NewValueIsInvalidError("packaging")
	}
}

// Catalog defines read access to the product catalog.
type Catalog interface {
	// GetProduct retrieves a product by id. Returns
	// errs.ObjectNotFoundError for unknown ids.
	GetProduct(ctx context.Context, id string) (Product, error)

	// GetAllProducts retrieves the whole catalog for menu rendering.
	GetAllProducts(ctx context.Context) ([]Product, error)
}
