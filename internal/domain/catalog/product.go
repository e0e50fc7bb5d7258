package catalog

import (
	"time"

	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// Product is a sellable good distributed from warehouses to warungs.
// Master-data administration lives outside this service; the ledger only
// checks existence and reads the buy price for stock valuation.
type Product struct {
	shared.BaseAggregateRoot
	SKU       string
	Name      string
	Unit      string
	BuyPrice  valueobject.Money
	DeletedAt *time.Time
}

// NewProduct creates a product
func NewProduct(sku, name, unit string, buyPrice valueobject.Money) (*Product, error) {
	if sku == "" {
		return nil, shared.NewValidationError("product sku is required")
	}
	if name == "" {
		return nil, shared.NewValidationError("product name is required")
	}
	if buyPrice.IsNegative() {
		return nil, shared.NewValidationError("buy price cannot be negative")
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Name:              name,
		Unit:              unit,
		BuyPrice:          buyPrice,
	}, nil
}

// IsDeleted reports whether the product has been soft-deleted
func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}
