package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// WarungProduct is the outlet's own on-hand inventory for one product.
// It is credited exactly once per delivery, on completion. Decrements happen
// at the point of sale, outside this service.
type WarungProduct struct {
	shared.BaseAggregateRoot
	WarungID     uuid.UUID
	ProductID    uuid.UUID
	StockQty     int64
	SellingPrice valueobject.Money
}

// NewWarungProduct creates an empty outlet stock row. The selling price
// starts at zero; the outlet sets it later through its own tooling.
func NewWarungProduct(warungID, productID uuid.UUID) (*WarungProduct, error) {
	if warungID == uuid.Nil {
		return nil, shared.NewValidationError("warung id is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("product id is required")
	}
	return &WarungProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WarungID:          warungID,
		ProductID:         productID,
		StockQty:          0,
		SellingPrice:      valueobject.ZeroMoney(),
	}, nil
}

// CreditStock adds delivered quantity to the outlet's on-hand stock
func (wp *WarungProduct) CreditStock(quantity int64) error {
	if quantity <= 0 {
		return shared.NewValidationError("credited quantity must be positive")
	}
	wp.StockQty += quantity
	wp.UpdatedAt = time.Now()
	return nil
}
