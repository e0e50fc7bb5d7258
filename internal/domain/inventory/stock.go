package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
)

// Stock is the ledger balance for one (warehouse, product) pair. Quantity is
// mutated only through the stock ledger service so it always equals the
// signed sum of the movement history for the pair.
type Stock struct {
	shared.BaseAggregateRoot
	WarehouseID uuid.UUID
	ProductID   uuid.UUID
	Quantity    int64
	MinStock    int64
}

// NewStock creates a zero-quantity stock row for a pair
func NewStock(warehouseID, productID uuid.UUID) (*Stock, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewValidationError("warehouse id is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("product id is required")
	}
	return &Stock{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WarehouseID:       warehouseID,
		ProductID:         productID,
		Quantity:          0,
		MinStock:          0,
	}, nil
}

// Increase adds inbound quantity to the balance
func (s *Stock) Increase(quantity int64) error {
	if quantity <= 0 {
		return shared.NewValidationError("quantity must be positive")
	}
	s.Quantity += quantity
	s.UpdatedAt = time.Now()
	return nil
}

// Decrease removes outbound quantity, failing when the balance is short.
// The caller must hold a row lock so the sufficiency check is not racing a
// concurrent writer.
func (s *Stock) Decrease(quantity int64) error {
	if quantity <= 0 {
		return shared.NewValidationError("quantity must be positive")
	}
	if s.Quantity < quantity {
		return shared.NewInsufficientStockError(s.Quantity, quantity)
	}
	s.Quantity -= quantity
	s.UpdatedAt = time.Now()
	return nil
}

// SetQuantity overwrites the balance with a physically counted quantity.
// Only the opname path may call this; the accompanying ADJUSTMENT movement
// keeps the ledger sum intact.
func (s *Stock) SetQuantity(actualQty int64) error {
	if actualQty < 0 {
		return shared.NewValidationError("counted quantity cannot be negative")
	}
	s.Quantity = actualQty
	s.UpdatedAt = time.Now()
	return nil
}

// SetMinStock updates the low-stock alert threshold
func (s *Stock) SetMinStock(minStock int64) error {
	if minStock < 0 {
		return shared.NewValidationError("min stock cannot be negative")
	}
	s.MinStock = minStock
	s.UpdatedAt = time.Now()
	return nil
}

// IsLowStock reports whether the balance sits at or under the threshold
func (s *Stock) IsLowStock() bool {
	return s.MinStock > 0 && s.Quantity <= s.MinStock
}
