package inventory

import (
	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
)

// StockOpname is the audit record of one physical count. A zero difference
// is still recorded: the fact that someone counted matters for the trail.
type StockOpname struct {
	shared.BaseEntity
	WarehouseID uuid.UUID
	ProductID   uuid.UUID
	SystemQty   int64
	ActualQty   int64
	Difference  int64
	Reason      string
	PerformerID uuid.UUID
}

// NewStockOpname records a physical count against the system quantity
func NewStockOpname(warehouseID, productID uuid.UUID, systemQty, actualQty int64, reason string, performerID uuid.UUID) (*StockOpname, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewValidationError("warehouse id is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("product id is required")
	}
	if actualQty < 0 {
		return nil, shared.NewValidationError("counted quantity cannot be negative")
	}
	if performerID == uuid.Nil {
		return nil, shared.NewValidationError("performer is required")
	}
	return &StockOpname{
		BaseEntity:  shared.NewBaseEntity(),
		WarehouseID: warehouseID,
		ProductID:   productID,
		SystemQty:   systemQty,
		ActualQty:   actualQty,
		Difference:  actualQty - systemQty,
		Reason:      reason,
		PerformerID: performerID,
	}, nil
}
