package distribution

import (
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// POStatus is the purchase order lifecycle state
type POStatus string

const (
	POStatusDraft    POStatus = "DRAFT"
	POStatusReceived POStatus = "RECEIVED"
)

// IsValid checks if the status is one of the defined values
func (s POStatus) IsValid() bool {
	return s == POStatusDraft || s == POStatusReceived
}

// PurchaseOrderItem is one supplier line on a purchase order
type PurchaseOrderItem struct {
	shared.BaseEntity
	PurchaseOrderID uuid.UUID
	ProductID       uuid.UUID
	Quantity        int64
	Price           valueobject.Money
}

// Subtotal returns quantity times unit price
func (i PurchaseOrderItem) Subtotal() valueobject.Money {
	return i.Price.MultiplyByInt(i.Quantity)
}

// POItemInput is the caller-supplied shape of one purchase order line
type POItemInput struct {
	ProductID uuid.UUID
	Quantity  int64
	Price     valueobject.Money
}

// PurchaseOrder is an inbound supplier order. Receiving it is the one-time
// event that credits warehouse stock; RECEIVED is terminal.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	PONumber    string
	SupplierID  uuid.UUID
	WarehouseID uuid.UUID
	Status      POStatus
	Items       []PurchaseOrderItem
	TotalAmount valueobject.Money
	ReceivedAt  *time.Time
	ReceivedBy  *uuid.UUID
}

// NewPurchaseOrder creates a draft purchase order with its line items
func NewPurchaseOrder(poNumber string, supplierID, warehouseID uuid.UUID, items []POItemInput) (*PurchaseOrder, error) {
	if poNumber == "" {
		return nil, shared.NewValidationError("po number is required")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewValidationError("supplier id is required")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewValidationError("warehouse id is required")
	}
	if len(items) == 0 {
		return nil, shared.NewValidationError("purchase order needs at least one item")
	}

	po := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PONumber:          poNumber,
		SupplierID:        supplierID,
		WarehouseID:       warehouseID,
		Status:            POStatusDraft,
		TotalAmount:       valueobject.ZeroMoney(),
	}

	for _, input := range items {
		if input.ProductID == uuid.Nil {
			return nil, shared.NewValidationError("item product id is required")
		}
		if input.Quantity <= 0 {
			return nil, shared.NewValidationError("item quantity must be positive")
		}
		if input.Price.IsNegative() {
			return nil, shared.NewValidationError("item price cannot be negative")
		}
		item := PurchaseOrderItem{
			BaseEntity:      shared.NewBaseEntity(),
			PurchaseOrderID: po.ID,
			ProductID:       input.ProductID,
			Quantity:        input.Quantity,
			Price:           input.Price,
		}
		po.Items = append(po.Items, item)
		po.TotalAmount = po.TotalAmount.Add(item.Subtotal())
	}

	return po, nil
}

// IsReceived reports whether the order reached its terminal state
func (po *PurchaseOrder) IsReceived() bool {
	return po.Status == POStatusReceived
}

// Receive flips the order to RECEIVED exactly once. The caller applies the
// matching inbound stock movements in the same transaction.
func (po *PurchaseOrder) Receive(actorID uuid.UUID) error {
	if po.IsReceived() {
		return shared.ErrAlreadyReceived
	}
	if actorID == uuid.Nil {
		return shared.NewValidationError("receiving actor is required")
	}
	now := time.Now()
	po.Status = POStatusReceived
	po.ReceivedAt = &now
	po.ReceivedBy = &actorID
	po.UpdatedAt = now
	return nil
}
