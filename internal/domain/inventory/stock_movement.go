package inventory

import (
	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
)

// MovementType classifies a stock ledger entry
type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT"
	MovementTransfer   MovementType = "TRANSFER"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// IsValid checks if the movement type is one of the defined values
func (t MovementType) IsValid() bool {
	switch t {
	case MovementIn, MovementOut, MovementTransfer, MovementAdjustment:
		return true
	}
	return false
}

// Reference types linking a movement to the document that caused it
const (
	RefPurchaseOrder = "PURCHASE_ORDER"
	RefStockOpname   = "STOCK_OPNAME"
	RefOrder         = "ORDER"
)

// StockMovement is an immutable audit record of one ledger entry. Quantity
// is always a positive magnitude; direction is carried by the warehouse
// sides: ToWarehouseID receives, FromWarehouseID gives.
type StockMovement struct {
	shared.BaseEntity
	Type            MovementType
	ProductID       uuid.UUID
	FromWarehouseID *uuid.UUID
	ToWarehouseID   *uuid.UUID
	Quantity        int64
	ReferenceType   *string
	ReferenceID     *uuid.UUID
	Notes           string
	ActorID         uuid.UUID
}

func newMovement(movementType MovementType, productID uuid.UUID, quantity int64, actorID uuid.UUID, notes string) (*StockMovement, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("product id is required")
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("movement quantity must be positive")
	}
	if actorID == uuid.Nil {
		return nil, shared.NewValidationError("actor is required")
	}
	return &StockMovement{
		BaseEntity: shared.NewBaseEntity(),
		Type:       movementType,
		ProductID:  productID,
		Quantity:   quantity,
		Notes:      notes,
		ActorID:    actorID,
	}, nil
}

// NewInboundMovement records goods arriving at a warehouse
func NewInboundMovement(productID, toWarehouseID uuid.UUID, quantity int64, actorID uuid.UUID, notes string) (*StockMovement, error) {
	if toWarehouseID == uuid.Nil {
		return nil, shared.NewValidationError("destination warehouse is required for IN movements")
	}
	m, err := newMovement(MovementIn, productID, quantity, actorID, notes)
	if err != nil {
		return nil, err
	}
	m.ToWarehouseID = &toWarehouseID
	return m, nil
}

// NewOutboundMovement records goods leaving a warehouse
func NewOutboundMovement(productID, fromWarehouseID uuid.UUID, quantity int64, actorID uuid.UUID, notes string) (*StockMovement, error) {
	if fromWarehouseID == uuid.Nil {
		return nil, shared.NewValidationError("source warehouse is required for OUT movements")
	}
	m, err := newMovement(MovementOut, productID, quantity, actorID, notes)
	if err != nil {
		return nil, err
	}
	m.FromWarehouseID = &fromWarehouseID
	return m, nil
}

// NewTransferMovement records goods moving between two warehouses in one
// ledger entry carrying both sides
func NewTransferMovement(productID, fromWarehouseID, toWarehouseID uuid.UUID, quantity int64, actorID uuid.UUID, notes string) (*StockMovement, error) {
	if fromWarehouseID == uuid.Nil || toWarehouseID == uuid.Nil {
		return nil, shared.NewValidationError("both warehouses are required for TRANSFER movements")
	}
	if fromWarehouseID == toWarehouseID {
		return nil, shared.ErrInvalidTransfer
	}
	m, err := newMovement(MovementTransfer, productID, quantity, actorID, notes)
	if err != nil {
		return nil, err
	}
	m.FromWarehouseID = &fromWarehouseID
	m.ToWarehouseID = &toWarehouseID
	return m, nil
}

// NewAdjustmentMovement records an opname correction. The magnitude is
// |difference|; a positive difference credits the warehouse, a negative one
// debits it, so the ledger sum still matches the adjusted balance.
func NewAdjustmentMovement(productID, warehouseID uuid.UUID, difference int64, opnameID uuid.UUID, actorID uuid.UUID, notes string) (*StockMovement, error) {
	if warehouseID == uuid.Nil {
		return nil, shared.NewValidationError("warehouse is required for ADJUSTMENT movements")
	}
	if difference == 0 {
		return nil, shared.NewValidationError("adjustment difference cannot be zero")
	}
	magnitude := difference
	if magnitude < 0 {
		magnitude = -magnitude
	}
	m, err := newMovement(MovementAdjustment, productID, magnitude, actorID, notes)
	if err != nil {
		return nil, err
	}
	if difference > 0 {
		m.ToWarehouseID = &warehouseID
	} else {
		m.FromWarehouseID = &warehouseID
	}
	refType := RefStockOpname
	m.ReferenceType = &refType
	m.ReferenceID = &opnameID
	return m, nil
}

// WithReference attaches the causing document to the movement
func (m *StockMovement) WithReference(refType string, refID uuid.UUID) *StockMovement {
	m.ReferenceType = &refType
	m.ReferenceID = &refID
	return m
}

// SignedEffect returns this movement's contribution to one warehouse's
// balance: positive when the warehouse receives, negative when it gives,
// zero when the movement does not touch it.
func (m *StockMovement) SignedEffect(warehouseID uuid.UUID) int64 {
	var effect int64
	if m.ToWarehouseID != nil && *m.ToWarehouseID == warehouseID {
		effect += m.Quantity
	}
	if m.FromWarehouseID != nil && *m.FromWarehouseID == warehouseID {
		effect -= m.Quantity
	}
	return effect
}
