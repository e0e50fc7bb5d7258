package inventory

import (
	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
)

// Event types published by the stock ledger
const (
	EventStocksUpdated = "stocks.updated"
)

// StockUpdatedEvent is emitted after a movement commits. It carries the
// movement's shape so realtime consumers can refresh without re-querying.
type StockUpdatedEvent struct {
	shared.BaseDomainEvent
	MovementType    MovementType `json:"movement_type"`
	ProductID       uuid.UUID    `json:"product_id"`
	FromWarehouseID *uuid.UUID   `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *uuid.UUID   `json:"to_warehouse_id,omitempty"`
	Quantity        int64        `json:"quantity"`
}

// NewStockUpdatedEvent builds the broadcast payload for one movement
func NewStockUpdatedEvent(m *StockMovement) *StockUpdatedEvent {
	return &StockUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventStocksUpdated, "StockMovement", m.ID),
		MovementType:    m.Type,
		ProductID:       m.ProductID,
		FromWarehouseID: m.FromWarehouseID,
		ToWarehouseID:   m.ToWarehouseID,
		Quantity:        m.Quantity,
	}
}
