package distribution

import (
	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// Event types published by the distribution orchestrator
const (
	EventOrderCreated     = "order.created"
	EventOrderUpdated     = "order.updated"
	EventDeliveryAssigned = "delivery.assigned"
)

// OrderCreatedEvent announces a new delivery order. The finance side opens
// the matching receivable from this payload.
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string            `json:"order_number"`
	WarungID    uuid.UUID         `json:"warung_id"`
	WarehouseID uuid.UUID         `json:"warehouse_id"`
	TotalAmount valueobject.Money `json:"total_amount"`
}

// NewOrderCreatedEvent builds the creation announcement
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderCreated, "Order", o.ID),
		OrderNumber:     o.OrderNumber,
		WarungID:        o.WarungID,
		WarehouseID:     o.WarehouseID,
		TotalAmount:     o.TotalAmount,
	}
}

// OrderUpdatedEvent announces a lifecycle transition
type OrderUpdatedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string      `json:"order_number"`
	Status      OrderStatus `json:"status"`
}

// NewOrderUpdatedEvent builds the transition announcement
func NewOrderUpdatedEvent(o *Order) *OrderUpdatedEvent {
	return &OrderUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderUpdated, "Order", o.ID),
		OrderNumber:     o.OrderNumber,
		Status:          o.Status,
	}
}

// DeliveryAssignedEvent announces a courier assignment
type DeliveryAssignedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string    `json:"order_number"`
	KurirID     uuid.UUID `json:"kurir_id"`
}

// NewDeliveryAssignedEvent builds the assignment announcement
func NewDeliveryAssignedEvent(o *Order, kurirID uuid.UUID) *DeliveryAssignedEvent {
	return &DeliveryAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventDeliveryAssigned, "Order", o.ID),
		OrderNumber:     o.OrderNumber,
		KurirID:         kurirID,
	}
}
