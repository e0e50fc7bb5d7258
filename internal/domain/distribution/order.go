package distribution

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// OrderStatus is the delivery order lifecycle state
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusInTransit OrderStatus = "IN_TRANSIT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is one of the defined values
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo checks the lifecycle edges
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusApproved || target == OrderStatusCancelled
	case OrderStatusApproved:
		return target == OrderStatusApproved || target == OrderStatusInTransit || target == OrderStatusCancelled
	case OrderStatusInTransit:
		return target == OrderStatusDelivered
	}
	return false
}

// OrderItem is one delivered line on an outbound order
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int64
	Price     valueobject.Money
}

// Subtotal returns quantity times unit price
func (i OrderItem) Subtotal() valueobject.Money {
	return i.Price.MultiplyByInt(i.Quantity)
}

// OrderItemInput is the caller-supplied shape of one order line
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int64
	Price     valueobject.Money
}

// Order is an outbound delivery order from a warehouse to a warung. It owns
// zero-or-one DeliveryTask and is the only writer of the task's lifecycle.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber string
	WarungID    uuid.UUID
	WarehouseID uuid.UUID
	Status      OrderStatus
	Items       []OrderItem
	TotalAmount valueobject.Money
	Task        *DeliveryTask
}

// NewOrder creates a pending delivery order, computing the total from the
// caller-supplied line prices
func NewOrder(orderNumber string, warungID, warehouseID uuid.UUID, items []OrderItemInput) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewValidationError("order number is required")
	}
	if warungID == uuid.Nil {
		return nil, shared.NewValidationError("warung id is required")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewValidationError("warehouse id is required")
	}
	if len(items) == 0 {
		return nil, shared.NewValidationError("order needs at least one item")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		WarungID:          warungID,
		WarehouseID:       warehouseID,
		Status:            OrderStatusPending,
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
		item := OrderItem{
			BaseEntity: shared.NewBaseEntity(),
			OrderID:    order.ID,
			ProductID:  input.ProductID,
			Quantity:   input.Quantity,
			Price:      input.Price,
		}
		order.Items = append(order.Items, item)
		order.TotalAmount = order.TotalAmount.Add(item.Subtotal())
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))
	return order, nil
}

func (o *Order) transitionTo(target OrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError(shared.ErrInvalidState.Code,
			fmt.Sprintf("order %s cannot move from %s to %s", o.OrderNumber, o.Status, target))
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// AssignCourier creates the delivery task, or reassigns it while the order
// has not left the warehouse, and advances the order to APPROVED
func (o *Order) AssignCourier(kurirID uuid.UUID) error {
	if kurirID == uuid.Nil {
		return shared.NewValidationError("kurir id is required")
	}
	if err := o.transitionTo(OrderStatusApproved); err != nil {
		return err
	}
	if o.Task == nil {
		o.Task = NewDeliveryTask(o.ID, kurirID)
	} else {
		o.Task.Reassign(kurirID)
	}
	o.AddDomainEvent(NewDeliveryAssignedEvent(o, kurirID))
	o.AddDomainEvent(NewOrderUpdatedEvent(o))
	return nil
}

// StartDelivery marks the goods as picked up and the order as IN_TRANSIT.
// A non-nil kurirID must match the assigned courier.
func (o *Order) StartDelivery(kurirID uuid.UUID) error {
	if o.Task == nil {
		return shared.NewValidationError("order has no delivery task assigned")
	}
	if kurirID != uuid.Nil && o.Task.KurirID != kurirID {
		return shared.NewValidationError("delivery task is assigned to a different courier")
	}
	if err := o.transitionTo(OrderStatusInTransit); err != nil {
		return err
	}
	o.Task.Start()
	o.AddDomainEvent(NewOrderUpdatedEvent(o))
	return nil
}

// CompleteDelivery marks the order DELIVERED exactly once. The caller
// credits the warung's own stock in the same transaction; a repeated call
// fails on the terminal-state check so the credit can never double-apply.
func (o *Order) CompleteDelivery(kurirID uuid.UUID, photoProof *string) error {
	if o.Task == nil {
		return shared.NewValidationError("order has no delivery task assigned")
	}
	if kurirID != uuid.Nil && o.Task.KurirID != kurirID {
		return shared.NewValidationError("delivery task is assigned to a different courier")
	}
	if err := o.transitionTo(OrderStatusDelivered); err != nil {
		return err
	}
	o.Task.Complete(photoProof)
	o.AddDomainEvent(NewOrderUpdatedEvent(o))
	return nil
}

// Cancel exits the lifecycle before the goods leave the warehouse
func (o *Order) Cancel() error {
	if err := o.transitionTo(OrderStatusCancelled); err != nil {
		return err
	}
	o.AddDomainEvent(NewOrderUpdatedEvent(o))
	return nil
}
