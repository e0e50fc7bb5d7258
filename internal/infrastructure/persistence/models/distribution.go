package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/warungin/backend/internal/domain/distribution"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate.
type PurchaseOrderModel struct {
	AggregateModel
	PONumber    string                   `gorm:"type:varchar(30);not null;uniqueIndex"`
	SupplierID  uuid.UUID                `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID                `gorm:"type:uuid;not null;index"`
	Status      distribution.POStatus    `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	TotalAmount valueobject.Money        `gorm:"type:decimal(18,2);not null;default:0"`
	ReceivedAt  *time.Time               ``
	ReceivedBy  *uuid.UUID               `gorm:"type:uuid"`
	Items       []PurchaseOrderItemModel `gorm:"foreignKey:PurchaseOrderID"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItemModel is one supplier line on a purchase order.
type PurchaseOrderItemModel struct {
	BaseModel
	PurchaseOrderID uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID         `gorm:"type:uuid;not null"`
	Quantity        int64             `gorm:"not null"`
	Price           valueobject.Money `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItemModel) TableName() string {
	return "purchase_order_items"
}

// ToDomain converts the persistence model to a domain PurchaseOrder aggregate.
func (m *PurchaseOrderModel) ToDomain() *distribution.PurchaseOrder {
	po := &distribution.PurchaseOrder{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		PONumber:          m.PONumber,
		SupplierID:        m.SupplierID,
		WarehouseID:       m.WarehouseID,
		Status:            m.Status,
		TotalAmount:       m.TotalAmount,
		ReceivedAt:        m.ReceivedAt,
		ReceivedBy:        m.ReceivedBy,
	}
	for i := range m.Items {
		item := &m.Items[i]
		po.Items = append(po.Items, distribution.PurchaseOrderItem{
			BaseEntity:      item.BaseModel.ToDomain(),
			PurchaseOrderID: item.PurchaseOrderID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			Price:           item.Price,
		})
	}
	return po
}

// FromDomain populates the persistence model from a domain PurchaseOrder aggregate.
func (m *PurchaseOrderModel) FromDomain(po *distribution.PurchaseOrder) {
	m.FromDomainAggregateRoot(po.BaseAggregateRoot)
	m.PONumber = po.PONumber
	m.SupplierID = po.SupplierID
	m.WarehouseID = po.WarehouseID
	m.Status = po.Status
	m.TotalAmount = po.TotalAmount
	m.ReceivedAt = po.ReceivedAt
	m.ReceivedBy = po.ReceivedBy
	m.Items = nil
	for i := range po.Items {
		item := &po.Items[i]
		itemModel := PurchaseOrderItemModel{
			PurchaseOrderID: item.PurchaseOrderID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			Price:           item.Price,
		}
		itemModel.FromDomainBaseEntity(item.BaseEntity)
		m.Items = append(m.Items, itemModel)
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder aggregate.
func PurchaseOrderModelFromDomain(po *distribution.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(po)
	return m
}

// OrderModel is the persistence model for the delivery Order aggregate.
type OrderModel struct {
	AggregateModel
	OrderNumber string                   `gorm:"type:varchar(30);not null;uniqueIndex"`
	WarungID    uuid.UUID                `gorm:"type:uuid;not null;index"`
	WarehouseID uuid.UUID                `gorm:"type:uuid;not null;index"`
	Status      distribution.OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	TotalAmount valueobject.Money        `gorm:"type:decimal(18,2);not null;default:0"`
	Items       []OrderItemModel         `gorm:"foreignKey:OrderID"`
	Task        *DeliveryTaskModel       `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is one delivered line on an order.
type OrderItemModel struct {
	BaseModel
	OrderID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID         `gorm:"type:uuid;not null"`
	Quantity  int64             `gorm:"not null"`
	Price     valueobject.Money `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// DeliveryTaskModel is the courier assignment for one order.
// The order_id is unique: at most one task per order.
type DeliveryTaskModel struct {
	BaseModel
	OrderID       uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex"`
	KurirID       uuid.UUID               `gorm:"type:uuid;not null;index"`
	Status        distribution.TaskStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PickedUpAt    *time.Time              ``
	DeliveredAt   *time.Time              ``
	DeliveryPhoto *string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DeliveryTaskModel) TableName() string {
	return "delivery_tasks"
}

// ToDomain converts the persistence model to a domain DeliveryTask entity.
func (m *DeliveryTaskModel) ToDomain() *distribution.DeliveryTask {
	return &distribution.DeliveryTask{
		BaseEntity:    m.BaseModel.ToDomain(),
		OrderID:       m.OrderID,
		KurirID:       m.KurirID,
		Status:        m.Status,
		PickedUpAt:    m.PickedUpAt,
		DeliveredAt:   m.DeliveredAt,
		DeliveryPhoto: m.DeliveryPhoto,
	}
}

// FromDomain populates the persistence model from a domain DeliveryTask entity.
func (m *DeliveryTaskModel) FromDomain(t *distribution.DeliveryTask) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.OrderID = t.OrderID
	m.KurirID = t.KurirID
	m.Status = t.Status
	m.PickedUpAt = t.PickedUpAt
	m.DeliveredAt = t.DeliveredAt
	m.DeliveryPhoto = t.DeliveryPhoto
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *distribution.Order {
	order := &distribution.Order{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OrderNumber:       m.OrderNumber,
		WarungID:          m.WarungID,
		WarehouseID:       m.WarehouseID,
		Status:            m.Status,
		TotalAmount:       m.TotalAmount,
	}
	for i := range m.Items {
		item := &m.Items[i]
		order.Items = append(order.Items, distribution.OrderItem{
			BaseEntity: item.BaseModel.ToDomain(),
			OrderID:    item.OrderID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	if m.Task != nil {
		order.Task = m.Task.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *distribution.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.OrderNumber = o.OrderNumber
	m.WarungID = o.WarungID
	m.WarehouseID = o.WarehouseID
	m.Status = o.Status
	m.TotalAmount = o.TotalAmount
	m.Items = nil
	for i := range o.Items {
		item := &o.Items[i]
		itemModel := OrderItemModel{
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		itemModel.FromDomainBaseEntity(item.BaseEntity)
		m.Items = append(m.Items, itemModel)
	}
	m.Task = nil
	if o.Task != nil {
		task := &DeliveryTaskModel{}
		task.FromDomain(o.Task)
		m.Task = task
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order aggregate.
func OrderModelFromDomain(o *distribution.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
