package distribution

import (
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/distribution"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// POItemRequest is one line of a new purchase order
type POItemRequest struct {
	ProductID uuid.UUID         `json:"product_id" binding:"required"`
	Quantity  int64             `json:"quantity" binding:"required,gt=0"`
	Price     valueobject.Money `json:"price"`
}

// CreatePurchaseOrderRequest is the payload for POST /purchase-orders
type CreatePurchaseOrderRequest struct {
	SupplierID  uuid.UUID       `json:"supplier_id" binding:"required"`
	WarehouseID uuid.UUID       `json:"warehouse_id" binding:"required"`
	Items       []POItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemRequest is one line of a new delivery order
type OrderItemRequest struct {
	ProductID uuid.UUID         `json:"product_id" binding:"required"`
	Quantity  int64             `json:"quantity" binding:"required,gt=0"`
	Price     valueobject.Money `json:"price"`
}

// CreateOrderRequest is the payload for POST /orders
type CreateOrderRequest struct {
	WarungID    uuid.UUID          `json:"warung_id" binding:"required"`
	WarehouseID uuid.UUID          `json:"warehouse_id" binding:"required"`
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// AssignKurirRequest is the payload for PUT /delivery-orders/:id/assign-kurir
type AssignKurirRequest struct {
	KurirID uuid.UUID `json:"kurir_id" binding:"required"`
}

// CompleteDeliveryRequest is the payload for PUT /delivery-orders/:id/complete
type CompleteDeliveryRequest struct {
	PhotoProof *string `json:"photo_proof" binding:"omitempty,url"`
}

// OrderListFilter narrows GET /orders
type OrderListFilter struct {
	Status   *string    `form:"status" binding:"omitempty,oneof=PENDING APPROVED IN_TRANSIT DELIVERED CANCELLED"`
	WarungID *uuid.UUID `form:"warung_id"`
	Page     int        `form:"page,default=1" binding:"min=1"`
	PageSize int        `form:"page_size,default=20" binding:"min=1,max=100"`
}

// POItemResponse is one purchase order line in API responses
type POItemResponse struct {
	ID        uuid.UUID         `json:"id"`
	ProductID uuid.UUID         `json:"product_id"`
	Quantity  int64             `json:"quantity"`
	Price     valueobject.Money `json:"price"`
	Subtotal  valueobject.Money `json:"subtotal"`
}

// PurchaseOrderResponse is a purchase order in API responses
type PurchaseOrderResponse struct {
	ID          uuid.UUID             `json:"id"`
	PONumber    string                `json:"po_number"`
	SupplierID  uuid.UUID             `json:"supplier_id"`
	WarehouseID uuid.UUID             `json:"warehouse_id"`
	Status      distribution.POStatus `json:"status"`
	Items       []POItemResponse      `json:"items"`
	TotalAmount valueobject.Money     `json:"total_amount"`
	ReceivedAt  *time.Time            `json:"received_at,omitempty"`
	ReceivedBy  *uuid.UUID            `json:"received_by,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ToPurchaseOrderResponse maps a purchase order to its response shape
func ToPurchaseOrderResponse(po *distribution.PurchaseOrder) PurchaseOrderResponse {
	items := make([]POItemResponse, len(po.Items))
	for i, item := range po.Items {
		items[i] = POItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal(),
		}
	}
	return PurchaseOrderResponse{
		ID:          po.ID,
		PONumber:    po.PONumber,
		SupplierID:  po.SupplierID,
		WarehouseID: po.WarehouseID,
		Status:      po.Status,
		Items:       items,
		TotalAmount: po.TotalAmount,
		ReceivedAt:  po.ReceivedAt,
		ReceivedBy:  po.ReceivedBy,
		CreatedAt:   po.CreatedAt,
	}
}

// DeliveryTaskResponse is a courier assignment in API responses
type DeliveryTaskResponse struct {
	ID            uuid.UUID               `json:"id"`
	KurirID       uuid.UUID               `json:"kurir_id"`
	Status        distribution.TaskStatus `json:"status"`
	PickedUpAt    *time.Time              `json:"picked_up_at,omitempty"`
	DeliveredAt   *time.Time              `json:"delivered_at,omitempty"`
	DeliveryPhoto *string                 `json:"delivery_photo,omitempty"`
}

// OrderItemResponse is one delivery order line in API responses
type OrderItemResponse struct {
	ID        uuid.UUID         `json:"id"`
	ProductID uuid.UUID         `json:"product_id"`
	Quantity  int64             `json:"quantity"`
	Price     valueobject.Money `json:"price"`
	Subtotal  valueobject.Money `json:"subtotal"`
}

// OrderResponse is a delivery order in API responses
type OrderResponse struct {
	ID          uuid.UUID                `json:"id"`
	OrderNumber string                   `json:"order_number"`
	WarungID    uuid.UUID                `json:"warung_id"`
	WarehouseID uuid.UUID                `json:"warehouse_id"`
	Status      distribution.OrderStatus `json:"status"`
	Items       []OrderItemResponse      `json:"items"`
	TotalAmount valueobject.Money        `json:"total_amount"`
	Task        *DeliveryTaskResponse    `json:"task,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ToOrderResponse maps a delivery order to its response shape
func ToOrderResponse(o *distribution.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal(),
		}
	}
	response := OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		WarungID:    o.WarungID,
		WarehouseID: o.WarehouseID,
		Status:      o.Status,
		Items:       items,
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.Task != nil {
		response.Task = &DeliveryTaskResponse{
			ID:            o.Task.ID,
			KurirID:       o.Task.KurirID,
			Status:        o.Task.Status,
			PickedUpAt:    o.Task.PickedUpAt,
			DeliveredAt:   o.Task.DeliveredAt,
			DeliveryPhoto: o.Task.DeliveryPhoto,
		}
	}
	return response
}

// ToOrderResponses maps a slice of delivery orders
func ToOrderResponses(orders []distribution.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
