package distribution

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderFilter narrows delivery order listings
type OrderFilter struct {
	WarungID *uuid.UUID
	Status   *OrderStatus
	Page     int
	PageSize int
}

// PurchaseOrderRepository manages PurchaseOrder persistence
type PurchaseOrderRepository interface {
	// FindByID loads the order with its items
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	// FindByIDForUpdate loads the order with a row lock so the receive path
	// cannot race itself
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)
	// Save persists the order and its items
	Save(ctx context.Context, po *PurchaseOrder) error
	// SaveWithLock persists the order guarded by its optimistic version
	SaveWithLock(ctx context.Context, po *PurchaseOrder) error
	// NextPONumber issues the next PO-YYYYMMDD-NNNN number for the day
	NextPONumber(ctx context.Context, day time.Time) (string, error)
}

// OrderRepository manages delivery Order persistence
type OrderRepository interface {
	// FindByID loads the order with its items and delivery task
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByIDForUpdate loads the order with a row lock
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Order, error)
	// Save persists the order, its items and its task
	Save(ctx context.Context, order *Order) error
	// SaveWithLock persists the order guarded by its optimistic version
	SaveWithLock(ctx context.Context, order *Order) error
	// FindAll returns orders matching the filter, newest first
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)
	// Count returns the number of orders matching the filter
	Count(ctx context.Context, filter OrderFilter) (int64, error)
	// NextOrderNumber issues the next ORD-YYYYMMDD-NNNN number for the day
	NextOrderNumber(ctx context.Context, day time.Time) (string, error)
}
