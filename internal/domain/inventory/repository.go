package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// StockFilter narrows stock listings
type StockFilter struct {
	WarehouseID  *uuid.UUID
	ProductID    *uuid.UUID
	LowStockOnly bool
}

// MovementFilter narrows movement history queries
type MovementFilter struct {
	WarehouseID *uuid.UUID
	ProductID   *uuid.UUID
	Type        *MovementType
	From        *time.Time
	To          *time.Time
	Limit       int
}

// ValuationEntry is one product's share of the stock valuation report
type ValuationEntry struct {
	ProductID   uuid.UUID         `json:"product_id"`
	ProductName string            `json:"product_name"`
	Quantity    int64             `json:"quantity"`
	BuyPrice    valueobject.Money `json:"buy_price"`
	Subtotal    valueobject.Money `json:"subtotal"`
}

// StockRepository manages ledger balances keyed by (warehouseID, productID)
type StockRepository interface {
	// Find returns the row for a pair, shared.ErrNotFound when absent
	Find(ctx context.Context, warehouseID, productID uuid.UUID) (*Stock, error)
	// GetOrCreateForUpdate returns the row for a pair, creating a zero row
	// when absent, locked until the surrounding transaction ends
	GetOrCreateForUpdate(ctx context.Context, warehouseID, productID uuid.UUID) (*Stock, error)
	// Save persists the row guarded by its optimistic version
	Save(ctx context.Context, stock *Stock) error
	// List returns rows matching the filter
	List(ctx context.Context, filter StockFilter) ([]Stock, error)
	// Valuation aggregates quantity times product buy price per product
	Valuation(ctx context.Context) ([]ValuationEntry, error)
}

// StockMovementRepository appends to and reads the movement log
type StockMovementRepository interface {
	Save(ctx context.Context, movement *StockMovement) error
	// FindHistory returns the newest movements matching the filter, capped
	// by filter.Limit
	FindHistory(ctx context.Context, filter MovementFilter) ([]StockMovement, error)
}

// StockOpnameRepository appends physical count records
type StockOpnameRepository interface {
	Save(ctx context.Context, opname *StockOpname) error
	FindByPair(ctx context.Context, warehouseID, productID uuid.UUID) ([]StockOpname, error)
}
