package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
)

// ProductRepository manages Product persistence
type ProductRepository interface {
	shared.Repository[Product]
	// FindActiveByID returns the product only if it is not soft-deleted
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// FindBySKU looks a product up by its unique SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)
}

// WarehouseRepository manages Warehouse persistence
type WarehouseRepository interface {
	shared.Repository[Warehouse]
	// FindActiveByID returns the warehouse only if it is not soft-deleted
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)
}
