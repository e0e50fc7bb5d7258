package catalog

import (
	"time"

	"github.com/warungin/backend/internal/domain/shared"
)

// Warehouse is a physical storage location stock is tracked against
type Warehouse struct {
	shared.BaseAggregateRoot
	Name      string
	Address   string
	DeletedAt *time.Time
}

// NewWarehouse creates a warehouse
func NewWarehouse(name, address string) (*Warehouse, error) {
	if name == "" {
		return nil, shared.NewValidationError("warehouse name is required")
	}
	return &Warehouse{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           address,
	}, nil
}

// IsDeleted reports whether the warehouse has been soft-deleted
func (w *Warehouse) IsDeleted() bool {
	return w.DeletedAt != nil
}
