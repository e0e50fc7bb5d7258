package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/infrastructure/persistence/models"
)

// GormStockOpnameRepository implements StockOpnameRepository using GORM.
// Opname records are append-only audit rows.
type GormStockOpnameRepository struct {
	db *gorm.DB
}

// NewGormStockOpnameRepository creates a new GormStockOpnameRepository
func NewGormStockOpnameRepository(db *gorm.DB) *GormStockOpnameRepository {
	return &GormStockOpnameRepository{db: db}
}

// Save appends a physical count record
func (r *GormStockOpnameRepository) Save(ctx context.Context, opname *inventory.StockOpname) error {
	model := models.StockOpnameModelFromDomain(opname)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByPair lists count records for a (warehouse, product) pair, newest first
func (r *GormStockOpnameRepository) FindByPair(ctx context.Context, warehouseID, productID uuid.UUID) ([]inventory.StockOpname, error) {
	var rows []models.StockOpnameModel
	if err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND product_id = ?", warehouseID, productID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	opnames := make([]inventory.StockOpname, 0, len(rows))
	for i := range rows {
		opnames = append(opnames, *rows[i].ToDomain())
	}
	return opnames, nil
}

// Ensure GormStockOpnameRepository implements StockOpnameRepository
var _ inventory.StockOpnameRepository = (*GormStockOpnameRepository)(nil)
