package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/infrastructure/persistence/models"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// Movements are append-only; there is no update or delete path.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Save appends a movement to the ledger
func (r *GormStockMovementRepository) Save(ctx context.Context, movement *inventory.StockMovement) error {
	model := models.StockMovementModelFromDomain(movement)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindHistory returns the newest movements matching the filter, capped by
// filter.Limit. A warehouse filter matches either side of the movement.
func (r *GormStockMovementRepository) FindHistory(ctx context.Context, filter inventory.MovementFilter) ([]inventory.StockMovement, error) {
	var rows []models.StockMovementModel
	query := r.db.WithContext(ctx).Model(&models.StockMovementModel{})

	if filter.WarehouseID != nil {
		query = query.Where("from_warehouse_id = ? OR to_warehouse_id = ?", *filter.WarehouseID, *filter.WarehouseID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	movements := make([]inventory.StockMovement, 0, len(rows))
	for i := range rows {
		movements = append(movements, *rows[i].ToDomain())
	}
	return movements, nil
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
