package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
	"github.com/warungin/backend/internal/infrastructure/persistence/models"
)

// GormStockRepository implements StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Find returns the stock row for a (warehouse, product) pair
func (r *GormStockRepository) Find(ctx context.Context, warehouseID, productID uuid.UUID) (*inventory.Stock, error) {
	var model models.StockModel
	if err := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND product_id = ?", warehouseID, productID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// GetOrCreateForUpdate returns the stock row for a pair, creating a zero row
// when absent. The row comes back locked so balance checks cannot race a
// concurrent writer. ON CONFLICT DO NOTHING absorbs creation races.
func (r *GormStockRepository) GetOrCreateForUpdate(ctx context.Context, warehouseID, productID uuid.UUID) (*inventory.Stock, error) {
	stock, err := r.findForUpdate(ctx, warehouseID, productID)
	if err == nil {
		return stock, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	fresh, err := inventory.NewStock(warehouseID, productID)
	if err != nil {
		return nil, err
	}
	model := models.StockModelFromDomain(fresh)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warehouse_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(model).Error; err != nil {
		return nil, err
	}

	return r.findForUpdate(ctx, warehouseID, productID)
}

func (r *GormStockRepository) findForUpdate(ctx context.Context, warehouseID, productID uuid.UUID) (*inventory.Stock, error) {
	var model models.StockModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("warehouse_id = ? AND product_id = ?", warehouseID, productID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the stock balance guarded by the optimistic version.
// The version is bumped here; a zero row count means another transaction
// changed the row since it was loaded.
func (r *GormStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	result := r.db.WithContext(ctx).
		Model(&models.StockModel{}).
		Where("id = ? AND version = ?", stock.ID, stock.Version).
		Updates(map[string]interface{}{
			"quantity":   stock.Quantity,
			"min_stock":  stock.MinStock,
			"version":    stock.Version + 1,
			"updated_at": stock.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	stock.Version++
	return nil
}

// List returns stock rows matching the filter
func (r *GormStockRepository) List(ctx context.Context, filter inventory.StockFilter) ([]inventory.Stock, error) {
	var rows []models.StockModel
	query := r.db.WithContext(ctx).Model(&models.StockModel{})

	if filter.WarehouseID != nil {
		query = query.Where("warehouse_id = ?", *filter.WarehouseID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.LowStockOnly {
		query = query.Where("min_stock > 0 AND quantity <= min_stock")
	}

	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	stocks := make([]inventory.Stock, 0, len(rows))
	for i := range rows {
		stocks = append(stocks, *rows[i].ToDomain())
	}
	return stocks, nil
}

// Valuation aggregates quantity times product buy price per product.
// Soft-deleted products still count: their goods are physically on the shelf.
func (r *GormStockRepository) Valuation(ctx context.Context) ([]inventory.ValuationEntry, error) {
	type valuationRow struct {
		ProductID   uuid.UUID
		ProductName string
		Quantity    int64
		BuyPrice    valueobject.Money
	}

	var rows []valuationRow
	if err := r.db.WithContext(ctx).
		Model(&models.StockModel{}).
		Select("stocks.product_id AS product_id, products.name AS product_name, SUM(stocks.quantity) AS quantity, products.buy_price AS buy_price").
		Joins("JOIN products ON products.id = stocks.product_id").
		Group("stocks.product_id, products.name, products.buy_price").
		Order("products.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]inventory.ValuationEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, inventory.ValuationEntry{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			BuyPrice:    row.BuyPrice,
			Subtotal:    row.BuyPrice.MultiplyByInt(row.Quantity),
		})
	}
	return entries, nil
}

// Ensure GormStockRepository implements StockRepository
var _ inventory.StockRepository = (*GormStockRepository)(nil)
