package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warungin/backend/internal/domain/distribution"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/infrastructure/persistence/models"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID loads the purchase order with its items
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*distribution.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate loads the purchase order holding a row lock so the
// receive path cannot race itself. Only the order row is locked; items are
// immutable after creation.
func (r *GormPurchaseOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*distribution.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("purchase_order_id = ?", id).
		Find(&model.Items).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the purchase order and its items. Items are append-only;
// existing rows are left untouched.
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, po *distribution.PurchaseOrder) error {
	model := models.PurchaseOrderModelFromDomain(po)
	items := model.Items
	model.Items = nil

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&items).Error
}

// SaveWithLock persists the order's mutable state guarded by the optimistic
// version. A zero row count means another transaction changed the order.
func (r *GormPurchaseOrderRepository) SaveWithLock(ctx context.Context, po *distribution.PurchaseOrder) error {
	result := r.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Where("id = ? AND version = ?", po.ID, po.Version).
		Updates(map[string]interface{}{
			"status":      po.Status,
			"received_at": po.ReceivedAt,
			"received_by": po.ReceivedBy,
			"version":     po.Version + 1,
			"updated_at":  po.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	po.Version++
	return nil
}

// NextPONumber issues the next PO-YYYYMMDD-NNNN number for the day
func (r *GormPurchaseOrderRepository) NextPONumber(ctx context.Context, day time.Time) (string, error) {
	return nextDocumentNumber(ctx, r.db, &models.PurchaseOrderModel{}, "po_number", "PO", day)
}

// Ensure GormPurchaseOrderRepository implements PurchaseOrderRepository
var _ distribution.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
