package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warungin/backend/internal/domain/partner"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/infrastructure/persistence/models"
)

// GormWarungProductRepository implements WarungProductRepository using GORM
type GormWarungProductRepository struct {
	db *gorm.DB
}

// NewGormWarungProductRepository creates a new GormWarungProductRepository
func NewGormWarungProductRepository(db *gorm.DB) *GormWarungProductRepository {
	return &GormWarungProductRepository{db: db}
}

// GetOrCreateForUpdate returns the outlet stock row for the pair, creating a
// zero row when absent. The returned row is locked until the surrounding
// transaction ends. ON CONFLICT DO NOTHING absorbs the race between two
// transactions creating the same pair.
func (r *GormWarungProductRepository) GetOrCreateForUpdate(ctx context.Context, warungID, productID uuid.UUID) (*partner.WarungProduct, error) {
	wp, err := r.findForUpdate(ctx, warungID, productID)
	if err == nil {
		return wp, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	fresh, err := partner.NewWarungProduct(warungID, productID)
	if err != nil {
		return nil, err
	}
	model := models.WarungProductModelFromDomain(fresh)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "warung_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(model).Error; err != nil {
		return nil, err
	}

	return r.findForUpdate(ctx, warungID, productID)
}

func (r *GormWarungProductRepository) findForUpdate(ctx context.Context, warungID, productID uuid.UUID) (*partner.WarungProduct, error) {
	var model models.WarungProductModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("warung_id = ? AND product_id = ?", warungID, productID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the outlet stock row
func (r *GormWarungProductRepository) Save(ctx context.Context, wp *partner.WarungProduct) error {
	model := models.WarungProductModelFromDomain(wp)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByWarung lists all stock rows for one outlet
func (r *GormWarungProductRepository) FindByWarung(ctx context.Context, warungID uuid.UUID) ([]partner.WarungProduct, error) {
	var rows []models.WarungProductModel
	if err := r.db.WithContext(ctx).
		Where("warung_id = ?", warungID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]partner.WarungProduct, 0, len(rows))
	for i := range rows {
		products = append(products, *rows[i].ToDomain())
	}
	return products, nil
}

// Ensure GormWarungProductRepository implements WarungProductRepository
var _ partner.WarungProductRepository = (*GormWarungProductRepository)(nil)
