package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warungin/backend/internal/domain/partner"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/infrastructure/persistence/models"
)

// GormWarungRepository implements WarungRepository using GORM
type GormWarungRepository struct {
	db *gorm.DB
}

// NewGormWarungRepository creates a new GormWarungRepository
func NewGormWarungRepository(db *gorm.DB) *GormWarungRepository {
	return &GormWarungRepository{db: db}
}

// FindByID finds a warung by its ID
func (r *GormWarungRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Warung, error) {
	var model models.WarungModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByID finds a warung by ID, skipping soft-deleted rows
func (r *GormWarungRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*partner.Warung, error) {
	var model models.WarungModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate loads the warung holding a row lock until the
// surrounding transaction ends
func (r *GormWarungRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*partner.Warung, error) {
	var model models.WarungModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds warungs matching the filter
func (r *GormWarungRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Warung, error) {
	var rows []models.WarungModel
	query := r.db.WithContext(ctx).Model(&models.WarungModel{}).Where("deleted_at IS NULL")
	query = applySearch(query, filter.Search, "name", "owner_name", "phone")
	if blocked, ok := filter.Filters["is_blocked"]; ok {
		query = query.Where("is_blocked = ?", blocked)
	}
	query = applyListOptions(query, filter)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	warungs := make([]partner.Warung, 0, len(rows))
	for i := range rows {
		warungs = append(warungs, *rows[i].ToDomain())
	}
	return warungs, nil
}

// FindAutoBlocked returns warungs whose block carries the sweep sentinel
func (r *GormWarungRepository) FindAutoBlocked(ctx context.Context) ([]partner.Warung, error) {
	var rows []models.WarungModel
	if err := r.db.WithContext(ctx).
		Where("is_blocked = ? AND blocked_reason = ? AND deleted_at IS NULL", true, partner.AutoBlockReason).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	warungs := make([]partner.Warung, 0, len(rows))
	for i := range rows {
		warungs = append(warungs, *rows[i].ToDomain())
	}
	return warungs, nil
}

// Save creates or updates a warung
func (r *GormWarungRepository) Save(ctx context.Context, warung *partner.Warung) error {
	model := models.WarungModelFromDomain(warung)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock persists the mutable credit fields guarded by the optimistic
// version. The version is bumped here; a zero row count means another
// transaction won the race.
func (r *GormWarungRepository) SaveWithLock(ctx context.Context, warung *partner.Warung) error {
	result := r.db.WithContext(ctx).
		Model(&models.WarungModel{}).
		Where("id = ? AND version = ?", warung.ID, warung.Version).
		Updates(map[string]interface{}{
			"credit_limit":   warung.CreditLimit,
			"credit_days":    warung.CreditDays,
			"current_debt":   warung.CurrentDebt,
			"is_blocked":     warung.IsBlocked,
			"blocked_reason": warung.BlockedReason,
			"version":        warung.Version + 1,
			"updated_at":     warung.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	warung.Version++
	return nil
}

// Delete soft-deletes a warung
func (r *GormWarungRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.WarungModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts warungs matching the filter
func (r *GormWarungRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.WarungModel{}).Where("deleted_at IS NULL")
	query = applySearch(query, filter.Search, "name", "owner_name", "phone")
	if blocked, ok := filter.Filters["is_blocked"]; ok {
		query = query.Where("is_blocked = ?", blocked)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormWarungRepository implements WarungRepository
var _ partner.WarungRepository = (*GormWarungRepository)(nil)
