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

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID loads the order with its items and delivery task
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*distribution.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Task").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate loads the order holding a row lock so lifecycle
// transitions serialize. Only the order row is locked; items are immutable
// and the task is written solely through this aggregate.
func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*distribution.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Find(&model.Items).Error; err != nil {
		return nil, err
	}
	var task models.DeliveryTaskModel
	err := r.db.WithContext(ctx).Where("order_id = ?", id).First(&task).Error
	switch {
	case err == nil:
		model.Task = &task
	case errors.Is(err, gorm.ErrRecordNotFound):
		// order not yet assigned
	default:
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the order, its items and its task. Items are append-only;
// the task upserts by primary key so reassignment overwrites in place.
func (r *GormOrderRepository) Save(ctx context.Context, order *distribution.Order) error {
	model := models.OrderModelFromDomain(order)
	items := model.Items
	task := model.Task
	model.Items = nil
	model.Task = nil

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&items).Error; err != nil {
			return err
		}
	}
	if task != nil {
		if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
			return err
		}
	}
	return nil
}

// SaveWithLock persists the order's mutable state guarded by the optimistic
// version, then upserts the delivery task. A zero row count on the order
// means another transaction changed it.
func (r *GormOrderRepository) SaveWithLock(ctx context.Context, order *distribution.Order) error {
	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND version = ?", order.ID, order.Version).
		Updates(map[string]interface{}{
			"status":     order.Status,
			"version":    order.Version + 1,
			"updated_at": order.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	order.Version++

	if order.Task != nil {
		task := &models.DeliveryTaskModel{}
		task.FromDomain(order.Task)
		if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns orders matching the filter, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context, filter distribution.OrderFilter) ([]distribution.Order, error) {
	var rows []models.OrderModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.
		Preload("Items").
		Preload("Task").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]distribution.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, *rows[i].ToDomain())
	}
	return orders, nil
}

// Count returns the number of orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter distribution.OrderFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter distribution.OrderFilter) *gorm.DB {
	if filter.WarungID != nil {
		query = query.Where("warung_id = ?", *filter.WarungID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	return query
}

// NextOrderNumber issues the next ORD-YYYYMMDD-NNNN number for the day
func (r *GormOrderRepository) NextOrderNumber(ctx context.Context, day time.Time) (string, error) {
	return nextDocumentNumber(ctx, r.db, &models.OrderModel{}, "order_number", "ORD", day)
}

// Ensure GormOrderRepository implements OrderRepository
var _ distribution.OrderRepository = (*GormOrderRepository)(nil)
