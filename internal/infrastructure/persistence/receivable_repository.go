package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/warungin/backend/internal/domain/finance"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
	"github.com/warungin/backend/internal/infrastructure/persistence/models"
)

// GormReceivableRepository implements ReceivableRepository using GORM
type GormReceivableRepository struct {
	db *gorm.DB
}

// NewGormReceivableRepository creates a new GormReceivableRepository
func NewGormReceivableRepository(db *gorm.DB) *GormReceivableRepository {
	return &GormReceivableRepository{db: db}
}

// FindActiveByID returns the receivable with its payments, skipping
// soft-deleted rows
func (r *GormReceivableRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*finance.Receivable, error) {
	var model models.ReceivableModel
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate loads the receivable holding a row lock so concurrent
// payments serialize. Payments ride along unlocked; they are append-only.
func (r *GormReceivableRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*finance.Receivable, error) {
	var model models.ReceivableModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("receivable_id = ?", id).
		Order("created_at ASC").
		Find(&model.Payments).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save persists the receivable and appends any new payments
func (r *GormReceivableRepository) Save(ctx context.Context, receivable *finance.Receivable) error {
	model := models.ReceivableModelFromDomain(receivable)
	payments := model.Payments
	model.Payments = nil

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	return r.appendPayments(ctx, payments)
}

// SaveWithLock persists the settlement state guarded by the optimistic
// version, then appends any new payments. A zero row count means another
// transaction changed the receivable.
func (r *GormReceivableRepository) SaveWithLock(ctx context.Context, receivable *finance.Receivable) error {
	result := r.db.WithContext(ctx).
		Model(&models.ReceivableModel{}).
		Where("id = ? AND version = ?", receivable.ID, receivable.Version).
		Updates(map[string]interface{}{
			"paid_amount": receivable.PaidAmount,
			"balance":     receivable.Balance,
			"status":      receivable.Status,
			"version":     receivable.Version + 1,
			"updated_at":  receivable.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	receivable.Version++

	model := models.ReceivableModelFromDomain(receivable)
	return r.appendPayments(ctx, model.Payments)
}

// appendPayments inserts payment rows, silently skipping ones already
// persisted. Payments never change once written.
func (r *GormReceivableRepository) appendPayments(ctx context.Context, payments []models.PaymentModel) error {
	if len(payments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&payments).Error
}

// FindAll returns receivables matching the filter, newest first
func (r *GormReceivableRepository) FindAll(ctx context.Context, filter finance.ReceivableFilter) ([]finance.Receivable, error) {
	var rows []models.ReceivableModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ReceivableModel{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.
		Preload("Payments").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	receivables := make([]finance.Receivable, 0, len(rows))
	for i := range rows {
		receivables = append(receivables, *rows[i].ToDomain())
	}
	return receivables, nil
}

// Count returns the number of receivables matching the filter
func (r *GormReceivableRepository) Count(ctx context.Context, filter finance.ReceivableFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ReceivableModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormReceivableRepository) applyFilter(query *gorm.DB, filter finance.ReceivableFilter) *gorm.DB {
	query = query.Where("deleted_at IS NULL")
	if filter.WarungID != nil {
		query = query.Where("warung_id = ?", *filter.WarungID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	return query
}

// FindOutstanding returns every receivable with a positive balance
func (r *GormReceivableRepository) FindOutstanding(ctx context.Context) ([]finance.Receivable, error) {
	var rows []models.ReceivableModel
	if err := r.db.WithContext(ctx).
		Where("balance > 0 AND deleted_at IS NULL").
		Order("due_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	receivables := make([]finance.Receivable, 0, len(rows))
	for i := range rows {
		receivables = append(receivables, *rows[i].ToDomain())
	}
	return receivables, nil
}

// OutstandingByWarung sums positive balances for one outlet
func (r *GormReceivableRepository) OutstandingByWarung(ctx context.Context, warungID uuid.UUID) (valueobject.Money, error) {
	var result struct {
		Total valueobject.Money
	}
	if err := r.db.WithContext(ctx).
		Model(&models.ReceivableModel{}).
		Select("COALESCE(SUM(balance), 0) AS total").
		Where("warung_id = ? AND balance > 0 AND deleted_at IS NULL", warungID).
		Scan(&result).Error; err != nil {
		return valueobject.ZeroMoney(), err
	}
	return result.Total, nil
}

// MarkOverdue bulk-reclassifies past-due outstanding receivables and
// returns how many rows changed. Running it twice is a no-op: already
// OVERDUE rows no longer match the status predicate.
func (r *GormReceivableRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ReceivableModel{}).
		Where("status IN ? AND due_date < ? AND balance > 0 AND deleted_at IS NULL",
			[]finance.ReceivableStatus{finance.ReceivableStatusUnpaid, finance.ReceivableStatusPartial}, now).
		Updates(map[string]interface{}{
			"status":     finance.ReceivableStatusOverdue,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// OverdueWarungs returns, per outlet, the maximum days overdue across its
// outstanding OVERDUE receivables. The day arithmetic happens here rather
// than in SQL so the query stays portable across datastores.
func (r *GormReceivableRepository) OverdueWarungs(ctx context.Context, now time.Time) ([]finance.OverdueWarung, error) {
	type overdueRow struct {
		WarungID uuid.UUID
		DueDate  time.Time
	}

	var rows []overdueRow
	if err := r.db.WithContext(ctx).
		Model(&models.ReceivableModel{}).
		Select("warung_id, due_date").
		Where("status = ? AND balance > 0 AND deleted_at IS NULL", finance.ReceivableStatusOverdue).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	maxDays := make(map[uuid.UUID]int)
	order := make([]uuid.UUID, 0)
	for _, row := range rows {
		days := int(now.Sub(row.DueDate).Hours() / 24)
		if _, seen := maxDays[row.WarungID]; !seen {
			order = append(order, row.WarungID)
		}
		if days > maxDays[row.WarungID] {
			maxDays[row.WarungID] = days
		}
	}

	result := make([]finance.OverdueWarung, 0, len(order))
	for _, id := range order {
		result = append(result, finance.OverdueWarung{WarungID: id, MaxDaysOverdue: maxDays[id]})
	}
	return result, nil
}

// Ensure GormReceivableRepository implements ReceivableRepository
var _ finance.ReceivableRepository = (*GormReceivableRepository)(nil)
