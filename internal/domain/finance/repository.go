package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// ReceivableFilter narrows receivable listings
type ReceivableFilter struct {
	WarungID *uuid.UUID
	Status   *ReceivableStatus
	Page     int
	PageSize int
}

// OverdueWarung is one outlet's worst overdue position, as seen by the sweep
type OverdueWarung struct {
	WarungID       uuid.UUID
	MaxDaysOverdue int
}

// ReceivableRepository manages Receivable persistence
type ReceivableRepository interface {
	// FindActiveByID returns the receivable with its payments, skipping
	// soft-deleted rows
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Receivable, error)
	// FindByIDForUpdate loads the receivable with a row lock so concurrent
	// payments serialize
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Receivable, error)
	// Save persists the receivable and appends any new payments
	Save(ctx context.Context, receivable *Receivable) error
	// SaveWithLock persists the receivable guarded by its optimistic version
	SaveWithLock(ctx context.Context, receivable *Receivable) error
	// FindAll returns receivables matching the filter, newest first
	FindAll(ctx context.Context, filter ReceivableFilter) ([]Receivable, error)
	// Count returns the number of receivables matching the filter
	Count(ctx context.Context, filter ReceivableFilter) (int64, error)
	// FindOutstanding returns every receivable with a positive balance
	FindOutstanding(ctx context.Context) ([]Receivable, error)
	// OutstandingByWarung sums positive balances for one outlet
	OutstandingByWarung(ctx context.Context, warungID uuid.UUID) (valueobject.Money, error)
	// MarkOverdue bulk-reclassifies past-due outstanding receivables and
	// returns how many rows changed
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	// OverdueWarungs returns, per outlet, the maximum days overdue across
	// its outstanding OVERDUE receivables
	OverdueWarungs(ctx context.Context, now time.Time) ([]OverdueWarung, error)
}
