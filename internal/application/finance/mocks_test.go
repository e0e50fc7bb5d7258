package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/warungin/backend/internal/domain/finance"
	"github.com/warungin/backend/internal/domain/partner"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

type MockReceivableRepository struct {
	mock.Mock
}

func (m *MockReceivableRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*finance.Receivable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*finance.Receivable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) Save(ctx context.Context, receivable *finance.Receivable) error {
	args := m.Called(ctx, receivable)
	return args.Error(0)
}

func (m *MockReceivableRepository) SaveWithLock(ctx context.Context, receivable *finance.Receivable) error {
	args := m.Called(ctx, receivable)
	return args.Error(0)
}

func (m *MockReceivableRepository) FindAll(ctx context.Context, filter finance.ReceivableFilter) ([]finance.Receivable, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) Count(ctx context.Context, filter finance.ReceivableFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReceivableRepository) FindOutstanding(ctx context.Context) ([]finance.Receivable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) OutstandingByWarung(ctx context.Context, warungID uuid.UUID) (valueobject.Money, error) {
	args := m.Called(ctx, warungID)
	return args.Get(0).(valueobject.Money), args.Error(1)
}

func (m *MockReceivableRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReceivableRepository) OverdueWarungs(ctx context.Context, now time.Time) ([]finance.OverdueWarung, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.OverdueWarung), args.Error(1)
}

type MockWarungRepository struct {
	mock.Mock
}

func (m *MockWarungRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Warung, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Warung), args.Error(1)
}

func (m *MockWarungRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Warung, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Warung), args.Error(1)
}

func (m *MockWarungRepository) Save(ctx context.Context, warung *partner.Warung) error {
	args := m.Called(ctx, warung)
	return args.Error(0)
}

func (m *MockWarungRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWarungRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWarungRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*partner.Warung, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Warung), args.Error(1)
}

func (m *MockWarungRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*partner.Warung, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Warung), args.Error(1)
}

func (m *MockWarungRepository) SaveWithLock(ctx context.Context, warung *partner.Warung) error {
	args := m.Called(ctx, warung)
	return args.Error(0)
}

func (m *MockWarungRepository) FindAutoBlocked(ctx context.Context) ([]partner.Warung, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Warung), args.Error(1)
}
