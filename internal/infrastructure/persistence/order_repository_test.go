package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungin/backend/internal/domain/distribution"
	"github.com/warungin/backend/internal/domain/shared"
)

func newTestOrder(t *testing.T, orderNumber string, warungID uuid.UUID) *distribution.Order {
	t.Helper()

	order, err := distribution.NewOrder(orderNumber, warungID, uuid.New(), []distribution.OrderItemInput{
		{ProductID: uuid.New(), Quantity: 8, Price: money(t, "5000")},
	})
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}

func TestOrderRepositoryRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := newTestOrder(t, "ORD-20260829-0001", uuid.New())
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260829-0001", found.OrderNumber)
	assert.Equal(t, distribution.OrderStatusPending, found.Status)
	assert.Equal(t, "40000", found.TotalAmount.String())
	require.Len(t, found.Items, 1)
	assert.Nil(t, found.Task)
}

func TestOrderRepositoryPersistsDeliveryTask(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := newTestOrder(t, "ORD-20260829-0002", uuid.New())
	require.NoError(t, repo.Save(ctx, order))

	kurirID := uuid.New()
	require.NoError(t, order.AssignCourier(kurirID))
	order.ClearDomainEvents()
	require.NoError(t, repo.SaveWithLock(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, distribution.OrderStatusApproved, found.Status)
	require.NotNil(t, found.Task)
	assert.Equal(t, kurirID, found.Task.KurirID)
	assert.Equal(t, distribution.TaskStatusPending, found.Task.Status)

	// reassignment overwrites the task in place
	otherKurir := uuid.New()
	require.NoError(t, found.AssignCourier(otherKurir))
	found.ClearDomainEvents()
	require.NoError(t, repo.SaveWithLock(ctx, found))

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Task)
	assert.Equal(t, otherKurir, reloaded.Task.KurirID)

	var taskCount int64
	require.NoError(t, db.Table("delivery_tasks").Where("order_id = ?", order.ID).Count(&taskCount).Error)
	assert.Equal(t, int64(1), taskCount)
}

func TestOrderRepositorySaveWithLockStaleVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	order := newTestOrder(t, "ORD-20260829-0003", uuid.New())
	require.NoError(t, repo.Save(ctx, order))

	stale, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	require.NoError(t, order.AssignCourier(uuid.New()))
	order.ClearDomainEvents()
	require.NoError(t, repo.SaveWithLock(ctx, order))

	require.NoError(t, stale.Cancel())
	stale.ClearDomainEvents()
	err = repo.SaveWithLock(ctx, stale)
	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
}

func TestOrderRepositoryFindAllFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	warungA := uuid.New()
	warungB := uuid.New()

	first := newTestOrder(t, "ORD-20260829-0004", warungA)
	second := newTestOrder(t, "ORD-20260829-0005", warungA)
	third := newTestOrder(t, "ORD-20260829-0006", warungB)
	require.NoError(t, second.Cancel())
	second.ClearDomainEvents()

	for _, o := range []*distribution.Order{first, second, third} {
		require.NoError(t, repo.Save(ctx, o))
	}

	ofA, err := repo.FindAll(ctx, distribution.OrderFilter{WarungID: &warungA})
	require.NoError(t, err)
	assert.Len(t, ofA, 2)

	pending := distribution.OrderStatusPending
	pendingOfA, err := repo.FindAll(ctx, distribution.OrderFilter{WarungID: &warungA, Status: &pending})
	require.NoError(t, err)
	require.Len(t, pendingOfA, 1)
	assert.Equal(t, first.ID, pendingOfA[0].ID)

	count, err := repo.Count(ctx, distribution.OrderFilter{WarungID: &warungA})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	paged, err := repo.FindAll(ctx, distribution.OrderFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, paged, 2)
}

func TestNextOrderNumberSequencesWithinDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	ctx := context.Background()

	day := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	first, err := repo.NextOrderNumber(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260829-0001", first)

	require.NoError(t, repo.Save(ctx, newTestOrder(t, first, uuid.New())))

	second, err := repo.NextOrderNumber(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260829-0002", second)
}
