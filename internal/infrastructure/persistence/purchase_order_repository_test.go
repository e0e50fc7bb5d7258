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

func newTestPO(t *testing.T, poNumber string) *distribution.PurchaseOrder {
	t.Helper()

	po, err := distribution.NewPurchaseOrder(poNumber, uuid.New(), uuid.New(), []distribution.POItemInput{
		{ProductID: uuid.New(), Quantity: 10, Price: money(t, "3000")},
		{ProductID: uuid.New(), Quantity: 5, Price: money(t, "1500")},
	})
	require.NoError(t, err)
	return po
}

func TestPurchaseOrderRepositoryRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	po := newTestPO(t, "PO-20260829-0001")
	require.NoError(t, repo.Save(ctx, po))

	found, err := repo.FindByID(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, "PO-20260829-0001", found.PONumber)
	assert.Equal(t, distribution.POStatusDraft, found.Status)
	assert.Equal(t, "37500", found.TotalAmount.String())
	require.Len(t, found.Items, 2)
}

func TestPurchaseOrderRepositoryFindMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPurchaseOrderRepositoryReceiveWithLock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	po := newTestPO(t, "PO-20260829-0002")
	require.NoError(t, repo.Save(ctx, po))

	actorID := uuid.New()
	require.NoError(t, po.Receive(actorID))
	require.NoError(t, repo.SaveWithLock(ctx, po))
	assert.Equal(t, 2, po.Version)

	reloaded, err := repo.FindByID(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, distribution.POStatusReceived, reloaded.Status)
	require.NotNil(t, reloaded.ReceivedBy)
	assert.Equal(t, actorID, *reloaded.ReceivedBy)
	require.Len(t, reloaded.Items, 2)
}

func TestPurchaseOrderRepositorySaveWithLockStaleVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	po := newTestPO(t, "PO-20260829-0003")
	require.NoError(t, repo.Save(ctx, po))

	stale, err := repo.FindByID(ctx, po.ID)
	require.NoError(t, err)

	require.NoError(t, po.Receive(uuid.New()))
	require.NoError(t, repo.SaveWithLock(ctx, po))

	require.NoError(t, stale.Receive(uuid.New()))
	err = repo.SaveWithLock(ctx, stale)
	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
}

func TestNextPONumberSequencesWithinDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	ctx := context.Background()

	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	first, err := repo.NextPONumber(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "PO-20260829-0001", first)

	require.NoError(t, repo.Save(ctx, newTestPO(t, first)))

	second, err := repo.NextPONumber(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, "PO-20260829-0002", second)

	// a new day restarts the sequence
	nextDay, err := repo.NextPONumber(ctx, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "PO-20260830-0001", nextDay)
}
