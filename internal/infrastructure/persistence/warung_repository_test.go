package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warungin/backend/internal/domain/partner"
	"github.com/warungin/backend/internal/domain/shared"
)

func TestWarungRepositoryRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWarungRepository(db)
	ctx := context.Background()

	warung := seedWarung(t, db, "Warung Bu Siti", "500000")

	found, err := repo.FindActiveByID(ctx, warung.ID)
	require.NoError(t, err)
	assert.Equal(t, "Warung Bu Siti", found.Name)
	assert.Equal(t, "500000", found.CreditLimit.String())
	assert.Equal(t, 7, found.CreditDays)
	assert.True(t, found.CurrentDebt.IsZero())
	assert.False(t, found.IsBlocked)
}

func TestWarungRepositorySaveWithLock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWarungRepository(db)
	ctx := context.Background()

	warung := seedWarung(t, db, "Warung Pak Budi", "300000")

	loaded, err := repo.FindActiveByID(ctx, warung.ID)
	require.NoError(t, err)
	require.NoError(t, loaded.IncreaseDebt(money(t, "80000")))
	require.NoError(t, repo.SaveWithLock(ctx, loaded))
	assert.Equal(t, 2, loaded.Version)

	reloaded, err := repo.FindActiveByID(ctx, warung.ID)
	require.NoError(t, err)
	assert.Equal(t, "80000", reloaded.CurrentDebt.String())
	assert.Equal(t, 2, reloaded.Version)
}

func TestWarungRepositorySaveWithLockStaleVersion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWarungRepository(db)
	ctx := context.Background()

	warung := seedWarung(t, db, "Warung Sari", "300000")

	first, err := repo.FindActiveByID(ctx, warung.ID)
	require.NoError(t, err)
	second, err := repo.FindActiveByID(ctx, warung.ID)
	require.NoError(t, err)

	require.NoError(t, first.IncreaseDebt(money(t, "10000")))
	require.NoError(t, repo.SaveWithLock(ctx, first))

	require.NoError(t, second.IncreaseDebt(money(t, "20000")))
	err = repo.SaveWithLock(ctx, second)
	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
}

func TestWarungRepositoryFindAutoBlocked(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWarungRepository(db)
	ctx := context.Background()

	swept := seedWarung(t, db, "Warung Telat", "100000")
	manual := seedWarung(t, db, "Warung Nakal", "100000")
	clean := seedWarung(t, db, "Warung Lancar", "100000")

	sweptLoaded, err := repo.FindActiveByID(ctx, swept.ID)
	require.NoError(t, err)
	require.True(t, sweptLoaded.AutoBlock())
	require.NoError(t, repo.SaveWithLock(ctx, sweptLoaded))

	manualLoaded, err := repo.FindActiveByID(ctx, manual.ID)
	require.NoError(t, err)
	require.NoError(t, manualLoaded.Block("cek gudang dulu"))
	require.NoError(t, repo.SaveWithLock(ctx, manualLoaded))

	blocked, err := repo.FindAutoBlocked(ctx)
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, swept.ID, blocked[0].ID)
	assert.NotEqual(t, clean.ID, blocked[0].ID)
}

func TestWarungRepositorySoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWarungRepository(db)
	ctx := context.Background()

	warung := seedWarung(t, db, "Warung Tutup", "100000")

	require.NoError(t, repo.Delete(ctx, warung.ID))

	_, err := repo.FindActiveByID(ctx, warung.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// the row itself survives for audit
	still, err := repo.FindByID(ctx, warung.ID)
	require.NoError(t, err)
	assert.True(t, still.IsDeleted())

	err = repo.Delete(ctx, warung.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestWarungProductRepositorySaveAndFindByWarung(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWarungProductRepository(db)
	ctx := context.Background()

	warungID := uuid.New()

	first, err := partner.NewWarungProduct(warungID, uuid.New())
	require.NoError(t, err)
	require.NoError(t, first.CreditStock(12))

	second, err := partner.NewWarungProduct(warungID, uuid.New())
	require.NoError(t, err)

	other, err := partner.NewWarungProduct(uuid.New(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, other))

	rows, err := repo.FindByWarung(ctx, warungID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	quantities := map[uuid.UUID]int64{}
	for _, row := range rows {
		quantities[row.ProductID] = row.StockQty
	}
	assert.Equal(t, int64(12), quantities[first.ProductID])
	assert.Equal(t, int64(0), quantities[second.ProductID])
}
