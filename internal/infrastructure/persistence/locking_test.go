package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/shared"
)

// SQLite has no SELECT FOR UPDATE, so the row-locking query shapes are
// asserted here against a mocked postgres connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormStockRepository_GetOrCreateForUpdate_LocksExistingRow(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormStockRepository(gormDB)

	warehouseID := uuid.New()
	productID := uuid.New()
	stockID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "version", "warehouse_id", "product_id", "quantity", "min_stock"}).
		AddRow(stockID, 3, warehouseID, productID, 42, 5)

	mock.ExpectQuery(`SELECT \* FROM "stocks" WHERE warehouse_id = \$1 AND product_id = \$2 ORDER BY .* LIMIT .* FOR UPDATE`).
		WithArgs(warehouseID, productID, 1).
		WillReturnRows(rows)

	stock, err := repo.GetOrCreateForUpdate(context.Background(), warehouseID, productID)

	require.NoError(t, err)
	assert.Equal(t, stockID, stock.ID)
	assert.Equal(t, int64(42), stock.Quantity)
	assert.Equal(t, 3, stock.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormWarungRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("locks the row and skips deleted warungs", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormWarungRepository(gormDB)

		warungID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "version", "name", "credit_limit", "credit_days", "current_debt", "is_blocked"}).
			AddRow(warungID, 2, "Warung Bu Sari", "500000", 7, "120000", false)

		mock.ExpectQuery(`SELECT \* FROM "warungs" WHERE id = \$1 AND deleted_at IS NULL ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(warungID, 1).
			WillReturnRows(rows)

		warung, err := repo.FindByIDForUpdate(context.Background(), warungID)

		require.NoError(t, err)
		assert.Equal(t, "Warung Bu Sari", warung.Name)
		assert.Equal(t, "120000", warung.CurrentDebt.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormWarungRepository(gormDB)

		warungID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "warungs" WHERE id = \$1 AND deleted_at IS NULL ORDER BY .* LIMIT .* FOR UPDATE`).
			WithArgs(warungID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByIDForUpdate(context.Background(), warungID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormReceivableRepository_FindByIDForUpdate(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormReceivableRepository(gormDB)

	receivableID := uuid.New()
	warungID := uuid.New()

	receivableRows := sqlmock.NewRows([]string{"id", "version", "warung_id", "amount", "paid_amount", "balance", "due_date", "status"}).
		AddRow(receivableID, 1, warungID, "80000", "0", "80000", time.Now().AddDate(0, 0, 7), "UNPAID")

	mock.ExpectQuery(`SELECT \* FROM "receivables" WHERE id = \$1 AND deleted_at IS NULL ORDER BY .* LIMIT .* FOR UPDATE`).
		WithArgs(receivableID, 1).
		WillReturnRows(receivableRows)
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE receivable_id = \$1 ORDER BY created_at ASC`).
		WithArgs(receivableID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "receivable_id", "amount", "method"}))

	receivable, err := repo.FindByIDForUpdate(context.Background(), receivableID)

	require.NoError(t, err)
	assert.Equal(t, warungID, receivable.WarungID)
	assert.Equal(t, "80000", receivable.Balance.String())
	assert.Empty(t, receivable.Payments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStockRepository_SaveVersionGuard(t *testing.T) {
	gormDB, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormStockRepository(gormDB)

	stock, err := inventory.NewStock(uuid.New(), uuid.New())
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE "stocks" SET .* WHERE id = \$\d+ AND version = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Save(context.Background(), stock)

	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	assert.Equal(t, 1, stock.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}
