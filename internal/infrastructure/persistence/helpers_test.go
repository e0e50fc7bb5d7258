package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/warungin/backend/internal/domain/catalog"
	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/partner"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
	"github.com/warungin/backend/internal/infrastructure/persistence/models"
)

// setupTestDB opens a fresh in-memory SQLite database with all tables
// migrated. Row-locking paths are covered separately with sqlmock since
// SQLite has no SELECT FOR UPDATE.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func money(t *testing.T, s string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func seedStock(t *testing.T, db *gorm.DB, warehouseID, productID uuid.UUID, qty, minStock int64) *inventory.Stock {
	t.Helper()

	stock, err := inventory.NewStock(warehouseID, productID)
	require.NoError(t, err)
	stock.Quantity = qty
	stock.MinStock = minStock

	require.NoError(t, db.Create(models.StockModelFromDomain(stock)).Error)
	return stock
}

func seedProduct(t *testing.T, db *gorm.DB, sku, name, buyPrice string) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(sku, name, "pcs", money(t, buyPrice))
	require.NoError(t, err)

	require.NoError(t, db.Create(models.ProductModelFromDomain(product)).Error)
	return product
}

func seedWarung(t *testing.T, db *gorm.DB, name string, creditLimit string) *partner.Warung {
	t.Helper()

	warung, err := partner.NewWarung(name, "Ibu Siti", "0812000111", "Jl. Melati 1", money(t, creditLimit), 7)
	require.NoError(t, err)

	require.NoError(t, db.Create(models.WarungModelFromDomain(warung)).Error)
	return warung
}

// at returns a fixed timestamp offset by the given minutes, for rows whose
// ordering the tests assert on.
func at(minutes int) time.Time {
	base := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(minutes) * time.Minute)
}
