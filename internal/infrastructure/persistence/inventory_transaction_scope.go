package persistence

import (
	"context"

	"gorm.io/gorm"

	appinv "github.com/warungin/backend/internal/application/inventory"
	"github.com/warungin/backend/internal/domain/catalog"
	"github.com/warungin/backend/internal/domain/inventory"
)

// GormInventoryTransactionScope implements the stock ledger's
// TransactionScope using GORM transactions.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&inventoryTxRepositories{tx: tx})
	})
}

// inventoryTxRepositories binds the ledger repositories to one transaction.
type inventoryTxRepositories struct {
	tx *gorm.DB
}

// StockRepo returns the stock repository scoped to the transaction
func (r *inventoryTxRepositories) StockRepo() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

// MovementRepo returns the movement repository scoped to the transaction
func (r *inventoryTxRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// OpnameRepo returns the opname repository scoped to the transaction
func (r *inventoryTxRepositories) OpnameRepo() inventory.StockOpnameRepository {
	return NewGormStockOpnameRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the transaction
func (r *inventoryTxRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// WarehouseRepo returns the warehouse repository scoped to the transaction
func (r *inventoryTxRepositories) WarehouseRepo() catalog.WarehouseRepository {
	return NewGormWarehouseRepository(r.tx)
}

var _ appinv.TransactionScope = (*GormInventoryTransactionScope)(nil)
var _ appinv.TransactionalRepositories = (*inventoryTxRepositories)(nil)
