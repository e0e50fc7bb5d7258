package persistence

import (
	"context"

	"gorm.io/gorm"

	appdist "github.com/warungin/backend/internal/application/distribution"
	"github.com/warungin/backend/internal/domain/catalog"
	"github.com/warungin/backend/internal/domain/distribution"
	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/partner"
)

// GormDistributionTransactionScope implements the orchestrator's
// TransactionScope using GORM transactions. Receiving a purchase order and
// completing a delivery both span several aggregates; one transaction keeps
// each atomic.
type GormDistributionTransactionScope struct {
	db *gorm.DB
}

// NewGormDistributionTransactionScope creates a new GormDistributionTransactionScope
func NewGormDistributionTransactionScope(db *gorm.DB) *GormDistributionTransactionScope {
	return &GormDistributionTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormDistributionTransactionScope) Execute(ctx context.Context, fn func(repos appdist.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&distributionTxRepositories{tx: tx})
	})
}

// distributionTxRepositories binds the orchestrator's repositories to one
// transaction.
type distributionTxRepositories struct {
	tx *gorm.DB
}

// PurchaseOrderRepo returns the purchase order repository scoped to the transaction
func (r *distributionTxRepositories) PurchaseOrderRepo() distribution.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

// OrderRepo returns the delivery order repository scoped to the transaction
func (r *distributionTxRepositories) OrderRepo() distribution.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// StockRepo returns the stock repository scoped to the transaction
func (r *distributionTxRepositories) StockRepo() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

// MovementRepo returns the movement repository scoped to the transaction
func (r *distributionTxRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// WarungRepo returns the warung repository scoped to the transaction
func (r *distributionTxRepositories) WarungRepo() partner.WarungRepository {
	return NewGormWarungRepository(r.tx)
}

// WarungProductRepo returns the outlet stock repository scoped to the transaction
func (r *distributionTxRepositories) WarungProductRepo() partner.WarungProductRepository {
	return NewGormWarungProductRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the transaction
func (r *distributionTxRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// WarehouseRepo returns the warehouse repository scoped to the transaction
func (r *distributionTxRepositories) WarehouseRepo() catalog.WarehouseRepository {
	return NewGormWarehouseRepository(r.tx)
}

var _ appdist.TransactionScope = (*GormDistributionTransactionScope)(nil)
var _ appdist.TransactionalRepositories = (*distributionTxRepositories)(nil)
