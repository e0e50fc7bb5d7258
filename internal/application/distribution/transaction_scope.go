package distribution

import (
	"context"

	"github.com/warungin/backend/internal/domain/catalog"
	"github.com/warungin/backend/internal/domain/distribution"
	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to the repositories the
// orchestrator touches. Receiving a purchase order and completing a delivery
// both span several aggregates; the scope keeps each one atomic.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the orchestrator's
// repositories bound to the current transaction
type TransactionalRepositories interface {
	PurchaseOrderRepo() distribution.PurchaseOrderRepository
	OrderRepo() distribution.OrderRepository
	StockRepo() inventory.StockRepository
	MovementRepo() inventory.StockMovementRepository
	WarungRepo() partner.WarungRepository
	WarungProductRepo() partner.WarungProductRepository
	ProductRepo() catalog.ProductRepository
	WarehouseRepo() catalog.WarehouseRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests with mocked repositories.
type NoOpTransactionScope struct {
	PORepo     distribution.PurchaseOrderRepository
	Orders     distribution.OrderRepository
	Stocks     inventory.StockRepository
	Movements  inventory.StockMovementRepository
	Warungs    partner.WarungRepository
	WProducts  partner.WarungProductRepository
	Products   catalog.ProductRepository
	Warehouses catalog.WarehouseRepository
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PurchaseOrderRepo returns the purchase order repository
func (s *NoOpTransactionScope) PurchaseOrderRepo() distribution.PurchaseOrderRepository {
	return s.PORepo
}

// OrderRepo returns the delivery order repository
func (s *NoOpTransactionScope) OrderRepo() distribution.OrderRepository {
	return s.Orders
}

// StockRepo returns the stock repository
func (s *NoOpTransactionScope) StockRepo() inventory.StockRepository {
	return s.Stocks
}

// MovementRepo returns the movement repository
func (s *NoOpTransactionScope) MovementRepo() inventory.StockMovementRepository {
	return s.Movements
}

// WarungRepo returns the warung repository
func (s *NoOpTransactionScope) WarungRepo() partner.WarungRepository {
	return s.Warungs
}

// WarungProductRepo returns the outlet stock repository
func (s *NoOpTransactionScope) WarungProductRepo() partner.WarungProductRepository {
	return s.WProducts
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.Products
}

// WarehouseRepo returns the warehouse repository
func (s *NoOpTransactionScope) WarehouseRepo() catalog.WarehouseRepository {
	return s.Warehouses
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
