package inventory

import (
	"context"

	"github.com/warungin/backend/internal/domain/catalog"
	"github.com/warungin/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the stock ledger
// repositories. Everything executed inside a scope commits or rolls back as
// one unit, which is what keeps the precondition checks and the writes in
// the same atomic step.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the ledger repositories
// bound to the current transaction. The catalog repositories are read-only
// collaborators used for existence checks.
type TransactionalRepositories interface {
	// StockRepo returns the stock repository scoped to the transaction
	StockRepo() inventory.StockRepository
	// MovementRepo returns the movement repository scoped to the transaction
	MovementRepo() inventory.StockMovementRepository
	// OpnameRepo returns the opname repository scoped to the transaction
	OpnameRepo() inventory.StockOpnameRepository
	// ProductRepo returns the product repository scoped to the transaction
	ProductRepo() catalog.ProductRepository
	// WarehouseRepo returns the warehouse repository scoped to the transaction
	WarehouseRepo() catalog.WarehouseRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests with mocked repositories.
type NoOpTransactionScope struct {
	stockRepo     inventory.StockRepository
	movementRepo  inventory.StockMovementRepository
	opnameRepo    inventory.StockOpnameRepository
	productRepo   catalog.ProductRepository
	warehouseRepo catalog.WarehouseRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	stockRepo inventory.StockRepository,
	movementRepo inventory.StockMovementRepository,
	opnameRepo inventory.StockOpnameRepository,
	productRepo catalog.ProductRepository,
	warehouseRepo catalog.WarehouseRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		stockRepo:     stockRepo,
		movementRepo:  movementRepo,
		opnameRepo:    opnameRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockRepo returns the stock repository
func (s *NoOpTransactionScope) StockRepo() inventory.StockRepository {
	return s.stockRepo
}

// MovementRepo returns the movement repository
func (s *NoOpTransactionScope) MovementRepo() inventory.StockMovementRepository {
	return s.movementRepo
}

// OpnameRepo returns the opname repository
func (s *NoOpTransactionScope) OpnameRepo() inventory.StockOpnameRepository {
	return s.opnameRepo
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// WarehouseRepo returns the warehouse repository
func (s *NoOpTransactionScope) WarehouseRepo() catalog.WarehouseRepository {
	return s.warehouseRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
