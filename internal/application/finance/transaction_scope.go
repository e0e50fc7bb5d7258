package finance

import (
	"context"

	"github.com/warungin/backend/internal/domain/finance"
	"github.com/warungin/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to the receivables
// repositories. A payment touches the receivable and the warung's debt
// position, so both repositories bind to one transaction.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the credit engine's
// repositories bound to the current transaction
type TransactionalRepositories interface {
	ReceivableRepo() finance.ReceivableRepository
	WarungRepo() partner.WarungRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests with mocked repositories.
type NoOpTransactionScope struct {
	Receivables finance.ReceivableRepository
	Warungs     partner.WarungRepository
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ReceivableRepo returns the receivable repository
func (s *NoOpTransactionScope) ReceivableRepo() finance.ReceivableRepository {
	return s.Receivables
}

// WarungRepo returns the warung repository
func (s *NoOpTransactionScope) WarungRepo() partner.WarungRepository {
	return s.Warungs
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
