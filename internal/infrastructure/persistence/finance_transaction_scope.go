package persistence

import (
	"context"

	"gorm.io/gorm"

	appfin "github.com/warungin/backend/internal/application/finance"
	"github.com/warungin/backend/internal/domain/finance"
	"github.com/warungin/backend/internal/domain/partner"
)

// GormFinanceTransactionScope implements the credit engine's
// TransactionScope using GORM transactions. A payment touches the
// receivable and the warung's debt position in one atomic step.
type GormFinanceTransactionScope struct {
	db *gorm.DB
}

// NewGormFinanceTransactionScope creates a new GormFinanceTransactionScope
func NewGormFinanceTransactionScope(db *gorm.DB) *GormFinanceTransactionScope {
	return &GormFinanceTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormFinanceTransactionScope) Execute(ctx context.Context, fn func(repos appfin.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&financeTxRepositories{tx: tx})
	})
}

// financeTxRepositories binds the credit engine's repositories to one
// transaction.
type financeTxRepositories struct {
	tx *gorm.DB
}

// ReceivableRepo returns the receivable repository scoped to the transaction
func (r *financeTxRepositories) ReceivableRepo() finance.ReceivableRepository {
	return NewGormReceivableRepository(r.tx)
}

// WarungRepo returns the warung repository scoped to the transaction
func (r *financeTxRepositories) WarungRepo() partner.WarungRepository {
	return NewGormWarungRepository(r.tx)
}

var _ appfin.TransactionScope = (*GormFinanceTransactionScope)(nil)
var _ appfin.TransactionalRepositories = (*financeTxRepositories)(nil)
