package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
)

// WarungRepository manages Warung persistence
type WarungRepository interface {
	shared.Repository[Warung]
	// FindActiveByID returns the warung only if it is not soft-deleted
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Warung, error)
	// FindByIDForUpdate loads the warung with a row lock so concurrent debt
	// mutations are serialized by the datastore
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Warung, error)
	// SaveWithLock persists the warung guarded by its optimistic version
	SaveWithLock(ctx context.Context, warung *Warung) error
	// FindAutoBlocked returns warungs whose block carries the sweep sentinel
	FindAutoBlocked(ctx context.Context) ([]Warung, error)
}

// WarungProductRepository manages outlet stock rows keyed by
// (warungID, productID)
type WarungProductRepository interface {
	// GetOrCreateForUpdate returns the row for the pair, creating a zero row
	// when absent, locked for the duration of the transaction
	GetOrCreateForUpdate(ctx context.Context, warungID, productID uuid.UUID) (*WarungProduct, error)
	// Save persists the outlet stock row
	Save(ctx context.Context, wp *WarungProduct) error
	// FindByWarung lists all stock rows for one outlet
	FindByWarung(ctx context.Context, warungID uuid.UUID) ([]WarungProduct, error)
}
