package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/catalog"
	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// HistoryLimit caps movement history responses
const HistoryLimit = 200

// StockLedgerService owns every mutation of warehouse stock. All writes run
// inside one transaction scope, so a failed precondition leaves nothing
// behind, and the ledger invariant (balance equals the signed movement sum)
// holds after every commit.
type StockLedgerService struct {
	scope          TransactionScope
	stockRepo      inventory.StockRepository
	movementRepo   inventory.StockMovementRepository
	opnameRepo     inventory.StockOpnameRepository
	eventPublisher shared.EventPublisher
}

// NewStockLedgerService creates a new StockLedgerService. The standalone
// repositories serve the read paths; writes go through the scope.
func NewStockLedgerService(
	scope TransactionScope,
	stockRepo inventory.StockRepository,
	movementRepo inventory.StockMovementRepository,
	opnameRepo inventory.StockOpnameRepository,
) *StockLedgerService {
	return &StockLedgerService{
		scope:        scope,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		opnameRepo:   opnameRepo,
	}
}

// SetEventPublisher sets the publisher for post-commit notifications
func (s *StockLedgerService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// publishStockUpdated broadcasts a committed movement. Failures are the
// bus's problem, never the caller's.
func (s *StockLedgerService) publishStockUpdated(ctx context.Context, movement *inventory.StockMovement) {
	if s.eventPublisher == nil || movement == nil {
		return
	}
	_ = s.eventPublisher.Publish(ctx, inventory.NewStockUpdatedEvent(movement))
}

func checkProductExists(ctx context.Context, products catalog.ProductRepository, id uuid.UUID) error {
	if _, err := products.FindActiveByID(ctx, id); err != nil {
		return err
	}
	return nil
}

func checkWarehouseExists(ctx context.Context, warehouses catalog.WarehouseRepository, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := warehouses.FindActiveByID(ctx, *id); err != nil {
		return err
	}
	return nil
}

// RecordMovement applies one IN, OUT or TRANSFER entry to the ledger.
// ADJUSTMENT entries only ever come from PerformOpname, so the audit trail
// keeps its meaning.
func (s *StockLedgerService) RecordMovement(ctx context.Context, actorID uuid.UUID, req RecordMovementRequest) (*MovementResponse, error) {
	movementType := inventory.MovementType(req.Type)
	if !movementType.IsValid() {
		return nil, shared.NewValidationError("unknown movement type")
	}
	if movementType == inventory.MovementAdjustment {
		return nil, shared.NewValidationError("adjustments must go through stock opname")
	}

	var movement *inventory.StockMovement
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := checkProductExists(ctx, repos.ProductRepo(), req.ProductID); err != nil {
			return err
		}
		if err := checkWarehouseExists(ctx, repos.WarehouseRepo(), req.FromWarehouseID); err != nil {
			return err
		}
		if err := checkWarehouseExists(ctx, repos.WarehouseRepo(), req.ToWarehouseID); err != nil {
			return err
		}

		var err error
		switch movementType {
		case inventory.MovementIn:
			if req.ToWarehouseID == nil {
				return shared.NewValidationError("to_warehouse_id is required for IN movements")
			}
			movement, err = inventory.NewInboundMovement(req.ProductID, *req.ToWarehouseID, req.Quantity, actorID, req.Notes)
			if err != nil {
				return err
			}
			if req.ReferenceType != nil && req.ReferenceID != nil {
				movement.WithReference(*req.ReferenceType, *req.ReferenceID)
			}
			return ApplyInbound(ctx, repos.StockRepo(), repos.MovementRepo(), movement)

		case inventory.MovementOut:
			if req.FromWarehouseID == nil {
				return shared.NewValidationError("from_warehouse_id is required for OUT movements")
			}
			movement, err = inventory.NewOutboundMovement(req.ProductID, *req.FromWarehouseID, req.Quantity, actorID, req.Notes)
			if err != nil {
				return err
			}
			if req.ReferenceType != nil && req.ReferenceID != nil {
				movement.WithReference(*req.ReferenceType, *req.ReferenceID)
			}
			return ApplyOutbound(ctx, repos.StockRepo(), repos.MovementRepo(), movement)

		default: // TRANSFER
			if req.FromWarehouseID == nil || req.ToWarehouseID == nil {
				return shared.NewValidationError("both warehouse ids are required for TRANSFER movements")
			}
			movement, err = inventory.NewTransferMovement(req.ProductID, *req.FromWarehouseID, *req.ToWarehouseID, req.Quantity, actorID, req.Notes)
			if err != nil {
				return err
			}
			return ApplyTransfer(ctx, repos.StockRepo(), repos.MovementRepo(), movement)
		}
	})
	if err != nil {
		return nil, err
	}

	s.publishStockUpdated(ctx, movement)

	response := ToMovementResponse(movement)
	return &response, nil
}

// PerformOpname reconciles a physical count against the system quantity.
// The count is recorded even when nothing changed; a nonzero difference also
// writes the one legitimate kind of ADJUSTMENT movement, referencing the
// opname record.
func (s *StockLedgerService) PerformOpname(ctx context.Context, performerID uuid.UUID, req PerformOpnameRequest) (*OpnameResponse, error) {
	var (
		opname     *inventory.StockOpname
		adjustment *inventory.StockMovement
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := checkProductExists(ctx, repos.ProductRepo(), req.ProductID); err != nil {
			return err
		}
		if err := checkWarehouseExists(ctx, repos.WarehouseRepo(), &req.WarehouseID); err != nil {
			return err
		}

		stock, err := repos.StockRepo().GetOrCreateForUpdate(ctx, req.WarehouseID, req.ProductID)
		if err != nil {
			return err
		}

		opname, err = inventory.NewStockOpname(req.WarehouseID, req.ProductID, stock.Quantity, req.ActualQty, req.Reason, performerID)
		if err != nil {
			return err
		}
		if err := repos.OpnameRepo().Save(ctx, opname); err != nil {
			return err
		}

		if opname.Difference == 0 {
			return nil
		}

		adjustment, err = inventory.NewAdjustmentMovement(req.ProductID, req.WarehouseID, opname.Difference, opname.ID, performerID, req.Reason)
		if err != nil {
			return err
		}
		if err := stock.SetQuantity(req.ActualQty); err != nil {
			return err
		}
		if err := repos.StockRepo().Save(ctx, stock); err != nil {
			return err
		}
		return repos.MovementRepo().Save(ctx, adjustment)
	})
	if err != nil {
		return nil, err
	}

	s.publishStockUpdated(ctx, adjustment)

	response := ToOpnameResponse(opname)
	return &response, nil
}

// List returns ledger balances matching the filter
func (s *StockLedgerService) List(ctx context.Context, filter StockListFilter) ([]StockResponse, error) {
	stocks, err := s.stockRepo.List(ctx, inventory.StockFilter{
		WarehouseID:  filter.WarehouseID,
		ProductID:    filter.ProductID,
		LowStockOnly: filter.LowStock,
	})
	if err != nil {
		return nil, err
	}
	return ToStockResponses(stocks), nil
}

// FindOne returns the balance for one (warehouse, product) pair
func (s *StockLedgerService) FindOne(ctx context.Context, warehouseID, productID uuid.UUID) (*StockResponse, error) {
	stock, err := s.stockRepo.Find(ctx, warehouseID, productID)
	if err != nil {
		return nil, err
	}
	response := ToStockResponse(stock)
	return &response, nil
}

// History returns the newest movements matching the filter, capped at 200
func (s *StockLedgerService) History(ctx context.Context, filter MovementHistoryFilter) ([]MovementResponse, error) {
	domainFilter := inventory.MovementFilter{
		WarehouseID: filter.WarehouseID,
		ProductID:   filter.ProductID,
		From:        filter.From,
		To:          filter.To,
		Limit:       HistoryLimit,
	}
	if filter.Type != nil {
		movementType := inventory.MovementType(*filter.Type)
		domainFilter.Type = &movementType
	}
	movements, err := s.movementRepo.FindHistory(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(movements), nil
}

// LowStockAlerts returns every balance at or under its threshold
func (s *StockLedgerService) LowStockAlerts(ctx context.Context) ([]StockResponse, error) {
	stocks, err := s.stockRepo.List(ctx, inventory.StockFilter{LowStockOnly: true})
	if err != nil {
		return nil, err
	}
	return ToStockResponses(stocks), nil
}

// Valuation totals quantity times buy price across the ledger
func (s *StockLedgerService) Valuation(ctx context.Context) (*ValuationResponse, error) {
	entries, err := s.stockRepo.Valuation(ctx)
	if err != nil {
		return nil, err
	}
	total := valueobject.ZeroMoney()
	for _, entry := range entries {
		total = total.Add(entry.Subtotal)
	}
	return &ValuationResponse{Entries: entries, Total: total}, nil
}
