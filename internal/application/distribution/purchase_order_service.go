package distribution

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/application/inventory"
	"github.com/warungin/backend/internal/domain/distribution"
	domaininv "github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/shared"
)

// PurchaseOrderService runs the inbound half of the orchestrator: drafting
// supplier orders and receiving them into warehouse stock.
type PurchaseOrderService struct {
	scope          TransactionScope
	poRepo         distribution.PurchaseOrderRepository
	eventPublisher shared.EventPublisher
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(scope TransactionScope, poRepo distribution.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{
		scope:  scope,
		poRepo: poRepo,
	}
}

// SetEventPublisher sets the publisher for post-commit notifications
func (s *PurchaseOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create drafts a purchase order with a fresh date-scoped number
func (s *PurchaseOrderService) Create(ctx context.Context, actorID uuid.UUID, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	var po *distribution.PurchaseOrder
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.WarehouseRepo().FindActiveByID(ctx, req.WarehouseID); err != nil {
			return err
		}
		items := make([]distribution.POItemInput, len(req.Items))
		for i, item := range req.Items {
			if _, err := repos.ProductRepo().FindActiveByID(ctx, item.ProductID); err != nil {
				return err
			}
			items[i] = distribution.POItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
		}

		poNumber, err := repos.PurchaseOrderRepo().NextPONumber(ctx, time.Now())
		if err != nil {
			return err
		}
		po, err = distribution.NewPurchaseOrder(poNumber, req.SupplierID, req.WarehouseID, items)
		if err != nil {
			return err
		}
		return repos.PurchaseOrderRepo().Save(ctx, po)
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// Get loads one purchase order
func (s *PurchaseOrderService) Get(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.poRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(po)
	return &response, nil
}

// Receive books every line of the purchase order into warehouse stock and
// flips the order to RECEIVED, all in one transaction. A second call fails
// on the terminal-state guard before anything is written, so the stock
// increments apply exactly once.
func (s *PurchaseOrderService) Receive(ctx context.Context, actorID, poID uuid.UUID) (*PurchaseOrderResponse, error) {
	var (
		po        *distribution.PurchaseOrder
		movements []*domaininv.StockMovement
	)
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		po, err = repos.PurchaseOrderRepo().FindByIDForUpdate(ctx, poID)
		if err != nil {
			return err
		}
		if err := po.Receive(actorID); err != nil {
			return err
		}

		for _, item := range po.Items {
			movement, err := domaininv.NewInboundMovement(item.ProductID, po.WarehouseID, item.Quantity, actorID, "purchase order receipt")
			if err != nil {
				return err
			}
			movement.WithReference(domaininv.RefPurchaseOrder, po.ID)
			if err := inventory.ApplyInbound(ctx, repos.StockRepo(), repos.MovementRepo(), movement); err != nil {
				return err
			}
			movements = append(movements, movement)
		}

		return repos.PurchaseOrderRepo().SaveWithLock(ctx, po)
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		for _, movement := range movements {
			_ = s.eventPublisher.Publish(ctx, domaininv.NewStockUpdatedEvent(movement))
		}
	}

	response := ToPurchaseOrderResponse(po)
	return &response, nil
}
