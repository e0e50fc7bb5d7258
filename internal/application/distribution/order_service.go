package distribution

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/distribution"
	"github.com/warungin/backend/internal/domain/shared"
)

// OrderService runs the outbound half of the orchestrator: delivery orders
// from warehouse to warung, courier assignment and delivery completion.
type OrderService struct {
	scope          TransactionScope
	orderRepo      distribution.OrderRepository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(scope TransactionScope, orderRepo distribution.OrderRepository) *OrderService {
	return &OrderService{
		scope:     scope,
		orderRepo: orderRepo,
	}
}

// SetEventPublisher sets the publisher for post-commit notifications
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvents broadcasts an order's collected events after commit.
// Errors are logged by the bus, not propagated.
func (s *OrderService) publishEvents(ctx context.Context, order *distribution.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	order.ClearDomainEvents()
}

// Create opens a delivery order for a warung. The warung must be unblocked
// and the order total must fit inside its remaining credit; the check and
// the debt increase run against the same locked warung row, so parallel
// orders cannot slip past the limit together.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	var order *distribution.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.WarehouseRepo().FindActiveByID(ctx, req.WarehouseID); err != nil {
			return err
		}
		items := make([]distribution.OrderItemInput, len(req.Items))
		for i, item := range req.Items {
			if _, err := repos.ProductRepo().FindActiveByID(ctx, item.ProductID); err != nil {
				return err
			}
			items[i] = distribution.OrderItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
		}

		warung, err := repos.WarungRepo().FindByIDForUpdate(ctx, req.WarungID)
		if err != nil {
			return err
		}

		orderNumber, err := repos.OrderRepo().NextOrderNumber(ctx, time.Now())
		if err != nil {
			return err
		}
		order, err = distribution.NewOrder(orderNumber, req.WarungID, req.WarehouseID, items)
		if err != nil {
			return err
		}
		if err := warung.CanTakeCredit(order.TotalAmount); err != nil {
			return err
		}
		if err := warung.IncreaseDebt(order.TotalAmount); err != nil {
			return err
		}
		if err := repos.WarungRepo().SaveWithLock(ctx, warung); err != nil {
			return err
		}

		return repos.OrderRepo().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// Get loads one delivery order
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// List returns delivery orders under the caller's visibility: an outlet
// only ever sees its own orders, whatever filter it asked for.
func (s *OrderService) List(ctx context.Context, role shared.Role, callerWarungID *uuid.UUID, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := distribution.OrderFilter{
		WarungID: filter.WarungID,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if role == shared.RoleOutlet {
		domainFilter.WarungID = callerWarungID
	}
	if filter.Status != nil {
		status := distribution.OrderStatus(*filter.Status)
		domainFilter.Status = &status
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToOrderResponses(orders), total, nil
}

// mutate loads the order under a row lock, applies fn and saves with the
// version guard. Shared by every lifecycle transition.
func (s *OrderService) mutate(ctx context.Context, orderID uuid.UUID, fn func(repos TransactionalRepositories, order *distribution.Order) error) (*distribution.Order, error) {
	var order *distribution.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := fn(repos, order); err != nil {
			return err
		}
		return repos.OrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// AssignKurir assigns or reassigns the courier and approves the order
func (s *OrderService) AssignKurir(ctx context.Context, orderID, kurirID uuid.UUID) (*OrderResponse, error) {
	order, err := s.mutate(ctx, orderID, func(_ TransactionalRepositories, order *distribution.Order) error {
		return order.AssignCourier(kurirID)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// StartDelivery marks the goods as picked up. kurirID may be uuid.Nil when
// a non-courier role drives the transition.
func (s *OrderService) StartDelivery(ctx context.Context, orderID, kurirID uuid.UUID) (*OrderResponse, error) {
	order, err := s.mutate(ctx, orderID, func(_ TransactionalRepositories, order *distribution.Order) error {
		return order.StartDelivery(kurirID)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// CompleteDelivery closes the order and credits the warung's own stock, one
// row per line item, inside the same transaction as the status flip. The
// terminal-state guard makes the credit impossible to apply twice.
func (s *OrderService) CompleteDelivery(ctx context.Context, orderID, kurirID uuid.UUID, photoProof *string) (*OrderResponse, error) {
	order, err := s.mutate(ctx, orderID, func(repos TransactionalRepositories, order *distribution.Order) error {
		if err := order.CompleteDelivery(kurirID, photoProof); err != nil {
			return err
		}
		for _, item := range order.Items {
			wp, err := repos.WarungProductRepo().GetOrCreateForUpdate(ctx, order.WarungID, item.ProductID)
			if err != nil {
				return err
			}
			if err := wp.CreditStock(item.Quantity); err != nil {
				return err
			}
			if err := repos.WarungProductRepo().Save(ctx, wp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// Cancel exits the lifecycle before dispatch
func (s *OrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.mutate(ctx, orderID, func(_ TransactionalRepositories, order *distribution.Order) error {
		return order.Cancel()
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}
