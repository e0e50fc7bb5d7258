package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/warungin/backend/internal/domain/distribution"
	"github.com/warungin/backend/internal/domain/finance"
	"github.com/warungin/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderInvoicedHandler opens a receivable whenever a delivery order is
// created. The due date is the order date plus the warung's credit term.
// The warung's debt is already increased inside the order-creation
// transaction, so the handler only records the receivable.
type OrderInvoicedHandler struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewOrderInvoicedHandler creates a new OrderInvoicedHandler
func NewOrderInvoicedHandler(scope TransactionScope, logger *zap.Logger) *OrderInvoicedHandler {
	return &OrderInvoicedHandler{
		scope:  scope,
		logger: logger,
	}
}

// EventTypes returns the event types this handler consumes
func (h *OrderInvoicedHandler) EventTypes() []string {
	return []string{distribution.EventOrderCreated}
}

// Handle opens the receivable for one order.created event
func (h *OrderInvoicedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*distribution.OrderCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload for %s", event.EventType())
	}

	var dueDate time.Time
	err := h.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		warung, err := repos.WarungRepo().FindByID(ctx, created.WarungID)
		if err != nil {
			return err
		}

		orderID := created.AggregateID()
		dueDate = created.OccurredAt().AddDate(0, 0, warung.CreditDays)
		receivable, err := finance.NewReceivable(created.WarungID, &orderID, created.TotalAmount, dueDate)
		if err != nil {
			return err
		}
		return repos.ReceivableRepo().Save(ctx, receivable)
	})
	if err != nil {
		h.logger.Error("failed to open receivable for order",
			zap.String("order_number", created.OrderNumber),
			zap.String("warung_id", created.WarungID.String()),
			zap.Error(err))
		return err
	}

	h.logger.Info("receivable opened",
		zap.String("order_number", created.OrderNumber),
		zap.String("warung_id", created.WarungID.String()),
		zap.String("amount", created.TotalAmount.String()),
		zap.Time("due_date", dueDate))
	return nil
}

var _ shared.EventHandler = (*OrderInvoicedHandler)(nil)
