package distribution

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/warungin/backend/internal/domain/distribution"
	domaininv "github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

type poFixture struct {
	service    *PurchaseOrderService
	poRepo     *MockPurchaseOrderRepository
	stocks     *MockStockRepository
	movements  *MockMovementRepository
	products   *MockProductRepository
	warehouses *MockWarehouseRepository
	publisher  *MockEventPublisher
}

func newPOFixture() *poFixture {
	f := &poFixture{
		poRepo:     new(MockPurchaseOrderRepository),
		stocks:     new(MockStockRepository),
		movements:  new(MockMovementRepository),
		products:   new(MockProductRepository),
		warehouses: new(MockWarehouseRepository),
		publisher:  new(MockEventPublisher),
	}
	scope := &NoOpTransactionScope{
		PORepo:     f.poRepo,
		Stocks:     f.stocks,
		Movements:  f.movements,
		Products:   f.products,
		Warehouses: f.warehouses,
	}
	f.service = NewPurchaseOrderService(scope, f.poRepo)
	f.service.SetEventPublisher(f.publisher)
	return f
}

func TestPurchaseOrderCreate(t *testing.T) {
	f := newPOFixture()
	productID := uuid.New()
	warehouseID := uuid.New()
	f.warehouses.On("FindActiveByID", mock.Anything, warehouseID).Return(testWarehouse(warehouseID), nil)
	f.products.On("FindActiveByID", mock.Anything, productID).Return(testProduct(productID), nil)
	f.poRepo.On("NextPONumber", mock.Anything, mock.Anything).Return("PO-20260829-0001", nil)
	f.poRepo.On("Save", mock.Anything, mock.AnythingOfType("*distribution.PurchaseOrder")).Return(nil)

	resp, err := f.service.Create(context.Background(), uuid.New(), CreatePurchaseOrderRequest{
		SupplierID:  uuid.New(),
		WarehouseID: warehouseID,
		Items: []POItemRequest{
			{ProductID: productID, Quantity: 10, Price: valueobject.NewMoneyFromFloat(3000)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "PO-20260829-0001", resp.PONumber)
	assert.Equal(t, distribution.POStatusDraft, resp.Status)
	assert.Equal(t, "30000", resp.TotalAmount.String())
}

func TestPurchaseOrderCreateUnknownWarehouse(t *testing.T) {
	f := newPOFixture()
	warehouseID := uuid.New()
	f.warehouses.On("FindActiveByID", mock.Anything, warehouseID).Return(nil, shared.NewNotFoundError("warehouse", warehouseID))

	_, err := f.service.Create(context.Background(), uuid.New(), CreatePurchaseOrderRequest{
		SupplierID:  uuid.New(),
		WarehouseID: warehouseID,
		Items: []POItemRequest{
			{ProductID: uuid.New(), Quantity: 1, Price: valueobject.NewMoneyFromFloat(1000)},
		},
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.ErrNotFound.Code, domainErr.Code)
	f.poRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPurchaseOrderReceive(t *testing.T) {
	f := newPOFixture()
	productID := uuid.New()
	warehouseID := uuid.New()
	po, err := distribution.NewPurchaseOrder("PO-20260829-0002", uuid.New(), warehouseID, []distribution.POItemInput{
		{ProductID: productID, Quantity: 10, Price: valueobject.NewMoneyFromFloat(3000)},
	})
	require.NoError(t, err)

	stock, _ := domaininv.NewStock(warehouseID, productID)
	f.poRepo.On("FindByIDForUpdate", mock.Anything, po.ID).Return(po, nil)
	f.poRepo.On("SaveWithLock", mock.Anything, po).Return(nil)
	f.stocks.On("GetOrCreateForUpdate", mock.Anything, warehouseID, productID).Return(stock, nil)
	f.stocks.On("Save", mock.Anything, stock).Return(nil)
	f.movements.On("Save", mock.Anything, mock.MatchedBy(func(m *domaininv.StockMovement) bool {
		return m.Type == domaininv.MovementIn && m.Quantity == 10 &&
			m.ReferenceType != nil && *m.ReferenceType == domaininv.RefPurchaseOrder
	})).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.Receive(context.Background(), uuid.New(), po.ID)
	require.NoError(t, err)
	assert.Equal(t, distribution.POStatusReceived, resp.Status)
	assert.NotNil(t, resp.ReceivedAt)
	assert.Equal(t, int64(10), stock.Quantity)
	f.movements.AssertNumberOfCalls(t, "Save", 1)
}

func TestPurchaseOrderReceiveTwice(t *testing.T) {
	f := newPOFixture()
	productID := uuid.New()
	warehouseID := uuid.New()
	po, err := distribution.NewPurchaseOrder("PO-20260829-0003", uuid.New(), warehouseID, []distribution.POItemInput{
		{ProductID: productID, Quantity: 5, Price: valueobject.NewMoneyFromFloat(2000)},
	})
	require.NoError(t, err)

	stock, _ := domaininv.NewStock(warehouseID, productID)
	f.poRepo.On("FindByIDForUpdate", mock.Anything, po.ID).Return(po, nil)
	f.poRepo.On("SaveWithLock", mock.Anything, po).Return(nil)
	f.stocks.On("GetOrCreateForUpdate", mock.Anything, warehouseID, productID).Return(stock, nil)
	f.stocks.On("Save", mock.Anything, stock).Return(nil)
	f.movements.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	_, err = f.service.Receive(context.Background(), uuid.New(), po.ID)
	require.NoError(t, err)

	_, err = f.service.Receive(context.Background(), uuid.New(), po.ID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.ErrAlreadyReceived.Code, domainErr.Code)

	// the stock increment applied exactly once
	assert.Equal(t, int64(5), stock.Quantity)
	f.movements.AssertNumberOfCalls(t, "Save", 1)
}
