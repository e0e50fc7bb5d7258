package distribution

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

func newTestPO(t *testing.T) *PurchaseOrder {
	po, err := NewPurchaseOrder("PO-20260829-0001", uuid.New(), uuid.New(), []POItemInput{
		{ProductID: uuid.New(), Quantity: 10, Price: valueobject.NewMoneyFromFloat(5000)},
		{ProductID: uuid.New(), Quantity: 4, Price: valueobject.NewMoneyFromFloat(12500)},
	})
	require.NoError(t, err)
	return po
}

func TestNewPurchaseOrderComputesTotal(t *testing.T) {
	po := newTestPO(t)

	assert.Equal(t, POStatusDraft, po.Status)
	assert.Len(t, po.Items, 2)
	assert.Equal(t, "100000", po.TotalAmount.String())
}

func TestNewPurchaseOrderValidation(t *testing.T) {
	_, err := NewPurchaseOrder("", uuid.New(), uuid.New(), []POItemInput{{ProductID: uuid.New(), Quantity: 1}})
	assert.ErrorContains(t, err, "po number")

	_, err = NewPurchaseOrder("PO-20260829-0001", uuid.New(), uuid.New(), nil)
	assert.ErrorContains(t, err, "at least one item")

	_, err = NewPurchaseOrder("PO-20260829-0001", uuid.New(), uuid.New(), []POItemInput{
		{ProductID: uuid.New(), Quantity: 0},
	})
	assert.ErrorContains(t, err, "quantity must be positive")
}

func TestReceiveIsOneShot(t *testing.T) {
	po := newTestPO(t)
	actor := uuid.New()

	require.NoError(t, po.Receive(actor))
	assert.True(t, po.IsReceived())
	require.NotNil(t, po.ReceivedAt)
	assert.Equal(t, actor, *po.ReceivedBy)

	err := po.Receive(actor)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.ErrAlreadyReceived.Code, domainErr.Code)
}
