package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

func newTestReceivable(t *testing.T, amount float64, dueDate time.Time) *Receivable {
	orderID := uuid.New()
	r, err := NewReceivable(uuid.New(), &orderID, valueobject.NewMoneyFromFloat(amount), dueDate)
	require.NoError(t, err)
	return r
}

func TestNewReceivableOpensUnpaid(t *testing.T) {
	r := newTestReceivable(t, 150000, time.Now().Add(7*24*time.Hour))

	assert.Equal(t, ReceivableStatusUnpaid, r.Status)
	assert.Equal(t, "150000", r.Balance.String())
	assert.True(t, r.PaidAmount.IsZero())
}

func TestApplyPaymentPartialThenFull(t *testing.T) {
	r := newTestReceivable(t, 100000, time.Now().Add(7*24*time.Hour))
	verifier := uuid.New()

	p1, err := r.ApplyPayment(valueobject.NewMoneyFromFloat(40000), PaymentMethodCash, nil, "", verifier)
	require.NoError(t, err)
	assert.Equal(t, ReceivableStatusPartial, r.Status)
	assert.Equal(t, "60000", r.Balance.String())
	assert.Equal(t, r.ID, p1.ReceivableID)

	_, err = r.ApplyPayment(valueobject.NewMoneyFromFloat(60000), PaymentMethodTransfer, nil, "pelunasan", verifier)
	require.NoError(t, err)
	assert.Equal(t, ReceivableStatusPaid, r.Status)
	assert.True(t, r.Balance.IsZero())
	assert.Len(t, r.Payments, 2)
}

func TestApplyPaymentGuards(t *testing.T) {
	r := newTestReceivable(t, 50000, time.Now().Add(24*time.Hour))
	verifier := uuid.New()

	_, err := r.ApplyPayment(valueobject.NewMoneyFromFloat(50001), PaymentMethodCash, nil, "", verifier)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.ErrAmountExceedsBalance.Code, domainErr.Code)

	// a rejected payment leaves the receivable untouched
	assert.Equal(t, ReceivableStatusUnpaid, r.Status)
	assert.Empty(t, r.Payments)

	_, err = r.ApplyPayment(valueobject.ZeroMoney(), PaymentMethodCash, nil, "", verifier)
	assert.ErrorContains(t, err, "must be positive")

	_, err = r.ApplyPayment(valueobject.NewMoneyFromFloat(1000), PaymentMethod("CRYPTO"), nil, "", verifier)
	assert.ErrorContains(t, err, "unknown payment method")

	_, err = r.ApplyPayment(valueobject.NewMoneyFromFloat(50000), PaymentMethodCash, nil, "", verifier)
	require.NoError(t, err)

	_, err = r.ApplyPayment(valueobject.NewMoneyFromFloat(1), PaymentMethodCash, nil, "", verifier)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.ErrAlreadyPaid.Code, domainErr.Code)
}

func TestPaymentOnPastDueReceivableStaysOverdue(t *testing.T) {
	r := newTestReceivable(t, 80000, time.Now().Add(-5*24*time.Hour))

	_, err := r.ApplyPayment(valueobject.NewMoneyFromFloat(30000), PaymentMethodQRIS, nil, "", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, ReceivableStatusOverdue, r.Status)
}

func TestMarkOverdue(t *testing.T) {
	now := time.Now()
	pastDue := newTestReceivable(t, 10000, now.Add(-48*time.Hour))
	assert.True(t, pastDue.MarkOverdue(now))
	assert.Equal(t, ReceivableStatusOverdue, pastDue.Status)

	// idempotent on a second pass
	assert.False(t, pastDue.MarkOverdue(now))

	notDue := newTestReceivable(t, 10000, now.Add(48*time.Hour))
	assert.False(t, notDue.MarkOverdue(now))
	assert.Equal(t, ReceivableStatusUnpaid, notDue.Status)
}

func TestDaysPastDue(t *testing.T) {
	now := time.Now()
	r := newTestReceivable(t, 10000, now.Add(-5*24*time.Hour))
	assert.Equal(t, 5, r.DaysPastDue(now))

	future := newTestReceivable(t, 10000, now.Add(3*24*time.Hour))
	assert.LessOrEqual(t, future.DaysPastDue(now), 0)
}
