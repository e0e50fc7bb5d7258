package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warungin/backend/internal/domain/shared"
)

func TestStockIncreaseDecrease(t *testing.T) {
	stock, err := NewStock(uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stock.Quantity)

	require.NoError(t, stock.Increase(100))
	require.NoError(t, stock.Decrease(40))
	assert.Equal(t, int64(60), stock.Quantity)
}

func TestStockDecreaseNeverGoesNegative(t *testing.T) {
	stock, err := NewStock(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, stock.Increase(10))

	err = stock.Decrease(11)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.ErrInsufficientStock.Code, domainErr.Code)

	// failed decrease leaves the balance untouched
	assert.Equal(t, int64(10), stock.Quantity)
}

func TestStockRejectsNonPositiveQuantities(t *testing.T) {
	stock, err := NewStock(uuid.New(), uuid.New())
	require.NoError(t, err)

	assert.Error(t, stock.Increase(0))
	assert.Error(t, stock.Increase(-5))
	assert.Error(t, stock.Decrease(0))
	assert.Error(t, stock.SetQuantity(-1))
}

func TestStockLowStockThreshold(t *testing.T) {
	stock, err := NewStock(uuid.New(), uuid.New())
	require.NoError(t, err)

	// threshold zero means alerts are off
	assert.False(t, stock.IsLowStock())

	require.NoError(t, stock.SetMinStock(5))
	assert.True(t, stock.IsLowStock())

	require.NoError(t, stock.Increase(6))
	assert.False(t, stock.IsLowStock())

	require.NoError(t, stock.Decrease(1))
	assert.True(t, stock.IsLowStock())
}
