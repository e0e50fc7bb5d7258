package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warungin/backend/internal/domain/shared"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	fail     bool
}

func (h *recordingHandler) EventTypes() []string { return h.types }

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.received = append(h.received, event)
	if h.fail {
		return errors.New("handler failure")
	}
	return nil
}

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Test", uuid.New())}
}

func TestPublishDispatchesByType(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	stockHandler := &recordingHandler{types: []string{"stocks.updated"}}
	orderHandler := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(stockHandler)
	bus.Subscribe(orderHandler)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("stocks.updated")))

	assert.Len(t, stockHandler.received, 1)
	assert.Empty(t, orderHandler.received)
}

func TestPublishContinuesPastFailingHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := &recordingHandler{types: []string{"order.created"}, fail: true}
	healthy := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("order.created")))

	assert.Len(t, failing.received, 1)
	assert.Len(t, healthy.received, 1)
}

func TestWildcardHandlerReceivesEverything(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	wildcard := &recordingHandler{}
	bus.Subscribe(wildcard, []string{}...)

	require.NoError(t, bus.Publish(context.Background(),
		newTestEvent("stocks.updated"),
		newTestEvent("order.created"),
	))

	assert.Len(t, wildcard.received, 2)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"order.updated"}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("order.updated")))
	assert.Empty(t, handler.received)
}
