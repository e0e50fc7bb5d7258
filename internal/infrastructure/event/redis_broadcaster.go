package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/warungin/backend/internal/domain/distribution"
	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ChannelPrefix namespaces the pub/sub channels this service publishes on
const ChannelPrefix = "warungin:events:"

// envelope is the JSON shape broadcast for every domain event
type envelope struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	AggregateID   string    `json:"aggregate_id"`
	AggregateType string    `json:"aggregate_type"`
	OccurredAt    time.Time `json:"occurred_at"`
	Payload       any       `json:"payload"`
}

// RedisBroadcaster republishes domain events onto Redis pub/sub so
// dashboards and other processes can follow stock and order activity live.
// It subscribes to the bus like any other handler; broadcast failures are
// logged and never fail the publishing side.
type RedisBroadcaster struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisBroadcaster creates a new RedisBroadcaster
func NewRedisBroadcaster(client *redis.Client, logger *zap.Logger) *RedisBroadcaster {
	return &RedisBroadcaster{
		client: client,
		logger: logger.Named("broadcaster"),
	}
}

// EventTypes returns the event types this handler consumes
func (b *RedisBroadcaster) EventTypes() []string {
	return []string{
		inventory.EventStocksUpdated,
		distribution.EventOrderCreated,
		distribution.EventOrderUpdated,
		distribution.EventDeliveryAssigned,
	}
}

// Handle broadcasts one event to its channel
func (b *RedisBroadcaster) Handle(ctx context.Context, event shared.DomainEvent) error {
	payload, err := json.Marshal(envelope{
		EventID:       event.EventID().String(),
		EventType:     event.EventType(),
		AggregateID:   event.AggregateID().String(),
		AggregateType: event.AggregateType(),
		OccurredAt:    event.OccurredAt(),
		Payload:       event,
	})
	if err != nil {
		b.logger.Error("failed to encode event for broadcast",
			zap.String("event_type", event.EventType()),
			zap.Error(err))
		return nil
	}

	channel := ChannelPrefix + event.EventType()
	if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
		b.logger.Warn("failed to broadcast event",
			zap.String("channel", channel),
			zap.Error(err))
	}
	return nil
}

var _ shared.EventHandler = (*RedisBroadcaster)(nil)
