package distribution

import (
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
)

// TaskStatus mirrors the owning order's delivery progress
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusInTransit TaskStatus = "IN_TRANSIT"
	TaskStatusDelivered TaskStatus = "DELIVERED"
)

// DeliveryTask is the courier assignment for one order. At most one task
// exists per order; reassignment overwrites the courier in place.
type DeliveryTask struct {
	shared.BaseEntity
	OrderID       uuid.UUID
	KurirID       uuid.UUID
	Status        TaskStatus
	PickedUpAt    *time.Time
	DeliveredAt   *time.Time
	DeliveryPhoto *string
}

// NewDeliveryTask creates a pending task for an order
func NewDeliveryTask(orderID, kurirID uuid.UUID) *DeliveryTask {
	return &DeliveryTask{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		KurirID:    kurirID,
		Status:     TaskStatusPending,
	}
}

// Reassign hands the task to another courier before pickup
func (t *DeliveryTask) Reassign(kurirID uuid.UUID) {
	t.KurirID = kurirID
	t.Status = TaskStatusPending
	t.UpdatedAt = time.Now()
}

// Start records the pickup
func (t *DeliveryTask) Start() {
	now := time.Now()
	t.Status = TaskStatusInTransit
	t.PickedUpAt = &now
	t.UpdatedAt = now
}

// Complete records the handover, optionally with photo proof
func (t *DeliveryTask) Complete(photo *string) {
	now := time.Now()
	t.Status = TaskStatusDelivered
	t.DeliveredAt = &now
	t.DeliveryPhoto = photo
	t.UpdatedAt = now
}
