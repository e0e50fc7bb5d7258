package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/inventory"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// RecordMovementRequest is the payload for POST /stocks/movement
type RecordMovementRequest struct {
	Type            string     `json:"type" binding:"required,oneof=IN OUT TRANSFER ADJUSTMENT"`
	ProductID       uuid.UUID  `json:"product_id" binding:"required"`
	Quantity        int64      `json:"quantity" binding:"required,gt=0"`
	FromWarehouseID *uuid.UUID `json:"from_warehouse_id"`
	ToWarehouseID   *uuid.UUID `json:"to_warehouse_id"`
	ReferenceType   *string    `json:"reference_type"`
	ReferenceID     *uuid.UUID `json:"reference_id"`
	Notes           string     `json:"notes"`
}

// PerformOpnameRequest is the payload for POST /stocks/opname
type PerformOpnameRequest struct {
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ActualQty   int64     `json:"actual_qty" binding:"gte=0"`
	Reason      string    `json:"reason" binding:"required"`
}

// StockListFilter narrows GET /stocks
type StockListFilter struct {
	WarehouseID *uuid.UUID `form:"warehouse_id"`
	ProductID   *uuid.UUID `form:"product_id"`
	LowStock    bool       `form:"low_stock"`
}

// MovementHistoryFilter narrows GET /stocks/movements/history
type MovementHistoryFilter struct {
	WarehouseID *uuid.UUID `form:"warehouse_id"`
	ProductID   *uuid.UUID `form:"product_id"`
	Type        *string    `form:"type" binding:"omitempty,oneof=IN OUT TRANSFER ADJUSTMENT"`
	From        *time.Time `form:"from" time_format:"2006-01-02"`
	To          *time.Time `form:"to" time_format:"2006-01-02"`
}

// StockResponse represents one ledger balance in API responses
type StockResponse struct {
	ID          uuid.UUID `json:"id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int64     `json:"quantity"`
	MinStock    int64     `json:"min_stock"`
	IsLowStock  bool      `json:"is_low_stock"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToStockResponse maps a stock row to its response shape
func ToStockResponse(s *inventory.Stock) StockResponse {
	return StockResponse{
		ID:          s.ID,
		WarehouseID: s.WarehouseID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		MinStock:    s.MinStock,
		IsLowStock:  s.IsLowStock(),
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToStockResponses maps a slice of stock rows
func ToStockResponses(stocks []inventory.Stock) []StockResponse {
	responses := make([]StockResponse, len(stocks))
	for i := range stocks {
		responses[i] = ToStockResponse(&stocks[i])
	}
	return responses
}

// MovementResponse represents one ledger entry in API responses
type MovementResponse struct {
	ID              uuid.UUID              `json:"id"`
	Type            inventory.MovementType `json:"type"`
	ProductID       uuid.UUID              `json:"product_id"`
	FromWarehouseID *uuid.UUID             `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   *uuid.UUID             `json:"to_warehouse_id,omitempty"`
	Quantity        int64                  `json:"quantity"`
	ReferenceType   *string                `json:"reference_type,omitempty"`
	ReferenceID     *uuid.UUID             `json:"reference_id,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	ActorID         uuid.UUID              `json:"actor_id"`
	CreatedAt       time.Time              `json:"created_at"`
}

// ToMovementResponse maps a movement to its response shape
func ToMovementResponse(m *inventory.StockMovement) MovementResponse {
	return MovementResponse{
		ID:              m.ID,
		Type:            m.Type,
		ProductID:       m.ProductID,
		FromWarehouseID: m.FromWarehouseID,
		ToWarehouseID:   m.ToWarehouseID,
		Quantity:        m.Quantity,
		ReferenceType:   m.ReferenceType,
		ReferenceID:     m.ReferenceID,
		Notes:           m.Notes,
		ActorID:         m.ActorID,
		CreatedAt:       m.CreatedAt,
	}
}

// ToMovementResponses maps a slice of movements
func ToMovementResponses(movements []inventory.StockMovement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToMovementResponse(&movements[i])
	}
	return responses
}

// OpnameResponse represents one physical count in API responses
type OpnameResponse struct {
	ID          uuid.UUID `json:"id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	ProductID   uuid.UUID `json:"product_id"`
	SystemQty   int64     `json:"system_qty"`
	ActualQty   int64     `json:"actual_qty"`
	Difference  int64     `json:"difference"`
	Reason      string    `json:"reason"`
	PerformerID uuid.UUID `json:"performer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToOpnameResponse maps an opname record to its response shape
func ToOpnameResponse(o *inventory.StockOpname) OpnameResponse {
	return OpnameResponse{
		ID:          o.ID,
		WarehouseID: o.WarehouseID,
		ProductID:   o.ProductID,
		SystemQty:   o.SystemQty,
		ActualQty:   o.ActualQty,
		Difference:  o.Difference,
		Reason:      o.Reason,
		PerformerID: o.PerformerID,
		CreatedAt:   o.CreatedAt,
	}
}

// ValuationResponse is the stock valuation report
type ValuationResponse struct {
	Entries []inventory.ValuationEntry `json:"entries"`
	Total   valueobject.Money          `json:"total"`
}
