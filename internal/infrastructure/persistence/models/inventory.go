package models

import (
	"github.com/google/uuid"

	"github.com/warungin/backend/internal/domain/inventory"
)

// StockModel is the persistence model for the stock ledger balance.
// The (warehouse_id, product_id) pair is unique.
type StockModel struct {
	AggregateModel
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_pair,priority:1"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_pair,priority:2"`
	Quantity    int64     `gorm:"not null;default:0"`
	MinStock    int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (StockModel) TableName() string {
	return "stocks"
}

// ToDomain converts the persistence model to a domain Stock entity.
func (m *StockModel) ToDomain() *inventory.Stock {
	return &inventory.Stock{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		WarehouseID:       m.WarehouseID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		MinStock:          m.MinStock,
	}
}

// FromDomain populates the persistence model from a domain Stock entity.
func (m *StockModel) FromDomain(s *inventory.Stock) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.WarehouseID = s.WarehouseID
	m.ProductID = s.ProductID
	m.Quantity = s.Quantity
	m.MinStock = s.MinStock
}

// StockModelFromDomain creates a new persistence model from a domain Stock entity.
func StockModelFromDomain(s *inventory.Stock) *StockModel {
	m := &StockModel{}
	m.FromDomain(s)
	return m
}

// StockMovementModel is the persistence model for one ledger entry.
// Rows are append-only; there is no update path.
type StockMovementModel struct {
	BaseModel
	Type            inventory.MovementType `gorm:"type:varchar(20);not null;index"`
	ProductID       uuid.UUID              `gorm:"type:uuid;not null;index"`
	FromWarehouseID *uuid.UUID             `gorm:"type:uuid;index"`
	ToWarehouseID   *uuid.UUID             `gorm:"type:uuid;index"`
	Quantity        int64                  `gorm:"not null"`
	ReferenceType   *string                `gorm:"type:varchar(50)"`
	ReferenceID     *uuid.UUID             `gorm:"type:uuid;index"`
	Notes           string                 `gorm:"type:text"`
	ActorID         uuid.UUID              `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// ToDomain converts the persistence model to a domain StockMovement entity.
func (m *StockMovementModel) ToDomain() *inventory.StockMovement {
	return &inventory.StockMovement{
		BaseEntity:      m.BaseModel.ToDomain(),
		Type:            m.Type,
		ProductID:       m.ProductID,
		FromWarehouseID: m.FromWarehouseID,
		ToWarehouseID:   m.ToWarehouseID,
		Quantity:        m.Quantity,
		ReferenceType:   m.ReferenceType,
		ReferenceID:     m.ReferenceID,
		Notes:           m.Notes,
		ActorID:         m.ActorID,
	}
}

// FromDomain populates the persistence model from a domain StockMovement entity.
func (m *StockMovementModel) FromDomain(mv *inventory.StockMovement) {
	m.FromDomainBaseEntity(mv.BaseEntity)
	m.Type = mv.Type
	m.ProductID = mv.ProductID
	m.FromWarehouseID = mv.FromWarehouseID
	m.ToWarehouseID = mv.ToWarehouseID
	m.Quantity = mv.Quantity
	m.ReferenceType = mv.ReferenceType
	m.ReferenceID = mv.ReferenceID
	m.Notes = mv.Notes
	m.ActorID = mv.ActorID
}

// StockMovementModelFromDomain creates a new persistence model from a domain StockMovement entity.
func StockMovementModelFromDomain(mv *inventory.StockMovement) *StockMovementModel {
	m := &StockMovementModel{}
	m.FromDomain(mv)
	return m
}

// StockOpnameModel is the persistence model for one physical count record.
type StockOpnameModel struct {
	BaseModel
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;index:idx_opname_pair,priority:1"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index:idx_opname_pair,priority:2"`
	SystemQty   int64     `gorm:"not null"`
	ActualQty   int64     `gorm:"not null"`
	Difference  int64     `gorm:"not null"`
	Reason      string    `gorm:"type:text"`
	PerformerID uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (StockOpnameModel) TableName() string {
	return "stock_opnames"
}

// ToDomain converts the persistence model to a domain StockOpname entity.
func (m *StockOpnameModel) ToDomain() *inventory.StockOpname {
	return &inventory.StockOpname{
		BaseEntity:  m.BaseModel.ToDomain(),
		WarehouseID: m.WarehouseID,
		ProductID:   m.ProductID,
		SystemQty:   m.SystemQty,
		ActualQty:   m.ActualQty,
		Difference:  m.Difference,
		Reason:      m.Reason,
		PerformerID: m.PerformerID,
	}
}

// FromDomain populates the persistence model from a domain StockOpname entity.
func (m *StockOpnameModel) FromDomain(o *inventory.StockOpname) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.WarehouseID = o.WarehouseID
	m.ProductID = o.ProductID
	m.SystemQty = o.SystemQty
	m.ActualQty = o.ActualQty
	m.Difference = o.Difference
	m.Reason = o.Reason
	m.PerformerID = o.PerformerID
}

// StockOpnameModelFromDomain creates a new persistence model from a domain StockOpname entity.
func StockOpnameModelFromDomain(o *inventory.StockOpname) *StockOpnameModel {
	m := &StockOpnameModel{}
	m.FromDomain(o)
	return m
}
