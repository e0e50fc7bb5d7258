package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/warungin/backend/internal/domain/partner"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// WarungModel is the persistence model for the Warung domain entity.
type WarungModel struct {
	AggregateModel
	Name          string            `gorm:"type:varchar(200);not null"`
	OwnerName     string            `gorm:"type:varchar(100)"`
	Phone         string            `gorm:"type:varchar(50);index"`
	Address       string            `gorm:"type:text"`
	CreditLimit   valueobject.Money `gorm:"type:decimal(18,2);not null;default:0"`
	CreditDays    int               `gorm:"not null;default:7"`
	CurrentDebt   valueobject.Money `gorm:"type:decimal(18,2);not null;default:0"`
	IsBlocked     bool              `gorm:"not null;default:false;index"`
	BlockedReason *string           `gorm:"type:varchar(100)"`
	DeletedAt     *time.Time        `gorm:"index"`
}

// TableName returns the table name for GORM
func (WarungModel) TableName() string {
	return "warungs"
}

// ToDomain converts the persistence model to a domain Warung entity.
func (m *WarungModel) ToDomain() *partner.Warung {
	return &partner.Warung{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		OwnerName:         m.OwnerName,
		Phone:             m.Phone,
		Address:           m.Address,
		CreditLimit:       m.CreditLimit,
		CreditDays:        m.CreditDays,
		CurrentDebt:       m.CurrentDebt,
		IsBlocked:         m.IsBlocked,
		BlockedReason:     m.BlockedReason,
		DeletedAt:         m.DeletedAt,
	}
}

// FromDomain populates the persistence model from a domain Warung entity.
func (m *WarungModel) FromDomain(w *partner.Warung) {
	m.FromDomainAggregateRoot(w.BaseAggregateRoot)
	m.Name = w.Name
	m.OwnerName = w.OwnerName
	m.Phone = w.Phone
	m.Address = w.Address
	m.CreditLimit = w.CreditLimit
	m.CreditDays = w.CreditDays
	m.CurrentDebt = w.CurrentDebt
	m.IsBlocked = w.IsBlocked
	m.BlockedReason = w.BlockedReason
	m.DeletedAt = w.DeletedAt
}

// WarungModelFromDomain creates a new persistence model from a domain Warung entity.
func WarungModelFromDomain(w *partner.Warung) *WarungModel {
	m := &WarungModel{}
	m.FromDomain(w)
	return m
}

// WarungProductModel is the persistence model for the outlet stock row.
// The (warung_id, product_id) pair is unique.
type WarungProductModel struct {
	AggregateModel
	WarungID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_warung_product,priority:1"`
	ProductID    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_warung_product,priority:2"`
	StockQty     int64             `gorm:"not null;default:0"`
	SellingPrice valueobject.Money `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (WarungProductModel) TableName() string {
	return "warung_products"
}

// ToDomain converts the persistence model to a domain WarungProduct entity.
func (m *WarungProductModel) ToDomain() *partner.WarungProduct {
	return &partner.WarungProduct{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		WarungID:          m.WarungID,
		ProductID:         m.ProductID,
		StockQty:          m.StockQty,
		SellingPrice:      m.SellingPrice,
	}
}

// FromDomain populates the persistence model from a domain WarungProduct entity.
func (m *WarungProductModel) FromDomain(wp *partner.WarungProduct) {
	m.FromDomainAggregateRoot(wp.BaseAggregateRoot)
	m.WarungID = wp.WarungID
	m.ProductID = wp.ProductID
	m.StockQty = wp.StockQty
	m.SellingPrice = wp.SellingPrice
}

// WarungProductModelFromDomain creates a new persistence model from a domain WarungProduct entity.
func WarungProductModelFromDomain(wp *partner.WarungProduct) *WarungProductModel {
	m := &WarungProductModel{}
	m.FromDomain(wp)
	return m
}
