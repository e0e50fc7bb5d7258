package models

import (
	"time"

	"github.com/warungin/backend/internal/domain/catalog"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	AggregateModel
	SKU       string            `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name      string            `gorm:"type:varchar(200);not null"`
	Unit      string            `gorm:"type:varchar(20);not null;default:'pcs'"`
	BuyPrice  valueobject.Money `gorm:"type:decimal(18,2);not null;default:0"`
	DeletedAt *time.Time        `gorm:"index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		SKU:               m.SKU,
		Name:              m.Name,
		Unit:              m.Unit,
		BuyPrice:          m.BuyPrice,
		DeletedAt:         m.DeletedAt,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.SKU = p.SKU
	m.Name = p.Name
	m.Unit = p.Unit
	m.BuyPrice = p.BuyPrice
	m.DeletedAt = p.DeletedAt
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}

// WarehouseModel is the persistence model for the Warehouse domain entity.
type WarehouseModel struct {
	AggregateModel
	Name      string     `gorm:"type:varchar(200);not null"`
	Address   string     `gorm:"type:text"`
	DeletedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (WarehouseModel) TableName() string {
	return "warehouses"
}

// ToDomain converts the persistence model to a domain Warehouse entity.
func (m *WarehouseModel) ToDomain() *catalog.Warehouse {
	return &catalog.Warehouse{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Address:           m.Address,
		DeletedAt:         m.DeletedAt,
	}
}

// FromDomain populates the persistence model from a domain Warehouse entity.
func (m *WarehouseModel) FromDomain(w *catalog.Warehouse) {
	m.FromDomainAggregateRoot(w.BaseAggregateRoot)
	m.Name = w.Name
	m.Address = w.Address
	m.DeletedAt = w.DeletedAt
}

// WarehouseModelFromDomain creates a new persistence model from a domain Warehouse entity.
func WarehouseModelFromDomain(w *catalog.Warehouse) *WarehouseModel {
	m := &WarehouseModel{}
	m.FromDomain(w)
	return m
}
