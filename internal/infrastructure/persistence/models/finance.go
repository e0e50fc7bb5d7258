package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/warungin/backend/internal/domain/finance"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// ReceivableModel is the persistence model for the Receivable aggregate.
type ReceivableModel struct {
	AggregateModel
	WarungID   uuid.UUID                `gorm:"type:uuid;not null;index"`
	OrderID    *uuid.UUID               `gorm:"type:uuid;index"`
	Amount     valueobject.Money        `gorm:"type:decimal(18,2);not null"`
	PaidAmount valueobject.Money        `gorm:"type:decimal(18,2);not null;default:0"`
	Balance    valueobject.Money        `gorm:"type:decimal(18,2);not null"`
	DueDate    time.Time                `gorm:"not null;index"`
	Status     finance.ReceivableStatus `gorm:"type:varchar(20);not null;default:'UNPAID';index"`
	DeletedAt  *time.Time               `gorm:"index"`
	Payments   []PaymentModel           `gorm:"foreignKey:ReceivableID"`
}

// TableName returns the table name for GORM
func (ReceivableModel) TableName() string {
	return "receivables"
}

// PaymentModel is one append-only settlement record against a receivable.
type PaymentModel struct {
	BaseModel
	ReceivableID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Amount       valueobject.Money     `gorm:"type:decimal(18,2);not null"`
	Method       finance.PaymentMethod `gorm:"type:varchar(20);not null"`
	ProofURL     *string               `gorm:"type:text"`
	Notes        string                `gorm:"type:text"`
	VerifiedBy   uuid.UUID             `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() finance.Payment {
	return finance.Payment{
		BaseEntity:   m.BaseModel.ToDomain(),
		ReceivableID: m.ReceivableID,
		Amount:       m.Amount,
		Method:       m.Method,
		ProofURL:     m.ProofURL,
		Notes:        m.Notes,
		VerifiedBy:   m.VerifiedBy,
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.ReceivableID = p.ReceivableID
	m.Amount = p.Amount
	m.Method = p.Method
	m.ProofURL = p.ProofURL
	m.Notes = p.Notes
	m.VerifiedBy = p.VerifiedBy
}

// ToDomain converts the persistence model to a domain Receivable aggregate.
func (m *ReceivableModel) ToDomain() *finance.Receivable {
	r := &finance.Receivable{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		WarungID:          m.WarungID,
		OrderID:           m.OrderID,
		Amount:            m.Amount,
		PaidAmount:        m.PaidAmount,
		Balance:           m.Balance,
		DueDate:           m.DueDate,
		Status:            m.Status,
		DeletedAt:         m.DeletedAt,
	}
	for i := range m.Payments {
		r.Payments = append(r.Payments, m.Payments[i].ToDomain())
	}
	return r
}

// FromDomain populates the persistence model from a domain Receivable aggregate.
func (m *ReceivableModel) FromDomain(r *finance.Receivable) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.WarungID = r.WarungID
	m.OrderID = r.OrderID
	m.Amount = r.Amount
	m.PaidAmount = r.PaidAmount
	m.Balance = r.Balance
	m.DueDate = r.DueDate
	m.Status = r.Status
	m.DeletedAt = r.DeletedAt
	m.Payments = nil
	for i := range r.Payments {
		payment := PaymentModel{}
		payment.FromDomain(&r.Payments[i])
		m.Payments = append(m.Payments, payment)
	}
}

// ReceivableModelFromDomain creates a new persistence model from a domain Receivable aggregate.
func ReceivableModelFromDomain(r *finance.Receivable) *ReceivableModel {
	m := &ReceivableModel{}
	m.FromDomain(r)
	return m
}
