package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/finance"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// CreatePaymentRequest is the payload for POST /payments
type CreatePaymentRequest struct {
	ReceivableID uuid.UUID         `json:"receivable_id" binding:"required"`
	Amount       valueobject.Money `json:"amount" binding:"required,money_positive"`
	Method       string            `json:"method" binding:"required,oneof=CASH TRANSFER QRIS"`
	ProofURL     *string           `json:"proof_url" binding:"omitempty,url"`
	Notes        string            `json:"notes"`
}

// ReceivableListFilter narrows GET /receivables
type ReceivableListFilter struct {
	WarungID *uuid.UUID `form:"warung_id"`
	Status   *string    `form:"status" binding:"omitempty,oneof=UNPAID PARTIAL OVERDUE PAID"`
	Page     int        `form:"page,default=1" binding:"min=1"`
	PageSize int        `form:"page_size,default=20" binding:"min=1,max=100"`
}

// PaymentResponse is one settlement record in API responses
type PaymentResponse struct {
	ID           uuid.UUID             `json:"id"`
	ReceivableID uuid.UUID             `json:"receivable_id"`
	Amount       valueobject.Money     `json:"amount"`
	Method       finance.PaymentMethod `json:"method"`
	ProofURL     *string               `json:"proof_url,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	VerifiedBy   uuid.UUID             `json:"verified_by"`
	CreatedAt    time.Time             `json:"created_at"`
}

// ReceivableResponse is one receivable with its payment trail
type ReceivableResponse struct {
	ID         uuid.UUID                `json:"id"`
	WarungID   uuid.UUID                `json:"warung_id"`
	OrderID    *uuid.UUID               `json:"order_id,omitempty"`
	Amount     valueobject.Money        `json:"amount"`
	PaidAmount valueobject.Money        `json:"paid_amount"`
	Balance    valueobject.Money        `json:"balance"`
	DueDate    time.Time                `json:"due_date"`
	Status     finance.ReceivableStatus `json:"status"`
	Payments   []PaymentResponse        `json:"payments"`
	CreatedAt  time.Time                `json:"created_at"`
}

// CreditStatusResponse is one warung's live credit position
type CreditStatusResponse struct {
	WarungID        uuid.UUID         `json:"warung_id"`
	CreditLimit     valueobject.Money `json:"credit_limit"`
	CurrentDebt     valueobject.Money `json:"current_debt"`
	AvailableCredit valueobject.Money `json:"available_credit"`
	Outstanding     valueobject.Money `json:"outstanding"`
	IsBlocked       bool              `json:"is_blocked"`
	BlockedReason   *string           `json:"blocked_reason,omitempty"`
}

// SweepResultResponse reports what one overdue sweep run changed
type SweepResultResponse struct {
	MarkedOverdue    int64 `json:"marked_overdue"`
	BlockedWarungs   int   `json:"blocked_warungs"`
	UnblockedWarungs int   `json:"unblocked_warungs"`
}

// ToPaymentResponse maps a payment to its response shape
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		ReceivableID: p.ReceivableID,
		Amount:       p.Amount,
		Method:       p.Method,
		ProofURL:     p.ProofURL,
		Notes:        p.Notes,
		VerifiedBy:   p.VerifiedBy,
		CreatedAt:    p.CreatedAt,
	}
}

// ToReceivableResponse maps a receivable to its response shape
func ToReceivableResponse(r *finance.Receivable) ReceivableResponse {
	payments := make([]PaymentResponse, len(r.Payments))
	for i := range r.Payments {
		payments[i] = ToPaymentResponse(&r.Payments[i])
	}
	return ReceivableResponse{
		ID:         r.ID,
		WarungID:   r.WarungID,
		OrderID:    r.OrderID,
		Amount:     r.Amount,
		PaidAmount: r.PaidAmount,
		Balance:    r.Balance,
		DueDate:    r.DueDate,
		Status:     r.Status,
		Payments:   payments,
		CreatedAt:  r.CreatedAt,
	}
}

// ToReceivableResponses maps a receivable slice to response shapes
func ToReceivableResponses(receivables []finance.Receivable) []ReceivableResponse {
	responses := make([]ReceivableResponse, len(receivables))
	for i := range receivables {
		responses[i] = ToReceivableResponse(&receivables[i])
	}
	return responses
}
