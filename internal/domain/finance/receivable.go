package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// ReceivableStatus is the settlement state of a receivable
type ReceivableStatus string

const (
	ReceivableStatusUnpaid  ReceivableStatus = "UNPAID"
	ReceivableStatusPartial ReceivableStatus = "PARTIAL"
	ReceivableStatusOverdue ReceivableStatus = "OVERDUE"
	ReceivableStatusPaid    ReceivableStatus = "PAID"
)

// IsValid checks if the status is one of the defined values
func (s ReceivableStatus) IsValid() bool {
	switch s {
	case ReceivableStatusUnpaid, ReceivableStatusPartial, ReceivableStatusOverdue, ReceivableStatusPaid:
		return true
	}
	return false
}

// PaymentMethod is how a warung settled part of its debt
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodQRIS     PaymentMethod = "QRIS"
)

// IsValid checks if the payment method is one of the defined values
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodQRIS:
		return true
	}
	return false
}

// Payment is one append-only settlement record against a receivable
type Payment struct {
	shared.BaseEntity
	ReceivableID uuid.UUID
	Amount       valueobject.Money
	Method       PaymentMethod
	ProofURL     *string
	Notes        string
	VerifiedBy   uuid.UUID
}

// Receivable is money a warung owes for one invoiced order. Balance never
// goes negative; the payment guards reject anything that would overshoot.
type Receivable struct {
	shared.BaseAggregateRoot
	WarungID   uuid.UUID
	OrderID    *uuid.UUID
	Amount     valueobject.Money
	PaidAmount valueobject.Money
	Balance    valueobject.Money
	DueDate    time.Time
	Status     ReceivableStatus
	Payments   []Payment
	DeletedAt  *time.Time
}

// NewReceivable opens a receivable for an invoiced amount
func NewReceivable(warungID uuid.UUID, orderID *uuid.UUID, amount valueobject.Money, dueDate time.Time) (*Receivable, error) {
	if warungID == uuid.Nil {
		return nil, shared.NewValidationError("warung id is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("receivable amount must be positive")
	}
	if dueDate.IsZero() {
		return nil, shared.NewValidationError("due date is required")
	}
	return &Receivable{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		WarungID:          warungID,
		OrderID:           orderID,
		Amount:            amount,
		PaidAmount:        valueobject.ZeroMoney(),
		Balance:           amount,
		DueDate:           dueDate,
		Status:            ReceivableStatusUnpaid,
	}, nil
}

// IsDeleted reports whether the receivable has been soft-deleted
func (r *Receivable) IsDeleted() bool {
	return r.DeletedAt != nil
}

// IsSettled reports whether nothing is outstanding
func (r *Receivable) IsSettled() bool {
	return !r.Balance.IsPositive()
}

// IsOverdue reports whether an outstanding balance is past its due date
func (r *Receivable) IsOverdue(now time.Time) bool {
	return !r.IsSettled() && now.After(r.DueDate)
}

// DaysPastDue returns whole days elapsed since the due date, zero or
// negative when not yet due
func (r *Receivable) DaysPastDue(now time.Time) int {
	return int(now.Sub(r.DueDate).Hours() / 24)
}

// MarkOverdue reclassifies an outstanding, past-due receivable
func (r *Receivable) MarkOverdue(now time.Time) bool {
	if !r.IsOverdue(now) {
		return false
	}
	if r.Status != ReceivableStatusUnpaid && r.Status != ReceivableStatusPartial {
		return false
	}
	r.Status = ReceivableStatusOverdue
	r.UpdatedAt = now
	return true
}

// ApplyPayment settles part of the balance. Guards run before any state
// change, so a rejected payment leaves the receivable untouched.
func (r *Receivable) ApplyPayment(amount valueobject.Money, method PaymentMethod, proofURL *string, notes string, verifiedBy uuid.UUID) (*Payment, error) {
	if r.IsSettled() {
		return nil, shared.ErrAlreadyPaid
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("payment amount must be positive")
	}
	if !method.IsValid() {
		return nil, shared.NewValidationError("unknown payment method")
	}
	if verifiedBy == uuid.Nil {
		return nil, shared.NewValidationError("payment verifier is required")
	}
	if amount.GreaterThan(r.Balance) {
		return nil, shared.ErrAmountExceedsBalance
	}

	payment := Payment{
		BaseEntity:   shared.NewBaseEntity(),
		ReceivableID: r.ID,
		Amount:       amount,
		Method:       method,
		ProofURL:     proofURL,
		Notes:        notes,
		VerifiedBy:   verifiedBy,
	}
	r.Payments = append(r.Payments, payment)

	now := time.Now()
	r.PaidAmount = r.PaidAmount.Add(amount)
	r.Balance = r.Amount.Subtract(r.PaidAmount).ClampZero()
	switch {
	case r.IsSettled():
		r.Status = ReceivableStatusPaid
	case now.After(r.DueDate):
		r.Status = ReceivableStatusOverdue
	default:
		r.Status = ReceivableStatusPartial
	}
	r.UpdatedAt = now

	return &payment, nil
}
