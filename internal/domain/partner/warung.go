package partner

import (
	"time"

	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/domain/shared/valueobject"
)

// AutoBlockReason marks a block created by the overdue sweep. Blocks carrying
// any other reason were entered by a person and are never cleared
// automatically.
const AutoBlockReason = "AUTO_BLOCK_OVERDUE"

// Warung is a retail outlet buying goods on credit. Identity and profile are
// administered elsewhere; this service owns the credit fields.
type Warung struct {
	shared.BaseAggregateRoot
	Name          string
	OwnerName     string
	Phone         string
	Address       string
	CreditLimit   valueobject.Money
	CreditDays    int
	CurrentDebt   valueobject.Money
	IsBlocked     bool
	BlockedReason *string
	DeletedAt     *time.Time
}

// NewWarung creates a warung with an empty debt position
func NewWarung(name, ownerName, phone, address string, creditLimit valueobject.Money, creditDays int) (*Warung, error) {
	if name == "" {
		return nil, shared.NewValidationError("warung name is required")
	}
	if creditLimit.IsNegative() {
		return nil, shared.NewValidationError("credit limit cannot be negative")
	}
	if creditDays < 0 {
		return nil, shared.NewValidationError("credit days cannot be negative")
	}
	return &Warung{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		OwnerName:         ownerName,
		Phone:             phone,
		Address:           address,
		CreditLimit:       creditLimit,
		CreditDays:        creditDays,
		CurrentDebt:       valueobject.ZeroMoney(),
	}, nil
}

// IsDeleted reports whether the warung has been soft-deleted
func (w *Warung) IsDeleted() bool {
	return w.DeletedAt != nil
}

// AvailableCredit returns creditLimit minus currentDebt, floored at zero
func (w *Warung) AvailableCredit() valueobject.Money {
	return w.CreditLimit.Subtract(w.CurrentDebt).ClampZero()
}

// CanTakeCredit checks whether a new credit order of the given amount is
// allowed under the block flag and the credit limit
func (w *Warung) CanTakeCredit(amount valueobject.Money) error {
	if w.IsBlocked {
		return shared.ErrWarungBlocked
	}
	if w.CurrentDebt.Add(amount).GreaterThan(w.CreditLimit) {
		return shared.ErrCreditLimitExceeded
	}
	return nil
}

// IncreaseDebt adds a newly invoiced amount to the running debt total
func (w *Warung) IncreaseDebt(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.NewValidationError("debt increase must be positive")
	}
	w.CurrentDebt = w.CurrentDebt.Add(amount)
	w.UpdatedAt = time.Now()
	return nil
}

// DecreaseDebt subtracts a settled amount from the running debt total,
// flooring at zero
func (w *Warung) DecreaseDebt(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.NewValidationError("debt decrease must be positive")
	}
	w.CurrentDebt = w.CurrentDebt.Subtract(amount).ClampZero()
	w.UpdatedAt = time.Now()
	return nil
}

// Block blocks the warung with a caller-supplied reason
func (w *Warung) Block(reason string) error {
	if reason == "" {
		return shared.NewValidationError("block reason is required")
	}
	w.IsBlocked = true
	w.BlockedReason = &reason
	w.UpdatedAt = time.Now()
	return nil
}

// Unblock clears the block flag and reason unconditionally
func (w *Warung) Unblock() {
	w.IsBlocked = false
	w.BlockedReason = nil
	w.UpdatedAt = time.Now()
}

// AutoBlock applies the sweep's sentinel block. It is a no-op when the
// warung is already blocked, so a manual reason is never overwritten.
func (w *Warung) AutoBlock() bool {
	if w.IsBlocked {
		return false
	}
	reason := AutoBlockReason
	w.IsBlocked = true
	w.BlockedReason = &reason
	w.UpdatedAt = time.Now()
	return true
}

// IsAutoBlocked reports whether the current block carries the sweep sentinel
func (w *Warung) IsAutoBlocked() bool {
	return w.IsBlocked && w.BlockedReason != nil && *w.BlockedReason == AutoBlockReason
}

// AutoUnblock lifts the block only when it was created by the sweep
func (w *Warung) AutoUnblock() bool {
	if !w.IsAutoBlocked() {
		return false
	}
	w.Unblock()
	return true
}
