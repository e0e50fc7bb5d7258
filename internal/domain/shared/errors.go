package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound             = NewDomainError("NOT_FOUND", "Resource not found")
	ErrValidation           = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrConcurrencyConflict  = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState         = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock    = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrInvalidTransfer      = NewDomainError("INVALID_TRANSFER", "Transfer source and destination must differ")
	ErrAlreadyReceived      = NewDomainError("ALREADY_RECEIVED", "Purchase order has already been received")
	ErrAlreadyPaid          = NewDomainError("ALREADY_PAID", "Receivable has already been settled")
	ErrAmountExceedsBalance = NewDomainError("AMOUNT_EXCEEDS_BALANCE", "Payment amount exceeds outstanding balance")
	ErrWarungBlocked        = NewDomainError("WARUNG_BLOCKED", "Warung is blocked from ordering on credit")
	ErrCreditLimitExceeded  = NewDomainError("CREDIT_LIMIT_EXCEEDED", "Order would exceed the warung credit limit")
)

// NewNotFoundError creates a NOT_FOUND error for a named resource
func NewNotFoundError(resource string, id interface{}) *DomainError {
	return NewDomainError(ErrNotFound.Code, fmt.Sprintf("%s %v not found", resource, id))
}

// NewValidationError creates a VALIDATION_ERROR with a specific message
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrValidation.Code, message)
}

// NewInsufficientStockError reports available vs requested quantity
func NewInsufficientStockError(available, requested int64) *DomainError {
	return NewDomainError(ErrInsufficientStock.Code,
		fmt.Sprintf("insufficient stock: available %d, requested %d", available, requested))
}
