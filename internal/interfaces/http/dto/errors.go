package dto

import "net/http"

// Error codes used by the HTTP layer itself. Domain error codes come from
// internal/domain/shared and are mapped below alongside these.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is required but missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller's role does not allow the operation
	ErrCodeForbidden = "FORBIDDEN"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. State and money
// violations answer 409 so clients can distinguish a retryable conflict from
// bad input.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	"NOT_FOUND":        http.StatusNotFound,
	"VALIDATION_ERROR": http.StatusBadRequest,

	"CONCURRENCY_CONFLICT":   http.StatusConflict,
	"INVALID_STATE":          http.StatusConflict,
	"INSUFFICIENT_STOCK":     http.StatusConflict,
	"INVALID_TRANSFER":       http.StatusConflict,
	"ALREADY_RECEIVED":       http.StatusConflict,
	"ALREADY_PAID":           http.StatusConflict,
	"AMOUNT_EXCEEDS_BALANCE": http.StatusConflict,
	"WARUNG_BLOCKED":         http.StatusConflict,
	"CREDIT_LIMIT_EXCEEDED":  http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes answer 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
