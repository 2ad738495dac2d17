// Package errors provides custom error types for the Muhasib API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Privacy lock errors.
var (
	ErrUnauthorized      = &AppError{Code: "UNAUTHORIZED", Message: "Unlock required", StatusCode: http.StatusUnauthorized}
	ErrInvalidPassphrase = &AppError{Code: "INVALID_PASSPHRASE", Message: "Invalid passphrase", StatusCode: http.StatusUnauthorized}
	ErrLockDisabled      = &AppError{Code: "LOCK_DISABLED", Message: "Privacy lock is not configured", StatusCode: http.StatusBadRequest}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	ErrIndexOutOfRange = &AppError{Code: "INDEX_OUT_OF_RANGE", Message: "No saved calculation at that position", StatusCode: http.StatusNotFound}
)

// Rate feed errors.
var (
	ErrRateSourceUnavailable = &AppError{Code: "RATE_SOURCE_UNAVAILABLE", Message: "Live metal rates are currently unavailable", StatusCode: http.StatusBadGateway}
)
