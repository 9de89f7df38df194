// Package errors provides the application error type shared by the SmartVal
// services. Handlers render AppError code and message; the wrapped internal
// error is logged and never sent to clients.
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

// Is matches AppErrors by code so wrapped copies compare equal to their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

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

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrUnauthorized   = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Valuation form errors.
var (
	ErrIncompleteForm       = &AppError{Code: "INCOMPLETE_FORM", Message: "Category, original price, purchase year, condition and brand tier are required", StatusCode: http.StatusBadRequest}
	ErrSubmissionInProgress = &AppError{Code: "SUBMISSION_IN_PROGRESS", Message: "A valuation is already being calculated", StatusCode: http.StatusConflict}
	ErrImageTooLarge        = &AppError{Code: "IMAGE_TOO_LARGE", Message: "Image exceeds the upload limit", StatusCode: http.StatusRequestEntityTooLarge}
)

// Pricing service errors.
var (
	ErrPricingUnavailable = &AppError{Code: "PRICING_UNAVAILABLE", Message: "The pricing service could not value this item. Please try again.", StatusCode: http.StatusBadGateway}
)
