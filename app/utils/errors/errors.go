// Package errors maps domain failures onto the HTTP error surface: every
// tagged domain error resolves to one stable code and status so response
// shapes stay uniform across handlers.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
)

// ErrorCode represents specific error types
type ErrorCode string

const (
	// Authentication and authorization errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeEmailNotVerified   ErrorCode = "EMAIL_NOT_VERIFIED"
	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"

	// Registration errors
	ErrCodeUserExists ErrorCode = "USER_EXISTS"

	// Validation errors
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeBadRequest       ErrorCode = "BAD_REQUEST"

	// System errors
	ErrCodeInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrCodeNotConfigured      ErrorCode = "NOT_CONFIGURED"
	ErrCodeRateLimitExceeded  ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// AppError represents an application error with additional context
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
		Cause:      cause,
	}
}

// FromDomain resolves a tagged domain error to its HTTP representation.
// The classification itself happened at the driver boundary; this only
// translates.
func FromDomain(err error) *AppError {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Wrap(ErrCodeInvalidCredentials, "invalid email or password", err)
	case errors.Is(err, domain.ErrEmailNotVerified):
		return Wrap(ErrCodeEmailNotVerified, "email address not verified", err)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return Wrap(ErrCodeUserExists, "an account with this email already exists", err)
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
		return Wrap(ErrCodeSessionNotFound, "no active session", err)
	case errors.Is(err, domain.ErrUnauthorized):
		return Wrap(ErrCodeUnauthorized, "authentication required", err)
	case errors.Is(err, domain.ErrForbidden):
		return Wrap(ErrCodeForbidden, "access denied", err)
	case errors.Is(err, domain.ErrRateLimitExceeded):
		return Wrap(ErrCodeRateLimitExceeded, "too many requests", err)
	case errors.Is(err, domain.ErrNotConfigured):
		return Wrap(ErrCodeNotConfigured, "remote service is not configured", err)
	}

	var authErr *domain.AuthError
	if errors.As(err, &authErr) && authErr.Code == domain.ErrCodeUnauthorized {
		return Wrap(ErrCodeUnauthorized, authErr.Message, err)
	}

	return Wrap(ErrCodeInternalError, "internal error", err)
}

// AsAppError converts an error to AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatusCode gets the HTTP status code for an error
func GetHTTPStatusCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// getHTTPStatusCode maps error codes to HTTP status codes
func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized, ErrCodeInvalidCredentials, ErrCodeSessionNotFound:
		return http.StatusUnauthorized
	case ErrCodeForbidden, ErrCodeEmailNotVerified:
		return http.StatusForbidden
	case ErrCodeUserExists:
		return http.StatusConflict
	case ErrCodeValidationFailed, ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeNotConfigured, ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
