package domain

import "errors"

// Authentication errors. Remote auth failures are decided into these
// tagged values once, at the driver boundary, so callers branch on
// errors.Is instead of re-parsing message text.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")

	// ErrNotConfigured is returned on the first I/O attempt of a client
	// whose service URL or API key was absent at startup.
	ErrNotConfigured = errors.New("remote service not configured")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrInvalidInput     = errors.New("invalid input")
	ErrValidationFailed = errors.New("validation failed")

	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	ErrInternal = errors.New("internal error")
)

// AuthError represents a remote auth failure with its boundary classification
type AuthError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new authentication error
func NewAuthError(code, message string, cause error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common auth error codes
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailNotVerified   = "EMAIL_NOT_VERIFIED"
	ErrCodeUserExists         = "USER_EXISTS"
	ErrCodeSessionExpired     = "SESSION_EXPIRED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeNotConfigured      = "NOT_CONFIGURED"
	ErrCodeRateLimit          = "RATE_LIMIT"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// ValidationError represents validation errors with field-specific details
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
