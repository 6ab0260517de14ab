package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
)

// apiError is a non-2xx response from the remote service.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote service returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote service returned %d", e.Status)
}

// newAPIError extracts the human-readable message from an error body.
// The auth and storage APIs use different field names across versions.
func newAPIError(status int, body []byte) *apiError {
	var payload struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}

	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, candidate := range []string{payload.Msg, payload.Message, payload.ErrorDescription, payload.Error} {
			if candidate != "" {
				message = candidate
				break
			}
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}

	return &apiError{Status: status, Message: message}
}

// classifyAuthError decides a remote auth failure into a tagged domain
// error exactly once, at this boundary. Callers branch with errors.Is
// instead of re-parsing message text.
func classifyAuthError(err error, operation string) error {
	var api *apiError
	if !errors.As(err, &api) {
		return domain.NewAuthError(domain.ErrCodeInternal, fmt.Sprintf("%s failed", operation), err)
	}

	msg := api.Message
	switch {
	case containsFold(msg, "invalid login credentials"),
		containsFold(msg, "invalid_grant"),
		containsFold(msg, "invalid grant"):
		return fmt.Errorf("%s: %w", operation, domain.ErrInvalidCredentials)
	case containsFold(msg, "email not confirmed"):
		return fmt.Errorf("%s: %w", operation, domain.ErrEmailNotVerified)
	case containsFold(msg, "already registered"),
		containsFold(msg, "already been registered"):
		return fmt.Errorf("%s: %w", operation, domain.ErrUserAlreadyExists)
	}

	switch api.Status {
	case http.StatusUnauthorized:
		return domain.NewAuthError(domain.ErrCodeUnauthorized, fmt.Sprintf("%s rejected", operation), err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", operation, domain.ErrRateLimitExceeded)
	}
	return domain.NewAuthError(domain.ErrCodeInternal, fmt.Sprintf("%s failed", operation), err)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
