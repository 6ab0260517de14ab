package supabase

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
)

func TestNewAPIError_MessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "gotrue msg field", body: `{"msg":"Email not confirmed"}`, want: "Email not confirmed"},
		{name: "postgrest message field", body: `{"message":"permission denied"}`, want: "permission denied"},
		{name: "oauth error_description", body: `{"error_description":"Invalid login credentials"}`, want: "Invalid login credentials"},
		{name: "bare error field", body: `{"error":"invalid_grant"}`, want: "invalid_grant"},
		{name: "non-json body", body: "upstream timeout", want: "upstream timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := newAPIError(http.StatusBadRequest, []byte(tt.body))
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		})
	}
}

func TestClassifyAuthError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "invalid login credentials",
			err:     &apiError{Status: 400, Message: "Invalid login credentials"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "invalid grant oauth code",
			err:     &apiError{Status: 400, Message: "invalid_grant"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "invalid grant description",
			err:     &apiError{Status: 400, Message: "Invalid grant: user not found"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "email not confirmed",
			err:     &apiError{Status: 400, Message: "Email not confirmed"},
			wantErr: domain.ErrEmailNotVerified,
		},
		{
			name:    "already registered",
			err:     &apiError{Status: 422, Message: "A user with this email address has already been registered"},
			wantErr: domain.ErrUserAlreadyExists,
		},
		{
			name:    "rate limited",
			err:     &apiError{Status: 429, Message: "For security purposes, you can only request this once every 60 seconds"},
			wantErr: domain.ErrRateLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAuthError(tt.err, "sign in")
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}

func TestClassifyAuthError_Unauthorized(t *testing.T) {
	got := classifyAuthError(&apiError{Status: 401, Message: "JWT expired"}, "get user")

	var authErr *domain.AuthError
	assert.True(t, errors.As(got, &authErr))
	assert.Equal(t, domain.ErrCodeUnauthorized, authErr.Code)
}

func TestClassifyAuthError_UnknownFallsBackToInternal(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unrecognized api error", err: &apiError{Status: 500, Message: "unexpected_failure"}},
		{name: "transport error", err: fmt.Errorf("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAuthError(tt.err, "sign in")

			var authErr *domain.AuthError
			assert.True(t, errors.As(got, &authErr))
			assert.Equal(t, domain.ErrCodeInternal, authErr.Code)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
