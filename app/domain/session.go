package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents the authentication identity issued by the remote auth
// service. It is distinct from Profile, which is the application-level
// user record.
type User struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsVerified returns true if the user confirmed their email address.
func (u *User) IsVerified() bool {
	return u.EmailConfirmedAt != nil
}

// Session is the credential bundle issued by the remote auth service.
// The auth container holds a read-only mirror of it, replaced wholesale
// on every auth event.
type Session struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *User     `json:"user"`
}

// IsExpired returns true if the session's access token has expired.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// RemainingTime returns the time until the access token expires.
func (s *Session) RemainingTime() time.Duration {
	if s.IsExpired() {
		return 0
	}
	return time.Until(s.ExpiresAt)
}

// AuthState is the observable state exposed by the auth container.
// Loading is true while a sign-in/up/out/refresh operation is in flight;
// the initial state is loading until the bootstrap session check resolves.
type AuthState struct {
	User    *User
	Profile *Profile
	Session *Session
	Loading bool
	LastErr error
}

// Authenticated returns true if a signed-in user is present.
func (s AuthState) Authenticated() bool {
	return s.User != nil
}
