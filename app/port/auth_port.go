package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
)

// AuthEvent identifies a session transition delivered on the auth change
// notification stream.
type AuthEvent string

const (
	AuthEventInitialSession AuthEvent = "INITIAL_SESSION"
	AuthEventSignedIn       AuthEvent = "SIGNED_IN"
	AuthEventSignedOut      AuthEvent = "SIGNED_OUT"
	AuthEventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)

// AuthContainer defines the auth state container surface consumed by views
type AuthContainer interface {
	// Observable state
	Snapshot() domain.AuthState
	Subscribe(fn func(domain.AuthState)) (cancel func())

	// Imperative operations
	RefreshSession(ctx context.Context)
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, fullName string) error
	SignOut(ctx context.Context) error
	ResendVerification(ctx context.Context, email string) error
}

// AuthGateway defines the remote auth collaborator interface
type AuthGateway interface {
	// GetSession returns the current session, or nil when signed out.
	GetSession(ctx context.Context) (*domain.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	// SignUp creates the remote account. The session may be nil while the
	// account awaits email verification.
	SignUp(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	SignOut(ctx context.Context) error
	ResendVerification(ctx context.Context, email string) error

	// OnAuthStateChange registers a callback for every session transition
	// and returns its unsubscribe function.
	OnAuthStateChange(fn func(AuthEvent, *domain.Session)) (unsubscribe func())
}

// AuthClient defines the driver-level remote auth client wrapped by the gateway
type AuthClient interface {
	GetSession(ctx context.Context) (*domain.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignUp(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	SignOut(ctx context.Context) error
	ResendVerification(ctx context.Context, email string) error
	OnAuthStateChange(fn func(AuthEvent, *domain.Session)) (unsubscribe func())
}
