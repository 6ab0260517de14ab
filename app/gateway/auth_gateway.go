package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
	"github.com/sixtyseconds/ai-development-hub/app/port"
)

// AuthGateway implements port.AuthGateway.
// It acts as an anti-corruption layer between the domain and the remote
// auth service.
type AuthGateway struct {
	client port.AuthClient
	logger *slog.Logger
}

// NewAuthGateway creates a new AuthGateway instance
func NewAuthGateway(client port.AuthClient, logger *slog.Logger) *AuthGateway {
	return &AuthGateway{
		client: client,
		logger: logger.With("component", "auth_gateway"),
	}
}

// GetSession retrieves the current session from the remote auth service
func (g *AuthGateway) GetSession(ctx context.Context) (*domain.Session, error) {
	session, err := g.client.GetSession(ctx)
	if err != nil {
		g.logger.Error("failed to retrieve session", "error", err)
		return nil, fmt.Errorf("failed to retrieve session: %w", err)
	}
	return session, nil
}

// SignInWithPassword delegates the credential check to the remote auth service
func (g *AuthGateway) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	g.logger.Info("signing in", "email", email)

	session, err := g.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		g.logger.Warn("sign in rejected", "email", email, "error", err)
		return nil, err
	}

	if session.User != nil {
		g.logger.Info("signed in", "user_id", session.User.ID)
	}
	return session, nil
}

// SignUp creates a remote account
func (g *AuthGateway) SignUp(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	g.logger.Info("creating account", "email", email)

	user, session, err := g.client.SignUp(ctx, email, password)
	if err != nil {
		g.logger.Warn("account creation rejected", "email", email, "error", err)
		return nil, nil, err
	}

	g.logger.Info("account created", "user_id", user.ID, "pending_verification", session == nil)
	return user, session, nil
}

// SignOut revokes the session with the remote auth service
func (g *AuthGateway) SignOut(ctx context.Context) error {
	if err := g.client.SignOut(ctx); err != nil {
		g.logger.Error("failed to sign out", "error", err)
		return fmt.Errorf("failed to sign out: %w", err)
	}

	g.logger.Info("signed out")
	return nil
}

// ResendVerification re-sends the signup verification email
func (g *AuthGateway) ResendVerification(ctx context.Context, email string) error {
	if err := g.client.ResendVerification(ctx, email); err != nil {
		g.logger.Error("failed to resend verification", "email", email, "error", err)
		return fmt.Errorf("failed to resend verification: %w", err)
	}
	return nil
}

// OnAuthStateChange forwards the remote change-notification stream
func (g *AuthGateway) OnAuthStateChange(fn func(port.AuthEvent, *domain.Session)) (unsubscribe func()) {
	return g.client.OnAuthStateChange(func(event port.AuthEvent, session *domain.Session) {
		g.logger.Debug("auth state changed", "event", event)
		fn(event, session)
	})
}
