package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
	"github.com/sixtyseconds/ai-development-hub/app/port"
)

// tokenResponse is the auth service's token grant payload.
type tokenResponse struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	RefreshToken string       `json:"refresh_token"`
	User         *domain.User `json:"user"`
}

// signUpResponse covers both signup shapes: a bare identity while email
// confirmation is pending, or a full token grant when auto-confirm is on.
type signUpResponse struct {
	tokenResponse
	ID    string `json:"id"`
	Email string `json:"email"`
}

// persistedSession is the on-disk session token format.
type persistedSession struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// SignInWithPassword exchanges credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var tok tokenResponse
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": {"password"}},
		body:   map[string]string{"email": email, "password": password},
	}, &tok)
	if err != nil {
		return nil, classifyAuthError(err, "sign in")
	}

	session := c.sessionFromToken(tok)
	c.setSession(session, port.AuthEventSignedIn)
	return session, nil
}

// SignUp creates a new account. The returned session is nil while the
// account awaits email verification.
func (c *Client) SignUp(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	if err := c.ready(); err != nil {
		return nil, nil, err
	}

	var resp signUpResponse
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/signup",
		body:   map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return nil, nil, classifyAuthError(err, "sign up")
	}

	if resp.AccessToken != "" {
		session := c.sessionFromToken(resp.tokenResponse)
		c.setSession(session, port.AuthEventSignedIn)
		return session.User, session, nil
	}

	// Confirmation pending: the payload is the bare identity.
	var user domain.User
	raw, _ := json.Marshal(map[string]string{"id": resp.ID, "email": resp.Email})
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, nil, fmt.Errorf("decode signup identity: %w", err)
	}
	return &user, nil, nil
}

// SignOut revokes the session remotely, then discards the held session
// and the persisted token. A failing remote call leaves both in place.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.ready(); err != nil {
		return err
	}

	if c.currentSession() == nil {
		c.removePersistedSession()
		return nil
	}

	_, err := c.do(ctx, request{method: http.MethodPost, path: "/auth/v1/logout", authed: true}, nil)
	if err != nil {
		return classifyAuthError(err, "sign out")
	}

	c.clearSession()
	return nil
}

// GetSession returns the currently held session, recovering it from the
// persisted token if needed and refreshing it when expired. A signed-out
// client yields (nil, nil).
func (c *Client) GetSession(ctx context.Context) (*domain.Session, error) {
	session := c.currentSession()

	if session == nil {
		restored := c.loadPersistedSession()
		if restored == nil {
			return nil, nil
		}
		if err := c.ready(); err != nil {
			return nil, err
		}
		if restored.IsExpired() {
			return c.refreshToken(ctx, restored.RefreshToken)
		}

		user, err := c.fetchUser(ctx, restored.AccessToken)
		if err != nil {
			return nil, err
		}
		restored.User = user
		c.setSession(restored, port.AuthEventInitialSession)
		return restored, nil
	}

	if session.IsExpired() {
		return c.refreshToken(ctx, session.RefreshToken)
	}
	return session, nil
}

// ResendVerification re-sends the signup verification email.
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	if err := c.ready(); err != nil {
		return err
	}

	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/resend",
		body:   map[string]string{"type": "signup", "email": email},
	}, nil)
	if err != nil {
		return classifyAuthError(err, "resend verification")
	}
	return nil
}

// OnAuthStateChange registers a callback for every session transition the
// client performs. The returned function unsubscribes it.
func (c *Client) OnAuthStateChange(fn func(port.AuthEvent, *domain.Session)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Client) refreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	var tok tokenResponse
	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": {"refresh_token"}},
		body:   map[string]string{"refresh_token": refreshToken},
	}, &tok)
	if err != nil {
		return nil, classifyAuthError(err, "token refresh")
	}

	session := c.sessionFromToken(tok)
	c.setSession(session, port.AuthEventTokenRefreshed)
	return session, nil
}

func (c *Client) fetchUser(ctx context.Context, accessToken string) (*domain.User, error) {
	var user domain.User
	_, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/v1/user",
		token:  accessToken,
	}, &user)
	if err != nil {
		return nil, classifyAuthError(err, "get user")
	}
	return &user, nil
}

// sessionFromToken builds a session, preferring the expiry baked into the
// access token over the advertised expires_in.
func (c *Client) sessionFromToken(tok tokenResponse) *domain.Session {
	expiresAt := time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	if exp, err := tokenExpiry(tok.AccessToken); err == nil {
		expiresAt = exp
	}

	return &domain.Session{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    expiresAt,
		User:         tok.User,
	}
}

func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("access token has no exp claim")
	}
	return exp.Time, nil
}

// setSession replaces the held session wholesale, persists the token and
// notifies subscribers.
func (c *Client) setSession(session *domain.Session, event port.AuthEvent) {
	c.mu.Lock()
	c.session = session
	fns := c.subscriberList()
	c.mu.Unlock()

	c.persistSession(session)
	for _, fn := range fns {
		fn(event, session)
	}
}

// clearSession discards the session and the persisted token, then fires
// the signed-out event.
func (c *Client) clearSession() {
	c.mu.Lock()
	c.session = nil
	fns := c.subscriberList()
	c.mu.Unlock()

	c.removePersistedSession()
	for _, fn := range fns {
		fn(port.AuthEventSignedOut, nil)
	}
}

// subscriberList must be called with c.mu held.
func (c *Client) subscriberList() []func(port.AuthEvent, *domain.Session) {
	fns := make([]func(port.AuthEvent, *domain.Session), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	return fns
}

func (c *Client) persistSession(session *domain.Session) {
	if c.sessionFile == "" || session == nil {
		return
	}

	raw, err := json.Marshal(persistedSession{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
	})
	if err != nil {
		return
	}
	if err := os.WriteFile(c.sessionFile, raw, 0o600); err != nil {
		c.logger.Warn("failed to persist session token", "path", c.sessionFile, "error", err)
	}
}

func (c *Client) loadPersistedSession() *domain.Session {
	if c.sessionFile == "" {
		return nil
	}

	raw, err := os.ReadFile(c.sessionFile)
	if err != nil {
		return nil
	}
	var stored persistedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		c.logger.Warn("discarding unreadable session token", "path", c.sessionFile, "error", err)
		c.removePersistedSession()
		return nil
	}

	return &domain.Session{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		ExpiresAt:    stored.ExpiresAt,
	}
}

func (c *Client) removePersistedSession() {
	if c.sessionFile == "" {
		return
	}
	if err := os.Remove(c.sessionFile); err != nil && !os.IsNotExist(err) {
		c.logger.Warn("failed to remove session token", "path", c.sessionFile, "error", err)
	}
}
