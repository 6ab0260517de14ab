package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
	"github.com/sixtyseconds/ai-development-hub/app/port"
)

const profilesTable = "profiles"

// profileInsert is the record written at registration time. New accounts
// always start with the client role.
type profileInsert struct {
	ID       string             `json:"id"`
	FullName string             `json:"full_name"`
	Role     domain.ProfileRole `json:"role"`
}

// AuthUsecase is the reactive auth state container. It mirrors the remote
// session, re-derives the profile on every session transition (always with
// a forced refresh, identity-critical data must never be stale) and
// notifies subscribers of every state change.
//
// State mutations are version-stamped: an update that was overtaken by a
// newer one does not apply, so a stale async result cannot overwrite
// fresher state.
type AuthUsecase struct {
	auth      port.AuthGateway
	queries   port.QueryCoordinator
	navigator port.Navigator
	logger    *slog.Logger

	mu          sync.Mutex
	state       domain.AuthState
	version     uint64
	subscribers map[int]func(domain.AuthState)
	nextSubID   int
	unsubscribe func()
}

// NewAuthUsecase creates the container in its bootstrap state: loading
// until the first session check resolves.
func NewAuthUsecase(auth port.AuthGateway, queries port.QueryCoordinator, navigator port.Navigator, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		auth:        auth,
		queries:     queries,
		navigator:   navigator,
		logger:      logger.With("component", "auth_usecase"),
		state:       domain.AuthState{Loading: true},
		subscribers: make(map[int]func(domain.AuthState)),
	}
}

// Start establishes the auth-change subscription and runs the bootstrap
// session check. Call Close to tear the subscription down.
func (uc *AuthUsecase) Start(ctx context.Context) {
	uc.unsubscribe = uc.auth.OnAuthStateChange(func(event port.AuthEvent, session *domain.Session) {
		uc.handleAuthEvent(ctx, event, session)
	})
	uc.RefreshSession(ctx)
}

// Close tears down the auth-change subscription.
func (uc *AuthUsecase) Close() {
	uc.mu.Lock()
	unsub := uc.unsubscribe
	uc.unsubscribe = nil
	uc.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Snapshot returns the current state.
func (uc *AuthUsecase) Snapshot() domain.AuthState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Subscribe registers a state observer, invoked on every state change.
// The returned function cancels the subscription.
func (uc *AuthUsecase) Subscribe(fn func(domain.AuthState)) (cancel func()) {
	uc.mu.Lock()
	id := uc.nextSubID
	uc.nextSubID++
	uc.subscribers[id] = fn
	uc.mu.Unlock()

	return func() {
		uc.mu.Lock()
		delete(uc.subscribers, id)
		uc.mu.Unlock()
	}
}

// RefreshSession retrieves the current session from the remote auth
// service and re-derives user and profile from it. A profile-lookup
// failure is recorded as the last error without rolling back the already
// applied session; the loading flag always clears on completion.
func (uc *AuthUsecase) RefreshSession(ctx context.Context) {
	stamp := uc.beginUpdate()
	defer uc.endUpdate(stamp)

	session, err := uc.auth.GetSession(ctx)
	if err != nil {
		uc.logger.Error("session refresh failed", "error", err)
		uc.recordError(stamp, err)
		return
	}

	uc.applySession(ctx, stamp, session)
}

// SignIn delegates the credential check to the remote auth service and,
// on success, navigates to the dashboard. The tagged failure is returned
// to the caller for field-level presentation.
func (uc *AuthUsecase) SignIn(ctx context.Context, email, password string) error {
	stamp := uc.beginUpdate()
	defer uc.endUpdate(stamp)

	session, err := uc.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		uc.logger.Warn("sign in failed", "email", email, "error", err)
		uc.recordError(stamp, err)
		return err
	}

	uc.applySession(ctx, stamp, session)
	uc.navigator.Push(port.PathDashboard)
	return nil
}

// SignUp creates the remote account, then inserts the profile row for it.
// Profile insertion is a separate client-initiated write: when it fails
// the error propagates even though the account already exists. That
// partial-failure window is accepted, not auto-repaired.
func (uc *AuthUsecase) SignUp(ctx context.Context, email, password, fullName string) error {
	stamp := uc.beginUpdate()
	defer uc.endUpdate(stamp)

	user, session, err := uc.auth.SignUp(ctx, email, password)
	if err != nil {
		uc.logger.Warn("sign up failed", "email", email, "error", err)
		uc.recordError(stamp, err)
		return err
	}
	uc.logger.Info("account created", "user_id", user.ID)

	record := profileInsert{ID: user.ID.String(), FullName: fullName, Role: domain.RoleClient}
	if err := uc.queries.InsertInto(ctx, profilesTable, record); err != nil {
		uc.logger.Error("profile creation failed after account creation", "user_id", user.ID, "error", err)
		uc.recordError(stamp, err)
		return err
	}

	uc.apply(stamp, func(s *domain.AuthState) {
		s.Session = session
		s.User = user
	})

	profile, err := uc.lookupProfile(ctx, user.ID)
	if err != nil {
		uc.recordError(stamp, err)
		return err
	}
	uc.apply(stamp, func(s *domain.AuthState) { s.Profile = profile })

	uc.navigator.Push(port.PathVerify)
	return nil
}

// SignOut calls the remote sign-out and clears local state only after it
// resolves without error; a failing remote sign-out leaves local state
// untouched.
func (uc *AuthUsecase) SignOut(ctx context.Context) error {
	stamp := uc.beginUpdate()
	defer uc.endUpdate(stamp)

	if err := uc.auth.SignOut(ctx); err != nil {
		uc.logger.Error("sign out failed", "error", err)
		uc.recordError(stamp, err)
		return err
	}

	uc.apply(stamp, func(s *domain.AuthState) {
		s.User = nil
		s.Profile = nil
		s.Session = nil
	})

	uc.navigator.Push(port.PathLogin)
	return nil
}

// ResendVerification re-sends the signup verification email.
func (uc *AuthUsecase) ResendVerification(ctx context.Context, email string) error {
	return uc.auth.ResendVerification(ctx, email)
}

// handleAuthEvent applies an asynchronous session transition delivered on
// the subscription stream: same state update and forced profile refresh
// as RefreshSession.
func (uc *AuthUsecase) handleAuthEvent(ctx context.Context, event port.AuthEvent, session *domain.Session) {
	uc.logger.Info("auth state changed", "event", event)

	stamp := uc.beginUpdate()
	defer uc.endUpdate(stamp)

	uc.applySession(ctx, stamp, session)
}

// applySession replaces session and user wholesale, then re-derives the
// profile with a forced refresh when a user is present.
func (uc *AuthUsecase) applySession(ctx context.Context, stamp uint64, session *domain.Session) {
	var user *domain.User
	if session != nil {
		user = session.User
	}

	uc.apply(stamp, func(s *domain.AuthState) {
		s.Session = session
		s.User = user
	})

	if user == nil {
		uc.apply(stamp, func(s *domain.AuthState) { s.Profile = nil })
		return
	}

	// A superseded update already lost the right to apply its result;
	// skip the remote lookup instead of fetching and discarding.
	if uc.superseded(stamp) {
		return
	}

	profile, err := uc.lookupProfile(ctx, user.ID)
	if err != nil {
		uc.logger.Error("profile lookup failed", "user_id", user.ID, "error", err)
		uc.recordError(stamp, err)
		return
	}
	uc.apply(stamp, func(s *domain.AuthState) { s.Profile = profile })
}

// lookupProfile fetches the profile row for a user with a forced refresh.
func (uc *AuthUsecase) lookupProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	res := uc.queries.FetchFromTable(ctx, profilesTable, domain.FetchOptions{
		Filters:      map[string]any{"id": userID.String()},
		Limit:        1,
		ForceRefresh: true,
	})
	if res.Err != nil {
		return nil, res.Err
	}

	row := res.First()
	if row == nil {
		return nil, nil
	}

	var profile domain.Profile
	if err := row.Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// beginUpdate opens a version-stamped state update: loading set, last
// error cleared.
func (uc *AuthUsecase) beginUpdate() uint64 {
	uc.mu.Lock()
	uc.version++
	stamp := uc.version
	uc.state.Loading = true
	uc.state.LastErr = nil
	uc.mu.Unlock()

	uc.notify()
	return stamp
}

// endUpdate clears the loading flag. Only the newest update owns the
// flag; a superseded update leaves it to its successor.
func (uc *AuthUsecase) endUpdate(stamp uint64) {
	uc.mu.Lock()
	current := stamp == uc.version
	if current {
		uc.state.Loading = false
	}
	uc.mu.Unlock()

	if current {
		uc.notify()
	}
}

// superseded reports whether a newer update has begun since the stamp
// was issued.
func (uc *AuthUsecase) superseded(stamp uint64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return stamp != uc.version
}

// apply mutates state unless a newer update has already begun.
func (uc *AuthUsecase) apply(stamp uint64, fn func(*domain.AuthState)) {
	uc.mu.Lock()
	if stamp != uc.version {
		uc.mu.Unlock()
		return
	}
	fn(&uc.state)
	uc.mu.Unlock()

	uc.notify()
}

func (uc *AuthUsecase) recordError(stamp uint64, err error) {
	uc.apply(stamp, func(s *domain.AuthState) { s.LastErr = err })
}

func (uc *AuthUsecase) notify() {
	uc.mu.Lock()
	state := uc.state
	fns := make([]func(domain.AuthState), 0, len(uc.subscribers))
	for _, fn := range uc.subscribers {
		fns = append(fns, fn)
	}
	uc.mu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
