package gateway

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
	mock_port "github.com/sixtyseconds/ai-development-hub/app/mocks"
	"github.com/sixtyseconds/ai-development-hub/app/port"
)

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func newGateway(t *testing.T) (*AuthGateway, *mock_port.MockAuthClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock_port.NewMockAuthClient(ctrl)
	logger := slog.New(slog.NewTextHandler(nopWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewAuthGateway(client, logger), client
}

func signedInSession() *domain.Session {
	return &domain.Session{
		AccessToken: "access-token",
		ExpiresAt:   time.Now().Add(time.Hour),
		User:        &domain.User{ID: uuid.New(), Email: "dev@agency.test"},
	}
}

func TestGateway_SignInPassesTaggedErrorsThrough(t *testing.T) {
	gw, client := newGateway(t)

	client.EXPECT().
		SignInWithPassword(gomock.Any(), "dev@agency.test", "wrong").
		Return(nil, domain.ErrInvalidCredentials)

	_, err := gw.SignInWithPassword(context.Background(), "dev@agency.test", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"classification happens once at the driver; the gateway must not re-wrap it")
}

func TestGateway_SignInSuccess(t *testing.T) {
	gw, client := newGateway(t)
	want := signedInSession()

	client.EXPECT().
		SignInWithPassword(gomock.Any(), "dev@agency.test", "correct-horse").
		Return(want, nil)

	session, err := gw.SignInWithPassword(context.Background(), "dev@agency.test", "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, want, session)
}

func TestGateway_SignInWithoutEmbeddedUser(t *testing.T) {
	gw, client := newGateway(t)
	want := &domain.Session{
		AccessToken: "access-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	client.EXPECT().
		SignInWithPassword(gomock.Any(), "dev@agency.test", "correct-horse").
		Return(want, nil)

	session, err := gw.SignInWithPassword(context.Background(), "dev@agency.test", "correct-horse")

	require.NoError(t, err)
	assert.Nil(t, session.User)
}

func TestGateway_SignUpPassesTaggedErrorsThrough(t *testing.T) {
	gw, client := newGateway(t)

	client.EXPECT().
		SignUp(gomock.Any(), "taken@agency.test", "pw").
		Return(nil, nil, domain.ErrUserAlreadyExists)

	_, _, err := gw.SignUp(context.Background(), "taken@agency.test", "pw")

	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestGateway_GetSessionWrapsError(t *testing.T) {
	gw, client := newGateway(t)
	cause := errors.New("connection reset")

	client.EXPECT().GetSession(gomock.Any()).Return(nil, cause)

	_, err := gw.GetSession(context.Background())

	assert.ErrorIs(t, err, cause)
}

func TestGateway_GetSessionSignedOut(t *testing.T) {
	gw, client := newGateway(t)

	client.EXPECT().GetSession(gomock.Any()).Return(nil, nil)

	session, err := gw.GetSession(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestGateway_SignOut(t *testing.T) {
	gw, client := newGateway(t)

	client.EXPECT().SignOut(gomock.Any()).Return(nil)
	assert.NoError(t, gw.SignOut(context.Background()))

	cause := errors.New("bad gateway")
	client.EXPECT().SignOut(gomock.Any()).Return(cause)
	assert.ErrorIs(t, gw.SignOut(context.Background()), cause)
}

func TestGateway_OnAuthStateChangeForwards(t *testing.T) {
	gw, client := newGateway(t)

	var registered func(port.AuthEvent, *domain.Session)
	client.EXPECT().
		OnAuthStateChange(gomock.Any()).
		DoAndReturn(func(fn func(port.AuthEvent, *domain.Session)) func() {
			registered = fn
			return func() {}
		})

	var gotEvent port.AuthEvent
	gw.OnAuthStateChange(func(event port.AuthEvent, _ *domain.Session) {
		gotEvent = event
	})

	require.NotNil(t, registered)
	registered(port.AuthEventSignedIn, signedInSession())

	assert.Equal(t, port.AuthEventSignedIn, gotEvent)
}
