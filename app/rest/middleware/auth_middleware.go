package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sixtyseconds/ai-development-hub/app/port"
)

// AuthMiddleware guards routes behind the auth state container.
type AuthMiddleware struct {
	auth   port.AuthContainer
	logger *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(auth port.AuthContainer, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		logger: logger,
	}
}

// RequireAuth rejects requests while no user is signed in.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := m.auth.Snapshot()
			if !state.Authenticated() {
				m.logger.Debug("unauthenticated request rejected", "path", c.Path(), "ip", c.RealIP())
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
					"code":  "UNAUTHORIZED",
				})
			}

			c.Set("user_id", state.User.ID.String())
			if state.Profile != nil {
				c.Set("role", string(state.Profile.Role))
			}
			return next(c)
		}
	}
}

// RequireStaff rejects requests from client-role users. It implies
// RequireAuth.
func (m *AuthMiddleware) RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := m.auth.Snapshot()
			if !state.Authenticated() {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
					"code":  "UNAUTHORIZED",
				})
			}
			if state.Profile == nil || !state.Profile.IsStaff() {
				m.logger.Warn("staff route rejected", "path", c.Path(), "user_id", state.User.ID)
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "staff access required",
					"code":  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
