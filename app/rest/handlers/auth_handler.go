package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
	"github.com/sixtyseconds/ai-development-hub/app/port"
	apperrors "github.com/sixtyseconds/ai-development-hub/app/utils/errors"
	"github.com/sixtyseconds/ai-development-hub/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	auth      port.AuthContainer
	validator *validator.Validator
	logger    *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth port.AuthContainer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		validator: validator.New(),
		logger:    logger,
	}
}

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// LoginRequest is the sign-in payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest is the sign-up payload
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=100"`
}

// ResendRequest re-requests the verification email
type ResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SessionResponse mirrors the observable auth state
type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	Loading       bool            `json:"loading"`
	User          *domain.User    `json:"user,omitempty"`
	Profile       *domain.Profile `json:"profile,omitempty"`
	ExpiresInSec  int64           `json:"expires_in_sec,omitempty"`
}

func sessionResponse(state domain.AuthState) SessionResponse {
	resp := SessionResponse{
		Authenticated: state.Authenticated(),
		Loading:       state.Loading,
		User:          state.User,
		Profile:       state.Profile,
	}
	if state.Session != nil {
		resp.ExpiresInSec = int64(state.Session.RemainingTime().Seconds())
	}
	return resp
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: string(apperrors.ErrCodeValidationFailed)})
	}

	h.logger.Info("login attempt", "email", req.Email, "ip", c.RealIP())

	if err := h.auth.SignIn(c.Request().Context(), req.Email, req.Password); err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(h.auth.Snapshot()))
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: string(apperrors.ErrCodeValidationFailed)})
	}

	h.logger.Info("registration attempt", "email", req.Email, "ip", c.RealIP())

	if err := h.auth.SignUp(c.Request().Context(), req.Email, req.Password, req.FullName); err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, sessionResponse(h.auth.Snapshot()))
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.SignOut(c.Request().Context()); err != nil {
		return h.errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Refresh handles POST /v1/auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	h.auth.RefreshSession(c.Request().Context())

	state := h.auth.Snapshot()
	if state.LastErr != nil {
		return h.errorResponse(c, state.LastErr)
	}
	return c.JSON(http.StatusOK, sessionResponse(state))
}

// Session handles GET /v1/auth/session
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse(h.auth.Snapshot()))
}

// ResendVerification handles POST /v1/auth/resend
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req ResendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: string(apperrors.ErrCodeValidationFailed)})
	}

	if err := h.auth.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "verification email sent"})
}

func (h *AuthHandler) errorResponse(c echo.Context, err error) error {
	appErr := apperrors.FromDomain(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		h.logger.Error("auth request failed", "path", c.Path(), "error", err)
	}
	return c.JSON(appErr.StatusCode, ErrorResponse{Error: appErr.Message, Code: string(appErr.Code)})
}
