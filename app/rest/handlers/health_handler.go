package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthChecker reports whether the remote backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	remote HealthChecker
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(remote HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		remote: remote,
		logger: logger,
	}
}

// HealthResponse is the basic health payload
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Uptime    string    `json:"uptime"`
}

// HealthStatus describes one dependency check
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// ReadinessResponse is the readiness payload with per-dependency checks
type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks"`
}

// HealthCheck performs a basic health check
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "dashboard",
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck verifies the remote backend is reachable
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	checks := make(map[string]HealthStatus)

	began := time.Now()
	if err := h.remote.HealthCheck(c.Request().Context()); err != nil {
		h.logger.Warn("readiness check failed", "error", err)
		checks["backend"] = HealthStatus{Status: "unhealthy", Message: err.Error()}
	} else {
		checks["backend"] = HealthStatus{Status: "healthy", Latency: time.Since(began).String()}
	}

	allHealthy := true
	for _, check := range checks {
		if check.Status != "healthy" {
			allHealthy = false
			break
		}
	}

	statusCode := http.StatusOK
	status := "ready"
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	return c.JSON(statusCode, ReadinessResponse{
		Status:    status,
		Timestamp: time.Now(),
		Service:   "dashboard",
		Checks:    checks,
	})
}

// LivenessCheck performs a liveness check
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "dashboard",
		Uptime:    time.Since(startTime).String(),
	})
}
