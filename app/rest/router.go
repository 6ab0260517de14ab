package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sixtyseconds/ai-development-hub/app/lifecycle"
	"github.com/sixtyseconds/ai-development-hub/app/port"
	"github.com/sixtyseconds/ai-development-hub/app/rest/handlers"
	custommw "github.com/sixtyseconds/ai-development-hub/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger      *slog.Logger
	Auth        port.AuthContainer
	Queries     port.QueryCoordinator
	Events      *lifecycle.Notifier
	Health      handlers.HealthChecker
	EnableDebug bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.Auth, config.Logger)
	dashboardHandler := handlers.NewDashboardHandler(config.Queries, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Health, config.Logger)
	eventsHandler := handlers.NewEventsHandler(config.Events, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.Auth, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/resend", authHandler.ResendVerification)
	auth.GET("/session", authHandler.Session)
	auth.POST("/refresh", authHandler.Refresh)

	authProtected := auth.Group("")
	authProtected.Use(authMiddleware.RequireAuth())
	authProtected.POST("/logout", authHandler.Logout)

	// Dashboard data endpoints
	tables := v1.Group("/tables")
	tables.Use(authMiddleware.RequireAuth())
	tables.GET("/:table", dashboardHandler.GetTable)
	tables.POST("/batch", dashboardHandler.Batch)

	dashboard := v1.Group("/dashboard")
	dashboard.Use(authMiddleware.RequireAuth())
	dashboard.GET("/stats", dashboardHandler.Stats)

	// Clearing the shared cache affects every signed-in user.
	cache := v1.Group("/cache")
	cache.Use(authMiddleware.RequireStaff())
	cache.DELETE("", dashboardHandler.ClearCache)

	// Host-page lifecycle beacons
	v1.POST("/events/:event", eventsHandler.Publish)

	return e
}
