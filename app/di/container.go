package di

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/sixtyseconds/ai-development-hub/app/cache"
	"github.com/sixtyseconds/ai-development-hub/app/config"
	"github.com/sixtyseconds/ai-development-hub/app/driver/supabase"
	"github.com/sixtyseconds/ai-development-hub/app/gateway"
	"github.com/sixtyseconds/ai-development-hub/app/lifecycle"
	"github.com/sixtyseconds/ai-development-hub/app/port"
	"github.com/sixtyseconds/ai-development-hub/app/rest"
	"github.com/sixtyseconds/ai-development-hub/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	Supabase *supabase.Client

	// Gateways
	AuthGateway port.AuthGateway

	// Infrastructure
	Cache     *cache.Cache
	Lifecycle *lifecycle.Notifier
	Navigator *lifecycle.HistoryNavigator

	// Usecases
	QueryUsecase *usecase.QueryUsecase
	AuthUsecase  *usecase.AuthUsecase

	lifecycleCancel func()
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	container.Supabase = supabase.NewClient(cfg, logger)

	// Initialize gateways
	container.AuthGateway = gateway.NewAuthGateway(container.Supabase, logger)

	// Initialize infrastructure
	container.Cache = cache.NewWithTTL(cfg.CacheTTL, logger)
	container.Lifecycle = lifecycle.NewNotifier(logger)
	container.Navigator = lifecycle.NewHistoryNavigator(port.PathLogin, container.Lifecycle, logger)

	// Initialize usecases
	container.QueryUsecase = usecase.NewQueryUsecase(container.Cache, container.Supabase, logger)
	container.AuthUsecase = usecase.NewAuthUsecase(container.AuthGateway, container.QueryUsecase, container.Navigator, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// Start runs the auth bootstrap and wires lifecycle events: every
// host-page transition drops the whole cache, and a tab becoming visible
// additionally re-validates the session.
func (c *Container) Start(ctx context.Context) {
	c.lifecycleCancel = c.Lifecycle.Subscribe(func(event lifecycle.Event) {
		c.Cache.Clear()
		if event == lifecycle.EventVisible {
			c.AuthUsecase.RefreshSession(ctx)
		}
	})

	c.AuthUsecase.Start(ctx)
}

// Close tears down subscriptions held by the container
func (c *Container) Close() {
	if c.lifecycleCancel != nil {
		c.lifecycleCancel()
		c.lifecycleCancel = nil
	}
	c.AuthUsecase.Close()
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:      c.Logger,
		Auth:        c.AuthUsecase,
		Queries:     c.QueryUsecase,
		Events:      c.Lifecycle,
		Health:      c.Supabase,
		EnableDebug: c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("full API router created")
	return router
}
