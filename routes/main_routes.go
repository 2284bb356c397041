package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/config"
	"github.com/HSouheill/salesapp_backend/controllers"
	"github.com/HSouheill/salesapp_backend/repositories"
)

// Options carries what the route groups need besides the store
type Options struct {
	LoginMatchMode config.LoginMatchMode
	Notifier       controllers.ResetNotifier
	Logger         *zap.Logger
}

// SetupRoutes configures all API routes by calling individual route registration functions
func SetupRoutes(e *echo.Echo, store *repositories.Store, opts Options) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.LoginMatchMode == "" {
		opts.LoginMatchMode = config.LoginMatchExact
	}

	RegisterStatusRoutes(e, store)
	RegisterAuthRoutes(e, store, opts)
	RegisterUserRoutes(e, store, opts.Logger)
	RegisterProductRoutes(e, store, opts.Logger)
	RegisterSalesRoutes(e, store, opts.Logger)
}

// RegisterStatusRoutes sets up the banner and health check
func RegisterStatusRoutes(e *echo.Echo, store *repositories.Store) {
	e.Match([]string{http.MethodGet, http.MethodHead}, "/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Sales backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{http.MethodGet, http.MethodHead}, "/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":   "unhealthy",
				"database": "unreachable",
			})
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})
}
