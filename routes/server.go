package routes

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/middleware"
	"github.com/HSouheill/salesapp_backend/repositories"
	"github.com/HSouheill/salesapp_backend/utils"
)

// NewServer builds the echo instance with the middleware stack and every route
func NewServer(store *repositories.Store, opts Options, corsOrigins []string) *echo.Echo {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = utils.NewValidator()

	e.Use(echoMiddleware.Recover())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger.Named("http")))
	e.Use(middleware.CORS(corsOrigins))

	SetupRoutes(e, store, opts)
	return e
}
