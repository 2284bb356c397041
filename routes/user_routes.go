package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/controllers"
	"github.com/HSouheill/salesapp_backend/middleware"
	"github.com/HSouheill/salesapp_backend/models"
	"github.com/HSouheill/salesapp_backend/repositories"
)

// RegisterUserRoutes sets up profile and user listing routes
func RegisterUserRoutes(e *echo.Echo, store *repositories.Store, logger *zap.Logger) {
	userController := controllers.NewUserController(store.Users, logger)

	e.GET("/profile/:id", userController.GetProfile)
	e.POST("/update-profile", userController.UpdateProfile)

	// The caller states its role in ?role=
	e.GET("/users", userController.ListSalespersons,
		middleware.RequireRole(models.RoleManager, middleware.RoleFromQuery("role"), logger))
}
