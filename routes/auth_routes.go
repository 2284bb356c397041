package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/salesapp_backend/controllers"
	"github.com/HSouheill/salesapp_backend/repositories"
)

// RegisterAuthRoutes sets up registration, login and password routes
func RegisterAuthRoutes(e *echo.Echo, store *repositories.Store, opts Options) {
	authController := controllers.NewAuthController(store.Users, opts.LoginMatchMode, opts.Logger)
	passwordController := controllers.NewPasswordController(store.Users, opts.Notifier, opts.Logger)

	e.POST("/register", authController.Register)
	e.POST("/login", authController.Login)
	e.POST("/change-password", authController.ChangePassword)
	e.POST("/forgot-password", passwordController.ForgotPassword)
	e.POST("/reset-password", passwordController.ResetPassword)
}
