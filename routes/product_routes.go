package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/controllers"
	"github.com/HSouheill/salesapp_backend/repositories"
)

// RegisterProductRoutes sets up inventory routes. The manager check happens in
// the handlers because the role travels in the body.
func RegisterProductRoutes(e *echo.Echo, store *repositories.Store, logger *zap.Logger) {
	productController := controllers.NewProductController(store.Products, logger)

	e.POST("/add-product", productController.AddProduct)
	e.GET("/products", productController.ListProducts)
	e.POST("/delete-product", productController.DeleteProduct)
}
