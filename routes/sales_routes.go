package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/controllers"
	"github.com/HSouheill/salesapp_backend/repositories"
)

// RegisterSalesRoutes sets up sale recording routes
func RegisterSalesRoutes(e *echo.Echo, store *repositories.Store, logger *zap.Logger) {
	saleController := controllers.NewSaleController(store.Sales, logger)

	e.POST("/save-sale", saleController.SaveSale)
	e.GET("/sales", saleController.ListSales)
	e.GET("/get-sales", saleController.ListSales)
	e.POST("/update-sale", saleController.UpdateSale)
	e.POST("/delete-sale", saleController.DeleteSale)
}
