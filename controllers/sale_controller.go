package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/models"
	"github.com/HSouheill/salesapp_backend/repositories"
)

// SaleController records sales. Totals are always computed here, never taken
// from the client.
type SaleController struct {
	sales  repositories.SaleRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewSaleController creates a new sale controller
func NewSaleController(sales repositories.SaleRepository, logger *zap.Logger) *SaleController {
	return &SaleController{
		sales:  sales,
		logger: logger.Named("sale"),
		now:    time.Now,
	}
}

// SaveSale stores a sale with total = quantity * price. Inventory is not touched.
func (sc *SaleController) SaveSale(c echo.Context) error {
	var req models.SaveSaleRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, sc.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	sale := models.NewSale(req.ProductName, req.Quantity.Float64(), req.Price.Float64(), req.UserID, sc.now())
	if err := sc.sales.Create(ctx, sale); err != nil {
		return respondError(c, sc.logger, err)
	}

	sc.logger.Debug("sale saved",
		zap.String("saleId", sale.ID.Hex()),
		zap.String("userId", sale.UserID),
		zap.Float64("total", sale.Total),
	)
	return c.JSON(http.StatusOK, models.OK("Sale saved", sale))
}

// ListSales returns every sale, newest first
func (sc *SaleController) ListSales(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	sales, err := sc.sales.List(ctx)
	if err != nil {
		return respondError(c, sc.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Sales retrieved successfully", sales))
}

// UpdateSale overwrites name, qty and rate and recomputes the total. An
// unknown id is a no-op.
func (sc *SaleController) UpdateSale(c echo.Context) error {
	var req models.UpdateSaleRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, sc.logger, err)
	}

	saleID, err := models.ParseID(req.ID)
	if err != nil {
		return respondError(c, sc.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	update := models.NewSaleUpdate(req.ProductName, req.Qty.Float64(), req.Rate.Float64())
	if err := sc.sales.Update(ctx, saleID, update); err != nil {
		return respondError(c, sc.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Sale updated", nil))
}

// DeleteSale removes a sale by id. An unknown id is a no-op.
func (sc *SaleController) DeleteSale(c echo.Context) error {
	var req models.DeleteSaleRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, sc.logger, err)
	}

	saleID, err := models.ParseID(req.ID)
	if err != nil {
		return respondError(c, sc.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := sc.sales.Delete(ctx, saleID); err != nil {
		return respondError(c, sc.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Sale deleted", nil))
}
