package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HSouheill/salesapp_backend/models"
	"github.com/HSouheill/salesapp_backend/repositories"
	"github.com/HSouheill/salesapp_backend/security"
)

// ProductController manages the product inventory
type ProductController struct {
	products repositories.ProductRepository
	logger   *zap.Logger
}

// NewProductController creates a new product controller
func NewProductController(products repositories.ProductRepository, logger *zap.Logger) *ProductController {
	return &ProductController{
		products: products,
		logger:   logger.Named("product"),
	}
}

// AddProduct stores a product. Managers only.
func (pc *ProductController) AddProduct(c echo.Context) error {
	var req models.AddProductRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, pc.logger, err)
	}

	if err := security.Authorize(req.Role, models.RoleManager); err != nil {
		return respondError(c, pc.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	product := req.Product()
	if err := pc.products.Create(ctx, product); err != nil {
		return respondError(c, pc.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Product added", product))
}

// ListProducts returns every product
func (pc *ProductController) ListProducts(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	products, err := pc.products.List(ctx)
	if err != nil {
		return respondError(c, pc.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Products retrieved successfully", products))
}

// DeleteProduct removes a product by id. Managers only; an unknown id still succeeds.
func (pc *ProductController) DeleteProduct(c echo.Context) error {
	var req models.DeleteProductRequest
	if err := bindRequest(c, &req); err != nil {
		return respondError(c, pc.logger, err)
	}

	if err := security.Authorize(req.Role, models.RoleManager); err != nil {
		return respondError(c, pc.logger, err)
	}

	productID, err := models.ParseID(req.ID)
	if err != nil {
		return respondError(c, pc.logger, err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := pc.products.Delete(ctx, productID); err != nil {
		return respondError(c, pc.logger, err)
	}

	return c.JSON(http.StatusOK, models.OK("Product deleted", nil))
}
