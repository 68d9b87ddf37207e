package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hqtran/shop_inventory_app/internal/apperrors"
	portssvc "github.com/hqtran/shop_inventory_app/internal/core/ports/services"
	"github.com/hqtran/shop_inventory_app/internal/dto"
	"github.com/hqtran/shop_inventory_app/internal/middleware"
)

// productHandler handles HTTP requests related to the product catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{
		productService: ps,
	}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/low-stock", h.listLowStockProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create a new product
// @Description Registers a new product with a unique code
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Product code already exists"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newProduct, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(newProduct))
}

// getProduct godoc
// @Summary Get a product by ID
// @Description Retrieves a single product with its current stock level
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product"
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to get product", slog.String("product_id", productID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Description Retrieves a page of products, optionally filtered by a search over code and name
// @Tags products
// @Produce  json
// @Param   search query string false "Case-insensitive search over code and name"
// @Param   limit query int false "Page size (default 10, max 100)"
// @Param   page query int false "1-based page number"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: dto.ToProductResponses(products)})
}

// listLowStockProducts godoc
// @Summary List low stock products
// @Description Retrieves all products at or below their alert level, most depleted first
// @Tags products
// @Produce  json
// @Success 200 {object} dto.ListProductsResponse
// @Failure 500 {object} map[string]string "Failed to list low stock products"
// @Router /products/low-stock [get]
func (h *productHandler) listLowStockProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.productService.ListLowStockProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list low stock products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list low stock products"})
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: dto.ToProductResponses(products)})
}

// updateProduct godoc
// @Summary Update a product
// @Description Applies a partial update to the catalog fields of a product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Product code already exists"
// @Failure 500 {object} map[string]string "Failed to update product"
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update product", slog.String("product_id", productID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Removes a product that has no receipt or sale history
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 204 "Product deleted"
// @Failure 400 {object} map[string]string "Product has receipt or sale history"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to delete product"
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	err := h.productService.DeleteProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else if errors.Is(err, apperrors.ErrDependencyExists) {
			// History rows reference this product; deleting would orphan them.
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete product", slog.String("product_id", productID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
