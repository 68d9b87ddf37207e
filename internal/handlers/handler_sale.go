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

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{
		saleService: ss,
	}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
	}
}

// createSale godoc
// @Summary Create a sale
// @Description Records a multi-line sale, checking and decrementing stock atomically
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Insufficient stock"
// @Failure 500 {object} map[string]string "Failed to create sale"
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		var stockErr *apperrors.InsufficientStockError
		if errors.As(err, &stockErr) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     stockErr.Error(),
				"productID": stockErr.ProductID,
				"available": stockErr.Available,
				"requested": stockErr.Requested,
			})
		} else if errors.Is(err, apperrors.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create sale in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale by ID
// @Description Retrieves a sale invoice with all its lines and product snapshots
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to retrieve sale"
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else {
			logger.Error("Failed to get sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sale"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// listSales godoc
// @Summary List sales
// @Description Retrieves a page of sale headers newest first, each with its line count
// @Tags sales
// @Produce  json
// @Param   limit query int false "Page size (default 10, max 100)"
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list sales", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
