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

// receiptHandler handles HTTP requests related to stock receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{
		receiptService: rs,
	}
}

// registerReceiptRoutes registers routes related to stock receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:id", h.getReceipt)
	}
}

// createReceipt godoc
// @Summary Record a stock receipt
// @Description Appends an immutable receipt record and increments the product's stock atomically
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to record receipt"
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record receipt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record receipt"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// getReceipt godoc
// @Summary Get a stock receipt by ID
// @Description Retrieves a single receipt with its product snapshot
// @Tags receipts
// @Produce  json
// @Param   id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} map[string]string "Receipt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve receipt"
// @Router /receipts/{id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		} else {
			logger.Error("Failed to get receipt", slog.String("receipt_id", receiptID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// listReceipts godoc
// @Summary List stock receipts
// @Description Retrieves a page of receipts newest first, optionally filtered to one product
// @Tags receipts
// @Produce  json
// @Param   productID query string false "Filter by product ID"
// @Param   limit query int false "Page size (default 10, max 100)"
// @Param   nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to list receipts"
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.receiptService.ListReceipts(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list receipts", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receipts"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
