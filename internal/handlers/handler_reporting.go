package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hqtran/shop_inventory_app/internal/apperrors"
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	portssvc "github.com/hqtran/shop_inventory_app/internal/core/ports/services"
	"github.com/hqtran/shop_inventory_app/internal/dto"
	"github.com/hqtran/shop_inventory_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the dashboard and period reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the read-only reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/sales", h.getSalesReport)
	}
}

// getDashboard godoc
// @Summary Get dashboard statistics
// @Description Returns today's revenue, profit and sale count plus the total stock on hand
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.GetDashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(stats))
}

// getSalesReport godoc
// @Summary Get a sales report
// @Description Returns time-bucketed revenue, profit and units sold for a date range
// @Tags reports
// @Produce  json
// @Param   startDate query string true "Range start (YYYY-MM-DD)"
// @Param   endDate query string true "Range end, inclusive (YYYY-MM-DD)"
// @Param   groupBy query string false "Bucket size: day, week, month, quarter or year (default day)"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build sales report"
// @Router /reports/sales [get]
func (h *reportingHandler) getSalesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.SalesReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	// The dateonly binding already guarantees these parse.
	start, err := time.Parse(time.DateOnly, query.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate: " + err.Error()})
		return
	}
	end, err := time.Parse(time.DateOnly, query.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate: " + err.Error()})
		return
	}

	report, err := h.reportingService.GetSalesReport(c.Request.Context(), start, end, domain.ReportGroupBy(query.GroupBy))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build sales report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesReportResponse(report))
}
