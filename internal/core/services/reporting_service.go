package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hqtran/shop_inventory_app/internal/apperrors"
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	portsrepo "github.com/hqtran/shop_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/hqtran/shop_inventory_app/internal/core/ports/services"
	"github.com/hqtran/shop_inventory_app/internal/middleware"
)

// reportingService provides the derived dashboard and period reports. It only
// reads: every figure is recomputed from sale history on request.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboard returns today's totals plus the quantity on hand.
func (s *reportingService) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	return s.reportingRepo.GetDashboardStats(ctx, time.Now())
}

// GetSalesReport returns bucketed aggregates for the period with a summary
// reduced from the rows, never queried separately, so the two always agree.
func (s *reportingService) GetSalesReport(ctx context.Context, start, end time.Time, groupBy domain.ReportGroupBy) (*domain.SalesReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !groupBy.Valid() {
		return nil, fmt.Errorf("%w: invalid groupBy %q", apperrors.ErrValidation, groupBy)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.GetSalesReport(ctx, start, end, groupBy)
	if err != nil {
		logger.Error("Failed to build sales report", slog.String("error", err.Error()))
		return nil, err
	}

	report := &domain.SalesReport{
		GroupBy:   groupBy,
		StartDate: start,
		EndDate:   end,
		Rows:      rows,
	}
	for _, row := range rows {
		report.Summary.TotalRevenue = report.Summary.TotalRevenue.Add(row.TotalRevenue)
		report.Summary.TotalProfit = report.Summary.TotalProfit.Add(row.TotalProfit)
		report.Summary.TotalItemsSold += row.TotalItemsSold
	}
	return report, nil
}
