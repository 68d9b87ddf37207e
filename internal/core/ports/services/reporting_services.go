package services

import (
	"context"
	"time"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

// ReportingSvcFacade defines the read-only reporting operations.
type ReportingSvcFacade interface {
	// GetDashboard returns today's revenue/profit/sale count plus the total
	// quantity on hand across all products.
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)

	// GetSalesReport returns time-bucketed aggregates for [start, end]
	// (end inclusive of the whole day) with a summary reduced from the rows.
	GetSalesReport(ctx context.Context, start, end time.Time, groupBy domain.ReportGroupBy) (*domain.SalesReport, error)
}
