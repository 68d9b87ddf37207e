package repositories

import (
	"context"
	"time"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries. Historical
// figures derive exclusively from sales and sale_lines; the live products
// counter is only used for the total on-hand quantity.
type ReportingRepository interface {
	// GetDashboardStats returns today's revenue/profit/sale count (calendar
	// day [start, end) in the given location) plus the total stock on hand.
	GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error)

	// GetSalesReport returns time-bucketed revenue/profit/units-sold rows for
	// [start, end] (end inclusive of the whole day), ordered ascending by
	// bucket start. groupBy must be validated by the caller.
	GetSalesReport(ctx context.Context, start, end time.Time, groupBy domain.ReportGroupBy) ([]domain.SalesReportRow, error)
}
