package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hqtran/shop_inventory_app/internal/apperrors"
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	portsrepo "github.com/hqtran/shop_inventory_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for aggregate queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDashboardStats returns today's totals from sale history plus the live
// stock sum. "Today" is the calendar day of now in its location, passed as an
// explicit [start, end) window so the DB session timezone never matters.
func (r *PgxReportingRepository) GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := &domain.DashboardStats{}

	salesQuery := `
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(total_profit), 0), COUNT(*)
		FROM sales
		WHERE sale_date >= $1 AND sale_date < $2;
	`
	err := r.Pool.QueryRow(ctx, salesQuery, dayStart, dayEnd).Scan(
		&stats.RevenueToday,
		&stats.ProfitToday,
		&stats.SalesCountToday,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query today's sales totals: %w", err)
	}

	stockQuery := `SELECT COALESCE(SUM(stock_qty), 0) FROM products;`
	if err := r.Pool.QueryRow(ctx, stockQuery).Scan(&stats.TotalStockQuantity); err != nil {
		return nil, fmt.Errorf("failed to query total stock quantity: %w", err)
	}

	return stats, nil
}

// GetSalesReport returns bucketed revenue/profit/units rows for the period.
// Revenue and profit come from the sale headers; units come from a
// pre-aggregated per-sale subquery so multi-line invoices do not multiply the
// header amounts through the join. The end bound is extended by one day to
// keep the whole final calendar day inside the window.
func (r *PgxReportingRepository) GetSalesReport(ctx context.Context, start, end time.Time, groupBy domain.ReportGroupBy) ([]domain.SalesReportRow, error) {
	if !groupBy.Valid() {
		return nil, fmt.Errorf("%w: invalid groupBy %q", apperrors.ErrValidation, groupBy)
	}

	// groupBy is whitelisted above; date_trunc's field cannot be a bind
	// parameter so it is interpolated here.
	query := fmt.Sprintf(`
		SELECT date_trunc('%s', s.sale_date) AS period,
		       COALESCE(SUM(s.total_amount), 0) AS total_revenue,
		       COALESCE(SUM(s.total_profit), 0) AS total_profit,
		       COALESCE(SUM(u.units), 0) AS total_items_sold
		FROM sales s
		JOIN (
			SELECT sale_id, SUM(quantity) AS units
			FROM sale_lines
			GROUP BY sale_id
		) u ON u.sale_id = s.sale_id
		WHERE s.sale_date >= $1 AND s.sale_date < $2
		GROUP BY period
		ORDER BY period ASC;
	`, groupBy)

	rows, err := r.Pool.Query(ctx, query, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to query sales report: %w", err)
	}
	defer rows.Close()

	reportRows := []domain.SalesReportRow{}
	for rows.Next() {
		var row domain.SalesReportRow
		err := rows.Scan(&row.Period, &row.TotalRevenue, &row.TotalProfit, &row.TotalItemsSold)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reportRows = append(reportRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reportRows, nil
}
