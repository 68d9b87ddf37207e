package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportGroupBy selects the time bucket for the sales report. Values mirror
// the PostgreSQL date_trunc field names and are whitelisted before use.
type ReportGroupBy string

const (
	GroupByDay     ReportGroupBy = "day"
	GroupByWeek    ReportGroupBy = "week"
	GroupByMonth   ReportGroupBy = "month"
	GroupByQuarter ReportGroupBy = "quarter"
	GroupByYear    ReportGroupBy = "year"
)

// Valid reports whether g is one of the supported bucket sizes.
func (g ReportGroupBy) Valid() bool {
	switch g {
	case GroupByDay, GroupByWeek, GroupByMonth, GroupByQuarter, GroupByYear:
		return true
	}
	return false
}

// DashboardStats is the live snapshot shown on the dashboard. The three
// "today" figures derive from immutable sale history; TotalStockQuantity is
// the sum of the live stock counters across all products.
type DashboardStats struct {
	RevenueToday       decimal.Decimal `json:"revenueToday"`
	ProfitToday        decimal.Decimal `json:"profitToday"`
	SalesCountToday    int64           `json:"salesCountToday"`
	TotalStockQuantity int64           `json:"totalStockQuantity"`
}

// SalesReportRow is one time bucket of the period report.
type SalesReportRow struct {
	Period         time.Time       `json:"period"` // Bucket start (date_trunc boundary)
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	TotalItemsSold int64           `json:"totalItemsSold"`
}

// SalesReportSummary aggregates all rows of a report. It is always computed by
// reducing over the rows, never by a second query, so summary and rows cannot
// disagree.
type SalesReportSummary struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	TotalItemsSold int64           `json:"totalItemsSold"`
}

// SalesReport is the full period report: bucketed rows plus their reduction.
type SalesReport struct {
	GroupBy   ReportGroupBy      `json:"groupBy"`
	StartDate time.Time          `json:"startDate"`
	EndDate   time.Time          `json:"endDate"`
	Summary   SalesReportSummary `json:"summary"`
	Rows      []SalesReportRow   `json:"rows"`
}
