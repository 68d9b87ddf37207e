package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

// SalesReportQuery holds the query parameters for the period report. Dates use
// the dateonly format (YYYY-MM-DD); endDate is inclusive of the whole day.
type SalesReportQuery struct {
	StartDate string `form:"startDate" binding:"required,dateonly"`
	EndDate   string `form:"endDate" binding:"required,dateonly"`
	GroupBy   string `form:"groupBy,default=day" binding:"omitempty,oneof=day week month quarter year"`
}

// DashboardResponse defines the dashboard snapshot payload.
type DashboardResponse struct {
	RevenueToday       decimal.Decimal `json:"revenueToday"`
	ProfitToday        decimal.Decimal `json:"profitToday"`
	SalesCountToday    int64           `json:"salesCountToday"`
	TotalStockQuantity int64           `json:"totalStockQuantity"`
}

// SalesReportRowResponse is one time bucket of the period report payload.
type SalesReportRowResponse struct {
	Period         time.Time       `json:"period"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	TotalItemsSold int64           `json:"totalItemsSold"`
}

// SalesReportResponse defines the full period report payload.
type SalesReportResponse struct {
	GroupBy   string                   `json:"groupBy"`
	StartDate time.Time                `json:"startDate"`
	EndDate   time.Time                `json:"endDate"`
	Summary   SalesReportRowSummary    `json:"summary"`
	Rows      []SalesReportRowResponse `json:"rows"`
}

// SalesReportRowSummary is the reduction over all report rows.
type SalesReportRowSummary struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	TotalItemsSold int64           `json:"totalItemsSold"`
}

// ToDashboardResponse converts domain dashboard stats to the payload DTO.
func ToDashboardResponse(s *domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		RevenueToday:       s.RevenueToday,
		ProfitToday:        s.ProfitToday,
		SalesCountToday:    s.SalesCountToday,
		TotalStockQuantity: s.TotalStockQuantity,
	}
}

// ToSalesReportResponse converts a domain report to the payload DTO.
func ToSalesReportResponse(r *domain.SalesReport) SalesReportResponse {
	rows := make([]SalesReportRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = SalesReportRowResponse{
			Period:         row.Period,
			TotalRevenue:   row.TotalRevenue,
			TotalProfit:    row.TotalProfit,
			TotalItemsSold: row.TotalItemsSold,
		}
	}
	return SalesReportResponse{
		GroupBy:   string(r.GroupBy),
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Summary: SalesReportRowSummary{
			TotalRevenue:   r.Summary.TotalRevenue,
			TotalProfit:    r.Summary.TotalProfit,
			TotalItemsSold: r.Summary.TotalItemsSold,
		},
		Rows: rows,
	}
}
