package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale mirrors a row of the sales table. LineCount is populated by list reads.
type Sale struct {
	SaleID        string
	SaleDate      time.Time
	TotalAmount   decimal.Decimal
	TotalProfit   decimal.Decimal
	CreatedAt     time.Time
	LastUpdatedAt time.Time
	LineCount     int
}

// SaleLine mirrors a row of the sale_lines table. The product display columns
// are populated by joined reads only.
type SaleLine struct {
	LineID    string
	SaleID    string
	ProductID string
	Quantity  int64
	SellPrice decimal.Decimal
	Profit    decimal.Decimal

	// Joined from products for responses.
	ProductCode string
	ProductName string
	ProductUnit string
}
