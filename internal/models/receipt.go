package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockReceipt mirrors a row of the stock_receipts table. The product display
// columns are populated by joined reads only.
type StockReceipt struct {
	ReceiptID   string
	ProductID   string
	Quantity    int64
	CostPrice   decimal.Decimal
	ReceiptDate time.Time
	CreatedAt   time.Time

	// Joined from products for responses.
	ProductCode string
	ProductName string
	ProductUnit string
}
