package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable invoice header. Its totals are frozen at transaction
// time: TotalAmount and TotalProfit always equal the sums over its lines.
type Sale struct {
	SaleID      string          `json:"saleID"`   // Primary Key (UUID)
	SaleDate    time.Time       `json:"saleDate"` // Defaults to now, may be backdated
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
	AuditFields

	// Lines is populated on detail reads; empty on list reads.
	Lines []SaleLine `json:"lines,omitempty"`
	// LineCount is populated on list reads instead of the full lines.
	LineCount int `json:"lineCount,omitempty"`
}

// SaleLine is an immutable invoice line holding the financial snapshot for one
// product: the sell price in effect at the moment of sale and the profit
// derived from the cost price at that same moment. Later product price edits
// never change these values.
type SaleLine struct {
	LineID    string          `json:"lineID"` // Primary Key (UUID)
	SaleID    string          `json:"saleID"`
	ProductID string          `json:"productID"`
	Quantity  int64           `json:"quantity"`  // Units sold, > 0
	SellPrice decimal.Decimal `json:"sellPrice"` // Price per unit at sale time
	Profit    decimal.Decimal `json:"profit"`    // (sellPrice - costPrice) * quantity

	// Product is populated on reads for display; nil on writes.
	Product *ProductRef `json:"product,omitempty"`
}

// Amount returns the revenue contributed by this line (sellPrice * quantity).
func (l *SaleLine) Amount() decimal.Decimal {
	return l.SellPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// LineProfit computes the profit snapshot for a line at sale time.
func LineProfit(sellPrice, costPrice decimal.Decimal, quantity int64) decimal.Decimal {
	return sellPrice.Sub(costPrice).Mul(decimal.NewFromInt(quantity))
}
