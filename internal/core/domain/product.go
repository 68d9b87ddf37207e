package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry together with its live stock counter.
//
// StockQty is the only contended mutable field in the system: it is incremented
// by stock receipts and decremented by sales, always inside the same database
// transaction that records the corresponding immutable history row. It must
// never go negative.
type Product struct {
	ProductID  string          `json:"productID"` // Primary Key (UUID)
	Code       string          `json:"code"`      // User-facing code, globally unique
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`       // e.g. "chai", "box", "kg"
	CostPrice  decimal.Decimal `json:"costPrice"`  // Current purchase price
	SellPrice  decimal.Decimal `json:"sellPrice"`  // Current selling price
	StockQty   int64           `json:"stockQty"`   // Quantity on hand, >= 0
	AlertLevel int64           `json:"alertLevel"` // Low-stock threshold, default 10
	AuditFields
}

// Ref returns the display snapshot embedded in receipt and sale views.
func (p *Product) Ref() ProductRef {
	return ProductRef{
		ProductID: p.ProductID,
		Code:      p.Code,
		Name:      p.Name,
		Unit:      p.Unit,
	}
}

// IsLowStock reports whether the product has fallen to or below its alert level.
func (p *Product) IsLowStock() bool {
	return p.StockQty <= p.AlertLevel
}
