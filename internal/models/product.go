package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit timestamps for persisted rows.
type AuditFields struct {
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

// Product mirrors a row of the products table.
type Product struct {
	ProductID  string
	Code       string
	Name       string
	Unit       string
	CostPrice  decimal.Decimal
	SellPrice  decimal.Decimal
	StockQty   int64
	AlertLevel int64
	AuditFields
}
