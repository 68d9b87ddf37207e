package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockReceipt is an immutable record of goods received into stock.
//
// CostPrice is a snapshot of the purchase price at receipt time and is
// independent of the product's current cost price, so historical records stay
// accurate after later price edits. Receipts are never updated or deleted.
type StockReceipt struct {
	ReceiptID   string          `json:"receiptID"` // Primary Key (UUID)
	ProductID   string          `json:"productID"`
	Quantity    int64           `json:"quantity"`    // Units received, > 0
	CostPrice   decimal.Decimal `json:"costPrice"`   // Price per unit at receipt time
	ReceiptDate time.Time       `json:"receiptDate"` // Defaults to now, may be backdated
	CreatedAt   time.Time       `json:"createdAt"`

	// Product is populated on reads for display; nil on writes.
	Product *ProductRef `json:"product,omitempty"`
}
