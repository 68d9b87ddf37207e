package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

// CreateReceiptRequest defines the expected JSON body for recording a stock
// receipt. ReceiptDate defaults to now and may be backdated.
type CreateReceiptRequest struct {
	ProductID   string          `json:"productID" binding:"required,uuid"`
	Quantity    int64           `json:"quantity" binding:"required,gt=0"`
	CostPrice   decimal.Decimal `json:"costPrice" binding:"required"`
	ReceiptDate *time.Time      `json:"receiptDate"`
}

// ListReceiptsParams holds query parameters for listing receipts.
type ListReceiptsParams struct {
	ProductID *string `form:"productID" binding:"omitempty,uuid"`
	Limit     int     `form:"limit,default=10" binding:"omitempty,gte=1,lte=100"`
	NextToken *string `form:"nextToken"`
}

// ProductRefResponse is the embedded product snapshot in receipt/sale views.
type ProductRefResponse struct {
	ProductID string `json:"productID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
}

// ReceiptResponse defines the data returned for a stock receipt.
type ReceiptResponse struct {
	ReceiptID   string              `json:"receiptID"`
	ProductID   string              `json:"productID"`
	Quantity    int64               `json:"quantity"`
	CostPrice   decimal.Decimal     `json:"costPrice"`
	ReceiptDate time.Time           `json:"receiptDate"`
	CreatedAt   time.Time           `json:"createdAt"`
	Product     *ProductRefResponse `json:"product,omitempty"`
}

// ListReceiptsResponse wraps a page of receipts with the next-page token.
type ListReceiptsResponse struct {
	Receipts  []ReceiptResponse `json:"receipts"`
	NextToken *string           `json:"nextToken,omitempty"`
}

func toProductRefResponse(ref *domain.ProductRef) *ProductRefResponse {
	if ref == nil {
		return nil
	}
	return &ProductRefResponse{
		ProductID: ref.ProductID,
		Code:      ref.Code,
		Name:      ref.Name,
		Unit:      ref.Unit,
	}
}

// ToReceiptResponse converts a domain.StockReceipt to its response DTO.
func ToReceiptResponse(r *domain.StockReceipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:   r.ReceiptID,
		ProductID:   r.ProductID,
		Quantity:    r.Quantity,
		CostPrice:   r.CostPrice,
		ReceiptDate: r.ReceiptDate,
		CreatedAt:   r.CreatedAt,
		Product:     toProductRefResponse(r.Product),
	}
}

// ToReceiptResponses converts a slice of domain receipts.
func ToReceiptResponses(receipts []domain.StockReceipt) []ReceiptResponse {
	responses := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		responses[i] = ToReceiptResponse(&receipts[i])
	}
	return responses
}
