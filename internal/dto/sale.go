package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

// SaleItemRequest is one requested invoice line. The same product may appear
// on multiple lines; the engine aggregates quantities for the stock check but
// keeps the lines separate on the invoice.
type SaleItemRequest struct {
	ProductID string `json:"productID" binding:"required,uuid"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest defines the expected JSON body for creating a sale.
// SaleDate defaults to now and may be backdated.
type CreateSaleRequest struct {
	Items    []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	SaleDate *time.Time        `json:"saleDate"`
}

// ListSalesParams holds query parameters for listing sales.
type ListSalesParams struct {
	Limit     int     `form:"limit,default=10" binding:"omitempty,gte=1,lte=100"`
	NextToken *string `form:"nextToken"`
}

// SaleLineResponse defines the data returned for one invoice line.
type SaleLineResponse struct {
	LineID    string              `json:"lineID"`
	ProductID string              `json:"productID"`
	Quantity  int64               `json:"quantity"`
	SellPrice decimal.Decimal     `json:"sellPrice"`
	Profit    decimal.Decimal     `json:"profit"`
	Product   *ProductRefResponse `json:"product,omitempty"`
}

// SaleResponse defines the full data returned for a sale invoice.
type SaleResponse struct {
	SaleID      string             `json:"saleID"`
	SaleDate    time.Time          `json:"saleDate"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	TotalProfit decimal.Decimal    `json:"totalProfit"`
	CreatedAt   time.Time          `json:"createdAt"`
	Lines       []SaleLineResponse `json:"lines"`
}

// SaleListItem is the slim sale view used in listings.
type SaleListItem struct {
	SaleID      string          `json:"saleID"`
	SaleDate    time.Time       `json:"saleDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
	CreatedAt   time.Time       `json:"createdAt"`
	LineCount   int             `json:"lineCount"`
}

// ListSalesResponse wraps a page of sales with the next-page token.
type ListSalesResponse struct {
	Sales     []SaleListItem `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToSaleLineResponse converts a domain.SaleLine to its response DTO.
func ToSaleLineResponse(l *domain.SaleLine) SaleLineResponse {
	return SaleLineResponse{
		LineID:    l.LineID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		SellPrice: l.SellPrice,
		Profit:    l.Profit,
		Product:   toProductRefResponse(l.Product),
	}
}

// ToSaleResponse converts a domain.Sale with lines to its response DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(s.Lines))
	for i := range s.Lines {
		lines[i] = ToSaleLineResponse(&s.Lines[i])
	}
	return SaleResponse{
		SaleID:      s.SaleID,
		SaleDate:    s.SaleDate,
		TotalAmount: s.TotalAmount,
		TotalProfit: s.TotalProfit,
		CreatedAt:   s.CreatedAt,
		Lines:       lines,
	}
}

// ToSaleListItem converts a domain.Sale header to the slim list view.
func ToSaleListItem(s *domain.Sale) SaleListItem {
	return SaleListItem{
		SaleID:      s.SaleID,
		SaleDate:    s.SaleDate,
		TotalAmount: s.TotalAmount,
		TotalProfit: s.TotalProfit,
		CreatedAt:   s.CreatedAt,
		LineCount:   s.LineCount,
	}
}
