package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

// CreateProductRequest defines the expected JSON body for creating a product.
type CreateProductRequest struct {
	Code       string          `json:"code" binding:"required,max=50"`
	Name       string          `json:"name" binding:"required,max=255"`
	Unit       string          `json:"unit" binding:"required,max=50"`
	CostPrice  decimal.Decimal `json:"costPrice" binding:"required"`
	SellPrice  decimal.Decimal `json:"sellPrice" binding:"required"`
	StockQty   *int64          `json:"stockQty" binding:"omitempty,gte=0"`   // Defaults to 0
	AlertLevel *int64          `json:"alertLevel" binding:"omitempty,gte=0"` // Defaults to 10
}

// UpdateProductRequest defines the partial update body. Nil fields are left
// unchanged. StockQty here is a direct overwrite used for corrections.
type UpdateProductRequest struct {
	Code       *string          `json:"code" binding:"omitempty,max=50"`
	Name       *string          `json:"name" binding:"omitempty,max=255"`
	Unit       *string          `json:"unit" binding:"omitempty,max=50"`
	CostPrice  *decimal.Decimal `json:"costPrice"`
	SellPrice  *decimal.Decimal `json:"sellPrice"`
	StockQty   *int64           `json:"stockQty" binding:"omitempty,gte=0"`
	AlertLevel *int64           `json:"alertLevel" binding:"omitempty,gte=0"`
}

// ListProductsParams holds query parameters for listing products.
type ListProductsParams struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,gte=1,lte=100"`
	Page   int    `form:"page,default=1" binding:"omitempty,gte=1"`
}

// Offset converts the 1-based page number into a row offset.
func (p ListProductsParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID  string          `json:"productID"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	CostPrice  decimal.Decimal `json:"costPrice"`
	SellPrice  decimal.Decimal `json:"sellPrice"`
	StockQty   int64           `json:"stockQty"`
	AlertLevel int64           `json:"alertLevel"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ListProductsResponse wraps a page of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain.Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:  p.ProductID,
		Code:       p.Code,
		Name:       p.Name,
		Unit:       p.Unit,
		CostPrice:  p.CostPrice,
		SellPrice:  p.SellPrice,
		StockQty:   p.StockQty,
		AlertLevel: p.AlertLevel,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.LastUpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
