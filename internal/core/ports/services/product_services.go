package services

import (
	"context"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	"github.com/hqtran/shop_inventory_app/internal/dto"
)

// ProductReaderSvc defines read operations for the product catalog.
type ProductReaderSvc interface {
	// GetProductByID retrieves a single product.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a page of products, optionally filtered by a
	// case-insensitive search over code and name.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)

	// ListLowStockProducts retrieves products at or below their alert level,
	// ordered ascending by stock quantity.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for the product catalog.
type ProductWriterSvc interface {
	// CreateProduct registers a new product with a unique code.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct applies a partial update to catalog fields. A stock
	// overwrite through this path is a manual correction, not a ledger event.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a product with no receipt or sale history.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductSvcFacade combines all product service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
