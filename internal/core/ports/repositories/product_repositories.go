package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

// ProductReader defines read operations for product data.
type ProductReader interface {
	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByCode retrieves a product by its user-facing code.
	FindProductByCode(ctx context.Context, code string) (*domain.Product, error)

	// ListProducts retrieves products newest first, optionally filtered by a
	// case-insensitive match over code and name.
	ListProducts(ctx context.Context, search string, limit, offset int) ([]domain.Product, error)

	// ListLowStockProducts retrieves all products with stock at or below their
	// alert level, ordered ascending by stock quantity.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data.
type ProductWriter interface {
	// SaveProduct inserts a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct overwrites the catalog fields of an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product. Deletion is blocked while any stock
	// receipt or sale line references it.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductStockManager defines the transactional stock primitives. Only the
// receipt and sale engines call these, always inside a transaction they own.
type ProductStockManager interface {
	// FindProductsForSaleForUpdate loads the products row-locked (FOR UPDATE)
	// so concurrent sales against the same products serialize. Returns the
	// found products keyed by ID; missing IDs are simply absent.
	FindProductsForSaleForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error)

	// AdjustStockInTx applies a stock delta as a single conditional update that
	// refuses to drive the counter negative.
	AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, delta int64) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductStockManager
}

// ProductRepositoryWithTx extends the facade with transaction capabilities.
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
