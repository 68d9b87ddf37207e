package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

// SaleReader defines read operations for sale data.
type SaleReader interface {
	// FindSaleByID retrieves a sale with all its lines and their product
	// display snapshots.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sale headers newest first using token pagination,
	// each carrying its line count. Returns the sales and a token for the
	// next page.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sale data.
type SaleWriter interface {
	// SaveSaleInTx inserts the sale header and all its lines inside the
	// caller's transaction. The stock decrements happen separately via
	// ProductStockManager so all effects commit or roll back together.
	SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale, lines []domain.SaleLine) error
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// SaleRepositoryWithTx extends the facade with transaction capabilities.
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
