package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
)

// ReceiptReader defines read operations for stock receipt data.
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt with its product display snapshot.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.StockReceipt, error)

	// ListReceipts retrieves receipts newest first using token pagination,
	// optionally filtered to a single product. Returns the receipts and a
	// token for the next page.
	ListReceipts(ctx context.Context, productID *string, limit int, nextToken *string) ([]domain.StockReceipt, *string, error)
}

// ReceiptWriter defines write operations for stock receipt data.
type ReceiptWriter interface {
	// SaveReceiptInTx inserts a receipt row inside the caller's transaction.
	// The stock increment happens separately via ProductStockManager so both
	// effects commit or roll back together.
	SaveReceiptInTx(ctx context.Context, tx pgx.Tx, receipt domain.StockReceipt) error
}

// ReceiptRepositoryFacade combines all receipt repository interfaces.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}

// ReceiptRepositoryWithTx extends the facade with transaction capabilities.
type ReceiptRepositoryWithTx interface {
	ReceiptRepositoryFacade
	TransactionManager
}
