package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hqtran/shop_inventory_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	productRepo := newPgxProductRepository(dbPool)
	receiptRepo := newPgxReceiptRepository(dbPool)
	saleRepo := newPgxSaleRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProductRepo:   productRepo,
		ReceiptRepo:   receiptRepo,
		SaleRepo:      saleRepo,
		ReportingRepo: reportingRepo,
	}
}
