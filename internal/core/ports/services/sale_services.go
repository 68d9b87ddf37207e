package services

import (
	"context"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	"github.com/hqtran/shop_inventory_app/internal/dto"
)

// SaleSvcFacade defines operations for creating and reading sale invoices.
type SaleSvcFacade interface {
	// CreateSale validates stock, freezes prices and profit, decrements the
	// stock counters and persists the invoice with its lines, all in one
	// transaction. The whole sale succeeds or nothing is persisted.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)

	// GetSaleByID retrieves a sale with all its lines and product snapshots.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a page of sale headers, newest first.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
}
