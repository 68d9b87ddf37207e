package services

import (
	"context"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	"github.com/hqtran/shop_inventory_app/internal/dto"
)

// ReceiptSvcFacade defines operations for recording and reading stock receipts.
type ReceiptSvcFacade interface {
	// CreateReceipt appends an immutable receipt record and increments the
	// product's stock counter atomically.
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.StockReceipt, error)

	// GetReceiptByID retrieves a single receipt with its product snapshot.
	GetReceiptByID(ctx context.Context, receiptID string) (*domain.StockReceipt, error)

	// ListReceipts retrieves a page of receipts, newest first.
	ListReceipts(ctx context.Context, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error)
}
