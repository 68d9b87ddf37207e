package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hqtran/shop_inventory_app/internal/apperrors"
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	portsrepo "github.com/hqtran/shop_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/hqtran/shop_inventory_app/internal/core/ports/services"
	"github.com/hqtran/shop_inventory_app/internal/dto"
	"github.com/hqtran/shop_inventory_app/internal/middleware"
)

// receiptService provides stock receipt recording and history reads.
type receiptService struct {
	receiptRepo portsrepo.ReceiptRepositoryWithTx
	productRepo portsrepo.ProductRepositoryWithTx
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryWithTx, productRepo portsrepo.ProductRepositoryWithTx) portssvc.ReceiptSvcFacade {
	return &receiptService{
		receiptRepo: receiptRepo,
		productRepo: productRepo,
	}
}

// Ensure receiptService implements the portssvc.ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// CreateReceipt appends an immutable receipt record and increments the
// product's stock counter in one transaction. The receipt's cost price is a
// snapshot independent of the product's current cost price.
func (s *receiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.StockReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if !req.CostPrice.IsPositive() {
		return nil, fmt.Errorf("%w: costPrice must be positive", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	receiptDate := now
	if req.ReceiptDate != nil {
		receiptDate = *req.ReceiptDate
	}

	receipt := domain.StockReceipt{
		ReceiptID:   uuid.NewString(),
		ProductID:   product.ProductID,
		Quantity:    req.Quantity,
		CostPrice:   req.CostPrice,
		ReceiptDate: receiptDate,
		CreatedAt:   now,
	}

	tx, err := s.receiptRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op once the transaction is committed.
	defer s.receiptRepo.Rollback(ctx, tx)

	if err := s.receiptRepo.SaveReceiptInTx(ctx, tx, receipt); err != nil {
		logger.Error("Failed to save receipt", slog.String("product_id", req.ProductID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.productRepo.AdjustStockInTx(ctx, tx, product.ProductID, req.Quantity); err != nil {
		logger.Error("Failed to increment stock for receipt", slog.String("product_id", req.ProductID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.receiptRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Stock receipt recorded",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("product_id", product.ProductID),
		slog.Int64("quantity", req.Quantity),
	)

	ref := product.Ref()
	receipt.Product = &ref
	return &receipt, nil
}

// GetReceiptByID retrieves a single receipt with its product snapshot.
func (s *receiptService) GetReceiptByID(ctx context.Context, receiptID string) (*domain.StockReceipt, error) {
	return s.receiptRepo.FindReceiptByID(ctx, receiptID)
}

// ListReceipts retrieves a page of receipts, newest first. When a productID
// filter is given, it is verified first so an unknown product reports
// NotFound instead of an empty page.
func (s *receiptService) ListReceipts(ctx context.Context, params dto.ListReceiptsParams) (*dto.ListReceiptsResponse, error) {
	if params.ProductID != nil && *params.ProductID != "" {
		if _, err := s.productRepo.FindProductByID(ctx, *params.ProductID); err != nil {
			return nil, err
		}
	}

	receipts, nextToken, err := s.receiptRepo.ListReceipts(ctx, params.ProductID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListReceiptsResponse{
		Receipts:  dto.ToReceiptResponses(receipts),
		NextToken: nextToken,
	}, nil
}
