package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hqtran/shop_inventory_app/internal/apperrors"
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	portsrepo "github.com/hqtran/shop_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/hqtran/shop_inventory_app/internal/core/ports/services"
	"github.com/hqtran/shop_inventory_app/internal/dto"
	"github.com/hqtran/shop_inventory_app/internal/middleware"
)

// saleService provides the sale transaction engine and invoice reads.
type saleService struct {
	saleRepo    portsrepo.SaleRepositoryWithTx
	productRepo portsrepo.ProductRepositoryWithTx
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepositoryWithTx, productRepo portsrepo.ProductRepositoryWithTx) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// Ensure saleService implements the portssvc.SaleSvcFacade interface
var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// aggregateQuantities sums requested quantities per product so a product
// appearing on several lines is stock-checked once against its combined total.
// The returned ID slice preserves first-appearance order.
func aggregateQuantities(items []dto.SaleItemRequest) (map[string]int64, []string) {
	required := make(map[string]int64, len(items))
	orderedIDs := make([]string, 0, len(items))
	for _, item := range items {
		if _, seen := required[item.ProductID]; !seen {
			orderedIDs = append(orderedIDs, item.ProductID)
		}
		required[item.ProductID] += item.Quantity
	}
	return required, orderedIDs
}

// CreateSale runs the whole sale as one transaction: lock the product rows,
// check stock against the aggregated quantities, freeze prices and profit on
// the lines, decrement the counters and persist the invoice. Any failure rolls
// everything back, so a sale either fully happens or leaves no trace.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: sale must have at least one item", apperrors.ErrValidation)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for product %s", apperrors.ErrValidation, item.ProductID)
		}
	}

	required, productIDs := aggregateQuantities(req.Items)

	now := time.Now().UTC()
	saleDate := now
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}
	saleID := uuid.NewString()

	tx, err := s.saleRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op once the transaction is committed.
	defer s.saleRepo.Rollback(ctx, tx)

	// Lock the product rows. Concurrent sales touching the same products
	// queue up here, so each one checks stock against committed state.
	products, err := s.productRepo.FindProductsForSaleForUpdate(ctx, tx, productIDs)
	if err != nil {
		logger.Error("Failed to lock products for sale", slog.String("error", err.Error()))
		return nil, err
	}

	for _, id := range productIDs {
		product, found := products[id]
		if !found {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, id)
		}
		if product.StockQty < required[id] {
			return nil, &apperrors.InsufficientStockError{
				ProductID:   product.ProductID,
				ProductName: product.Name,
				Available:   product.StockQty,
				Requested:   required[id],
			}
		}
	}

	// Build the lines with prices and profit frozen from the locked rows.
	lines := make([]domain.SaleLine, len(req.Items))
	totalAmount := decimal.Zero
	totalProfit := decimal.Zero
	for i, item := range req.Items {
		product := products[item.ProductID]
		profit := domain.LineProfit(product.SellPrice, product.CostPrice, item.Quantity)
		lines[i] = domain.SaleLine{
			LineID:    uuid.NewString(),
			SaleID:    saleID,
			ProductID: product.ProductID,
			Quantity:  item.Quantity,
			SellPrice: product.SellPrice,
			Profit:    profit,
		}
		totalAmount = totalAmount.Add(lines[i].Amount())
		totalProfit = totalProfit.Add(profit)
	}

	sale := domain.Sale{
		SaleID:      saleID,
		SaleDate:    saleDate,
		TotalAmount: totalAmount,
		TotalProfit: totalProfit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	for _, id := range productIDs {
		if err := s.productRepo.AdjustStockInTx(ctx, tx, id, -required[id]); err != nil {
			logger.Error("Failed to decrement stock for sale", slog.String("product_id", id), slog.String("error", err.Error()))
			return nil, err
		}
	}

	if err := s.saleRepo.SaveSaleInTx(ctx, tx, sale, lines); err != nil {
		logger.Error("Failed to save sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.saleRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Sale recorded",
		slog.String("sale_id", saleID),
		slog.Int("line_count", len(lines)),
		slog.String("total_amount", totalAmount.String()),
	)

	// Attach display snapshots from the rows read under lock.
	for i := range lines {
		product := products[lines[i].ProductID]
		ref := product.Ref()
		lines[i].Product = &ref
	}
	sale.Lines = lines
	sale.LineCount = len(lines)
	return &sale, nil
}

// GetSaleByID retrieves a sale with all its lines and product snapshots.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, saleID)
}

// ListSales retrieves a page of sale headers, newest first.
func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	sales, nextToken, err := s.saleRepo.ListSales(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SaleListItem, len(sales))
	for i := range sales {
		items[i] = dto.ToSaleListItem(&sales[i])
	}
	return &dto.ListSalesResponse{
		Sales:     items,
		NextToken: nextToken,
	}, nil
}
