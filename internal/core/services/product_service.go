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

const (
	defaultAlertLevel = int64(10)
)

// productService provides product catalog and low-stock operations.
type productService struct {
	productRepo portsrepo.ProductRepositoryWithTx
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryWithTx) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: productRepo,
	}
}

// Ensure productService implements the portssvc.ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

func validatePrices(costPrice, sellPrice decimal.Decimal) error {
	if costPrice.IsNegative() {
		return fmt.Errorf("%w: costPrice must not be negative", apperrors.ErrValidation)
	}
	if sellPrice.IsNegative() {
		return fmt.Errorf("%w: sellPrice must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// CreateProduct registers a new product. The code must be unique across the
// whole catalog; a collision surfaces as ErrDuplicate from the repository.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validatePrices(req.CostPrice, req.SellPrice); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	stockQty := int64(0)
	if req.StockQty != nil {
		stockQty = *req.StockQty
	}
	alertLevel := defaultAlertLevel
	if req.AlertLevel != nil {
		alertLevel = *req.AlertLevel
	}

	product := domain.Product{
		ProductID:  uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Unit:       req.Unit,
		CostPrice:  req.CostPrice,
		SellPrice:  req.SellPrice,
		StockQty:   stockQty,
		AlertLevel: alertLevel,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("code", req.Code), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("code", product.Code))
	return &product, nil
}

// GetProductByID retrieves a single product.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// ListProducts retrieves a page of products.
func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx, params.Search, params.Limit, params.Offset())
}

// ListLowStockProducts retrieves products at or below their alert level.
func (s *productService) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListLowStockProducts(ctx)
}

// UpdateProduct applies a partial update to catalog fields. Price edits only
// affect future sales: history rows carry their own frozen snapshots. A stock
// overwrite through here is a manual correction outside the ledger.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.SellPrice != nil {
		product.SellPrice = *req.SellPrice
	}
	if req.StockQty != nil {
		if *req.StockQty < 0 {
			return nil, fmt.Errorf("%w: stockQty must not be negative", apperrors.ErrValidation)
		}
		product.StockQty = *req.StockQty
	}
	if req.AlertLevel != nil {
		product.AlertLevel = *req.AlertLevel
	}

	if err := validatePrices(product.CostPrice, product.SellPrice); err != nil {
		return nil, err
	}

	product.LastUpdatedAt = time.Now().UTC()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("product_id", productID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Product updated", slog.String("product_id", productID))
	return product, nil
}

// DeleteProduct removes a product with no history. Products referenced by
// receipts or sale lines are protected by the restrict foreign keys; the
// repository reports that as ErrDependencyExists.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		logger.Warn("Failed to delete product", slog.String("product_id", productID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Product deleted", slog.String("product_id", productID))
	return nil
}
