package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	portsrepo "github.com/hqtran/shop_inventory_app/internal/core/ports/repositories"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

// Ensure MockProductRepository implements portsrepo.ProductRepositoryWithTx
var _ portsrepo.ProductRepositoryWithTx = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, search string, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsForSaleForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, tx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, delta int64) error {
	args := m.Called(ctx, tx, productID, delta)
	return args.Error(0)
}

func (m *MockProductRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockProductRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockProductRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ReceiptRepository ---
type MockReceiptRepository struct {
	mock.Mock
}

var _ portsrepo.ReceiptRepositoryWithTx = (*MockReceiptRepository)(nil)

func (m *MockReceiptRepository) SaveReceiptInTx(ctx context.Context, tx pgx.Tx, receipt domain.StockReceipt) error {
	args := m.Called(ctx, tx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.StockReceipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockReceipt), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, productID *string, limit int, nextToken *string) ([]domain.StockReceipt, *string, error) {
	args := m.Called(ctx, productID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.StockReceipt), returnedNextToken, args.Error(2)
}

func (m *MockReceiptRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockReceiptRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockReceiptRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryWithTx = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale, lines []domain.SaleLine) error {
	args := m.Called(ctx, tx, sale, lines)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Sale), returnedNextToken, args.Error(2)
}

func (m *MockSaleRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockSaleRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSaleRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockReportingRepository) GetSalesReport(ctx context.Context, start, end time.Time, groupBy domain.ReportGroupBy) ([]domain.SalesReportRow, error) {
	args := m.Called(ctx, start, end, groupBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesReportRow), args.Error(1)
}
