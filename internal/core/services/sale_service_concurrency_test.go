package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hqtran/shop_inventory_app/internal/apperrors"
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	portsrepo "github.com/hqtran/shop_inventory_app/internal/core/ports/repositories"
	"github.com/hqtran/shop_inventory_app/internal/core/services"
	"github.com/hqtran/shop_inventory_app/internal/dto"
)

// fakeTx identifies one transaction opened on a fakeTxStore. The embedded
// pgx.Tx is never called; the service only hands the value back to the store.
type fakeTx struct {
	pgx.Tx
	seq uint64
}

// fakeTxStore is an in-memory product and sale store whose transactions
// serialize on a mutex, the way row locks serialize concurrent sales in
// PostgreSQL. Begin blocks until the previous transaction commits or rolls
// back; uncommitted stock changes are discarded on rollback. Commit and
// Rollback act only on the transaction they were handed, so a deferred
// Rollback arriving after Commit cannot touch a transaction another
// goroutine has since opened.
type fakeTxStore struct {
	mu sync.Mutex // held for the lifetime of the open transaction

	stateMu sync.Mutex // guards seq bookkeeping across goroutines
	nextSeq uint64
	openSeq uint64 // seq of the open transaction, 0 when none

	products map[string]domain.Product // committed state
	pending  map[string]domain.Product // state visible inside the open tx

	savedSales int
}

var (
	_ portsrepo.ProductRepositoryWithTx = (*fakeTxStore)(nil)
	_ portsrepo.SaleRepositoryWithTx    = (*fakeTxStore)(nil)
)

func newFakeTxStore(products ...domain.Product) *fakeTxStore {
	s := &fakeTxStore{products: make(map[string]domain.Product)}
	for _, p := range products {
		s.products[p.ProductID] = p
	}
	return s
}

func (s *fakeTxStore) Begin(ctx context.Context) (pgx.Tx, error) {
	s.mu.Lock()
	s.stateMu.Lock()
	s.nextSeq++
	tx := &fakeTx{seq: s.nextSeq}
	s.openSeq = tx.seq
	s.pending = make(map[string]domain.Product, len(s.products))
	for id, p := range s.products {
		s.pending[id] = p
	}
	s.stateMu.Unlock()
	return tx, nil
}

func (s *fakeTxStore) Commit(ctx context.Context, tx pgx.Tx) error {
	f, ok := tx.(*fakeTx)
	if !ok {
		return errors.New("commit of unknown transaction")
	}
	s.stateMu.Lock()
	if s.openSeq != f.seq {
		s.stateMu.Unlock()
		return errors.New("commit of a transaction that is not open")
	}
	s.products = s.pending
	s.pending = nil
	s.openSeq = 0
	s.stateMu.Unlock()
	s.mu.Unlock()
	return nil
}

func (s *fakeTxStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	f, ok := tx.(*fakeTx)
	if !ok {
		return nil
	}
	s.stateMu.Lock()
	// The service defers Rollback unconditionally; once this transaction has
	// committed, or another one has been opened, there is nothing to undo.
	if s.openSeq != f.seq {
		s.stateMu.Unlock()
		return nil
	}
	s.pending = nil
	s.openSeq = 0
	s.stateMu.Unlock()
	s.mu.Unlock()
	return nil
}

func (s *fakeTxStore) FindProductsForSaleForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error) {
	out := make(map[string]domain.Product, len(productIDs))
	for _, id := range productIDs {
		if p, ok := s.pending[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *fakeTxStore) AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, delta int64) error {
	p, ok := s.pending[productID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if p.StockQty+delta < 0 {
		return apperrors.ErrInsufficientStock
	}
	p.StockQty += delta
	s.pending[productID] = p
	return nil
}

func (s *fakeTxStore) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale, lines []domain.SaleLine) error {
	s.savedSales++
	return nil
}

// Methods below are not exercised by CreateSale.

func (s *fakeTxStore) SaveProduct(ctx context.Context, product domain.Product) error {
	return errors.New("not implemented")
}

func (s *fakeTxStore) UpdateProduct(ctx context.Context, product domain.Product) error {
	return errors.New("not implemented")
}

func (s *fakeTxStore) DeleteProduct(ctx context.Context, productID string) error {
	return errors.New("not implemented")
}

func (s *fakeTxStore) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return nil, apperrors.ErrNotFound
}

func (s *fakeTxStore) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	return nil, apperrors.ErrNotFound
}

func (s *fakeTxStore) ListProducts(ctx context.Context, search string, limit, offset int) ([]domain.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTxStore) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTxStore) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	return nil, apperrors.ErrNotFound
}

func (s *fakeTxStore) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	return nil, nil, errors.New("not implemented")
}

// TestCreateSale_ConcurrentSalesNeverOversell drives many simultaneous sales
// against one product with limited stock and verifies that exactly the number
// of sales the stock can cover succeed, the rest fail with insufficient stock,
// and the counter never goes negative.
func TestCreateSale_ConcurrentSalesNeverOversell(t *testing.T) {
	const (
		initialStock = 10
		qtyPerSale   = 3
		attempts     = 20
	)

	product := domain.Product{
		ProductID:  uuid.NewString(),
		Code:       "SP001",
		Name:       "Nuoc mam 500ml",
		Unit:       "chai",
		CostPrice:  decimal.NewFromInt(80000),
		SellPrice:  decimal.NewFromInt(150000),
		StockQty:   initialStock,
		AlertLevel: 10,
	}
	store := newFakeTxStore(product)
	service := services.NewSaleService(store, store)

	var succeeded, insufficient atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreateSale(context.Background(), dto.CreateSaleRequest{
				Items: []dto.SaleItemRequest{
					{ProductID: product.ProductID, Quantity: qtyPerSale},
				},
			})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, apperrors.ErrInsufficientStock):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	wantSuccesses := int64(initialStock / qtyPerSale)
	assert.Equal(t, wantSuccesses, succeeded.Load(), "only as many sales as stock covers may succeed")
	assert.Equal(t, int64(attempts)-wantSuccesses, insufficient.Load())

	final := store.products[product.ProductID]
	require.GreaterOrEqual(t, final.StockQty, int64(0), "stock must never go negative")
	assert.Equal(t, initialStock-wantSuccesses*qtyPerSale, final.StockQty)
	assert.Equal(t, int(wantSuccesses), store.savedSales, "one persisted invoice per successful sale")
}

// TestFakeTxStore_StaleRollbackAfterCommitIsNoOp pins down the interleaving
// where goroutine A's deferred Rollback runs after its Commit released the
// lock and goroutine B has already opened the next transaction: the stale
// rollback must not discard B's pending state or release B's lock.
func TestFakeTxStore_StaleRollbackAfterCommitIsNoOp(t *testing.T) {
	product := domain.Product{
		ProductID: uuid.NewString(),
		Code:      "SP001",
		Name:      "Nuoc mam 500ml",
		Unit:      "chai",
		CostPrice: decimal.NewFromInt(80000),
		SellPrice: decimal.NewFromInt(150000),
		StockQty:  10,
	}
	store := newFakeTxStore(product)
	ctx := context.Background()

	txA, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, store.AdjustStockInTx(ctx, txA, product.ProductID, -3))
	require.NoError(t, store.Commit(ctx, txA))

	txB, err := store.Begin(ctx)
	require.NoError(t, err)

	// A's deferred Rollback arrives late, while B's transaction is open.
	require.NoError(t, store.Rollback(ctx, txA))

	// B's transaction is untouched and completes normally.
	require.NoError(t, store.AdjustStockInTx(ctx, txB, product.ProductID, -2))
	require.NoError(t, store.Commit(ctx, txB))

	assert.Equal(t, int64(5), store.products[product.ProductID].StockQty)
}
