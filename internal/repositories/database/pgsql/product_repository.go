package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hqtran/shop_inventory_app/internal/apperrors"
	"github.com/hqtran/shop_inventory_app/internal/core/domain"
	portsrepo "github.com/hqtran/shop_inventory_app/internal/core/ports/repositories"
	"github.com/hqtran/shop_inventory_app/internal/models"
	"github.com/hqtran/shop_inventory_app/internal/utils/mapping"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product catalog and stock data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryWithTx {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryWithTx
var _ portsrepo.ProductRepositoryWithTx = (*PgxProductRepository)(nil)

const productColumns = `product_id, code, name, unit, cost_price, sell_price, stock_qty, alert_level, created_at, last_updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Code,
		&m.Name,
		&m.Unit,
		&m.CostPrice,
		&m.SellPrice,
		&m.StockQty,
		&m.AlertLevel,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (product_id, code, name, unit, cost_price, sell_price, stock_qty, alert_level, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Code,
		m.Name,
		m.Unit,
		m.CostPrice,
		m.SellPrice,
		m.StockQty,
		m.AlertLevel,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: product with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	d := mapping.ToDomainProduct(*m)
	return &d, nil
}

// FindProductByCode retrieves a product by its unique user-facing code.
func (r *PgxProductRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1;`

	m, err := scanProduct(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by code %s: %w", code, err)
	}

	d := mapping.ToDomainProduct(*m)
	return &d, nil
}

// ListProducts retrieves a page of products, newest first. A non-empty search
// filters case-insensitively over code and name.
func (r *PgxProductRepository) ListProducts(ctx context.Context, search string, limit, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var rows pgx.Rows
	var err error
	if search != "" {
		query := `
			SELECT ` + productColumns + `
			FROM products
			WHERE code ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%'
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3;
		`
		rows, err = r.Pool.Query(ctx, query, search, limit, offset)
	} else {
		query := `
			SELECT ` + productColumns + `
			FROM products
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2;
		`
		rows, err = r.Pool.Query(ctx, query, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// ListLowStockProducts retrieves all products at or below their alert level,
// ordered ascending by stock quantity.
func (r *PgxProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE stock_qty <= alert_level
		ORDER BY stock_qty ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return mapping.ToDomainProductSlice(products), nil
}

// UpdateProduct overwrites the catalog fields of an existing product. The
// service merges the partial update before calling this, so all columns are
// written. stock_qty here is a direct correction, not a ledger mutation.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		UPDATE products
		SET code = $2, name = $3, unit = $4, cost_price = $5, sell_price = $6,
		    stock_qty = $7, alert_level = $8, last_updated_at = $9
		WHERE product_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Code,
		m.Name,
		m.Unit,
		m.CostPrice,
		m.SellPrice,
		m.StockQty,
		m.AlertLevel,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: product with code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to execute update product %s: %w", m.ProductID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product. The restrict foreign keys from
// stock_receipts and sale_lines block deletion while history exists; that
// violation is surfaced as ErrDependencyExists (a client error, not a fault).
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	query := `DELETE FROM products WHERE product_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, productID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: product %s has receipt or sale history", apperrors.ErrDependencyExists, productID)
		}
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindProductsForSaleForUpdate retrieves products by IDs and locks the rows
// for update. Must be called within a transaction: the lock is what makes the
// subsequent stock check and decrement safe against concurrent sales.
func (r *PgxProductRepository) FindProductsForSaleForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = ANY($1)
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products for update: %w", err)
	}
	defer rows.Close()

	productsMap := make(map[string]domain.Product)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked product row: %w", err)
		}
		productsMap[m.ProductID] = mapping.ToDomainProduct(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked product rows: %w", err)
	}

	// Missing IDs are reported by the caller with a proper NotFound; the map
	// simply does not contain them.
	return productsMap, nil
}

// AdjustStockInTx applies a stock delta as a single conditional update. The
// WHERE guard refuses to drive stock_qty negative even if a caller skipped the
// check-then-act under lock, making "decrement if sufficient" an explicit,
// testable primitive rather than a convention.
func (r *PgxProductRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, productID string, delta int64) error {
	query := `
		UPDATE products
		SET stock_qty = stock_qty + $2, last_updated_at = NOW()
		WHERE product_id = $1 AND stock_qty + $2 >= 0;
	`
	cmdTag, err := tx.Exec(ctx, query, productID, delta)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return fmt.Errorf("%w: stock adjustment of %d rejected for product %s", apperrors.ErrInsufficientStock, delta, productID)
		}
		return fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		if delta < 0 {
			return fmt.Errorf("%w: stock adjustment of %d rejected for product %s", apperrors.ErrInsufficientStock, delta, productID)
		}
		return apperrors.ErrNotFound
	}
	return nil
}
