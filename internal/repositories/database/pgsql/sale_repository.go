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
	"github.com/hqtran/shop_inventory_app/internal/utils/pagination"
)

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale history.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

// SaveSaleInTx inserts the sale header and batches all line inserts inside the
// caller's transaction. Lines carry the price and profit frozen at sale time.
func (r *PgxSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale, lines []domain.SaleLine) error {
	m := mapping.ToModelSale(sale)

	headerQuery := `
		INSERT INTO sales (sale_id, sale_date, total_amount, total_profit, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, headerQuery,
		m.SaleID,
		m.SaleDate,
		m.TotalAmount,
		m.TotalProfit,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: sale with ID %s already exists", apperrors.ErrDuplicate, m.SaleID)
		}
		return fmt.Errorf("failed to save sale %s: %w", m.SaleID, err)
	}

	lineQuery := `
		INSERT INTO sale_lines (line_id, sale_id, product_id, quantity, sell_price, profit)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelSaleLine(line)
		batch.Queue(lineQuery, lm.LineID, lm.SaleID, lm.ProductID, lm.Quantity, lm.SellPrice, lm.Profit)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to save line %d of sale %s: %w", i, m.SaleID, err)
		}
	}
	return nil
}

// FindSaleByID retrieves a sale header with all its lines and their product
// display snapshots.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	headerQuery := `
		SELECT sale_id, sale_date, total_amount, total_profit, created_at, last_updated_at
		FROM sales
		WHERE sale_id = $1;
	`
	var header models.Sale
	err := r.Pool.QueryRow(ctx, headerQuery, saleID).Scan(
		&header.SaleID,
		&header.SaleDate,
		&header.TotalAmount,
		&header.TotalProfit,
		&header.CreatedAt,
		&header.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	linesQuery := `
		SELECT l.line_id, l.sale_id, l.product_id, l.quantity, l.sell_price, l.profit,
		       p.code, p.name, p.unit
		FROM sale_lines l
		JOIN products p ON p.product_id = l.product_id
		WHERE l.sale_id = $1
		ORDER BY p.code ASC;
	`
	rows, err := r.Pool.Query(ctx, linesQuery, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of sale %s: %w", saleID, err)
	}
	defer rows.Close()

	lineModels := []models.SaleLine{}
	for rows.Next() {
		var lm models.SaleLine
		err := rows.Scan(
			&lm.LineID,
			&lm.SaleID,
			&lm.ProductID,
			&lm.Quantity,
			&lm.SellPrice,
			&lm.Profit,
			&lm.ProductCode,
			&lm.ProductName,
			&lm.ProductUnit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale line row: %w", err)
		}
		lineModels = append(lineModels, lm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale line rows: %w", err)
	}

	sale := mapping.ToDomainSale(header)
	sale.Lines = mapping.ToDomainSaleLineSlice(lineModels)
	sale.LineCount = len(sale.Lines)
	return &sale, nil
}

// ListSales retrieves sale headers newest first with token pagination, each
// carrying its line count. Lines themselves are loaded only by FindSaleByID.
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.Sale, *string, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT s.sale_id, s.sale_date, s.total_amount, s.total_profit, s.created_at, s.last_updated_at,
		       (SELECT COUNT(*) FROM sale_lines l WHERE l.sale_id = s.sale_id) AS line_count
		FROM sales s
		WHERE 1=1`
	args := []any{}
	argCount := 1

	if nextToken != nil && *nextToken != "" {
		saleDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (s.sale_date, s.created_at) < ($%d, $%d)", argCount, argCount+1)
		args = append(args, saleDate, createdAt)
		argCount += 2
	}

	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(" ORDER BY s.sale_date DESC, s.created_at DESC LIMIT $%d;", argCount)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var m models.Sale
		err := rows.Scan(
			&m.SaleID,
			&m.SaleDate,
			&m.TotalAmount,
			&m.TotalProfit,
			&m.CreatedAt,
			&m.LastUpdatedAt,
			&m.LineCount,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	var newNextToken *string
	if len(sales) > limit {
		sales = sales[:limit]
		last := sales[len(sales)-1]
		tokenStr := pagination.EncodeToken(last.SaleDate, last.CreatedAt)
		newNextToken = &tokenStr
	}

	domainSales := make([]domain.Sale, len(sales))
	for i, m := range sales {
		domainSales[i] = mapping.ToDomainSale(m)
	}
	return domainSales, newNextToken, nil
}
