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

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for stock receipt history.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryWithTx {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceiptRepositoryWithTx = (*PgxReceiptRepository)(nil)

const receiptJoinedColumns = `
	r.receipt_id, r.product_id, r.quantity, r.cost_price, r.receipt_date, r.created_at,
	p.code, p.name, p.unit`

func scanJoinedReceipt(row pgx.Row) (*models.StockReceipt, error) {
	var m models.StockReceipt
	err := row.Scan(
		&m.ReceiptID,
		&m.ProductID,
		&m.Quantity,
		&m.CostPrice,
		&m.ReceiptDate,
		&m.CreatedAt,
		&m.ProductCode,
		&m.ProductName,
		&m.ProductUnit,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveReceiptInTx inserts a receipt row inside the caller's transaction. The
// paired stock increment is a separate statement in the same transaction, so
// history and counter always move together.
func (r *PgxReceiptRepository) SaveReceiptInTx(ctx context.Context, tx pgx.Tx, receipt domain.StockReceipt) error {
	m := mapping.ToModelReceipt(receipt)

	query := `
		INSERT INTO stock_receipts (receipt_id, product_id, quantity, cost_price, receipt_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query,
		m.ReceiptID,
		m.ProductID,
		m.Quantity,
		m.CostPrice,
		m.ReceiptDate,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: product %s does not exist", apperrors.ErrNotFound, m.ProductID)
		}
		return fmt.Errorf("failed to save receipt %s: %w", m.ReceiptID, err)
	}
	return nil
}

// FindReceiptByID retrieves a receipt with its product display snapshot.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.StockReceipt, error) {
	query := `
		SELECT ` + receiptJoinedColumns + `
		FROM stock_receipts r
		JOIN products p ON p.product_id = r.product_id
		WHERE r.receipt_id = $1;
	`
	m, err := scanJoinedReceipt(r.Pool.QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by ID %s: %w", receiptID, err)
	}

	d := mapping.ToDomainReceipt(*m)
	return &d, nil
}

// ListReceipts retrieves receipts newest first with token pagination,
// optionally filtered to one product. Ordering is (receipt_date, created_at)
// descending so the cursor pair positions a page boundary unambiguously.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, productID *string, limit int, nextToken *string) ([]domain.StockReceipt, *string, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT ` + receiptJoinedColumns + `
		FROM stock_receipts r
		JOIN products p ON p.product_id = r.product_id
		WHERE 1=1`
	args := []any{}
	argCount := 1

	if productID != nil && *productID != "" {
		query += fmt.Sprintf(" AND r.product_id = $%d", argCount)
		args = append(args, *productID)
		argCount++
	}

	if nextToken != nil && *nextToken != "" {
		receiptDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (r.receipt_date, r.created_at) < ($%d, $%d)", argCount, argCount+1)
		args = append(args, receiptDate, createdAt)
		argCount += 2
	}

	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(" ORDER BY r.receipt_date DESC, r.created_at DESC LIMIT $%d;", argCount)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	receipts := []models.StockReceipt{}
	for rows.Next() {
		m, err := scanJoinedReceipt(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		receipts = append(receipts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating receipt rows: %w", err)
	}

	var newNextToken *string
	if len(receipts) > limit {
		receipts = receipts[:limit]
		last := receipts[len(receipts)-1]
		tokenStr := pagination.EncodeToken(last.ReceiptDate, last.CreatedAt)
		newNextToken = &tokenStr
	}

	return mapping.ToDomainReceiptSlice(receipts), newNextToken, nil
}
