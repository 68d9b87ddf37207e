package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management.
//
// Every mutating flow in the system (receipt, sale) is owned by a service-level
// orchestration: the service begins the transaction, calls the ...InTx
// repository variants with the handle, and commits or rolls back. Repositories
// never open implicit transactions for multi-step writes.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}
