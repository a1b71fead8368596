package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
// Repository methods that must participate in an in-flight unit of work accept
// a Querier so the caller decides whether they run on the pool or inside a
// transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UnitOfWork runs a function inside a single database transaction. The
// transaction is rolled back if fn returns an error or panics, committed
// otherwise. The pgx.Tx handed to fn is the explicit transaction context for
// all store calls of one logical operation; it is never held as shared state.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// RepositoryProvider bundles the concrete repositories for injection into the
// service layer.
type RepositoryProvider struct {
	AccountRepo          AccountRepositoryFacade
	EvidenceRepo         EvidenceRepositoryFacade
	GeneralJournalRepo   JournalRepositoryWithTx
	AdjustingJournalRepo JournalRepositoryWithTx
}
