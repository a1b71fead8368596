package repositories

import (
	"context"
	"time"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// JournalListFilter narrows and pages journal listings.
type JournalListFilter struct {
	Search        string
	StartDate     *time.Time
	EndDate       *time.Time
	AccountNumber string
	Limit         int
	Offset        int
}

// JournalReader defines read operations for one journal variant's store.
type JournalReader interface {
	// FindWithLines retrieves a journal entry with its lines eagerly joined,
	// lines ordered by position ascending with account metadata resolved.
	FindWithLines(ctx context.Context, journalID string) (*domain.JournalEntry, error)

	// FindAllWithLines retrieves a filtered page of entries, each with joined
	// lines, plus the total entry count. Entries are ordered by entry date
	// descending then creation time descending.
	FindAllWithLines(ctx context.Context, filter JournalListFilter) ([]domain.JournalEntry, int64, error)

	// FindHeaderForUpdate retrieves a header row inside tx with a row lock,
	// so concurrent updates to the same entry serialize.
	FindHeaderForUpdate(ctx context.Context, tx pgx.Tx, journalID string) (*domain.JournalEntry, error)

	// FindLinesForJournal retrieves the line rows of an entry on q, ordered by
	// position ascending.
	FindLinesForJournal(ctx context.Context, q Querier, journalID string) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for one journal variant's store.
// Every method takes the explicit transaction of the enclosing unit of work;
// header and line writes of one logical operation are never split across
// transactions.
type JournalWriter interface {
	CreateHeader(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error
	BulkInsertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error
	DestroyLinesForJournal(ctx context.Context, tx pgx.Tx, journalID string) error

	// UpdateHeader patches a header row guarded by its version counter and
	// bumps the version. A stale expected version yields ErrConflict.
	UpdateHeader(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, expectedVersion int64) error

	DestroyHeader(ctx context.Context, tx pgx.Tx, journalID string) error
}

// JournalRepositoryFacade combines read and write operations for one journal
// variant's store.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends the facade with the unit of work runner.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	UnitOfWork
}
