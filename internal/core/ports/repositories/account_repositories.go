package repositories

import (
	"context"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
)

// AccountListFilter narrows and pages account listings.
type AccountListFilter struct {
	Search       string
	AccountGroup string
	Limit        int
	Offset       int
}

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	// FindAccountByNumber retrieves one account by its unique number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ListAccounts retrieves a filtered page of accounts plus the total count.
	ListAccounts(ctx context.Context, filter AccountListFilter) ([]domain.Account, int64, error)

	// ResolveExistingAccounts returns the accounts, keyed by number, that exist
	// among the given numbers. Missing numbers are simply absent from the map.
	// It runs on q so callers can resolve inside their own transaction.
	ResolveExistingAccounts(ctx context.Context, q Querier, accountNumbers []string) (map[string]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, accountNumber string) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
