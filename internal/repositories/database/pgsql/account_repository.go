package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	portsrepo "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/repositories"
	"github.com/akuntansi-app/akuntansi-backend/internal/models"
	"github.com/akuntansi-app/akuntansi-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository persists the chart of accounts.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_number, name, account_group, normal_balance_side, created_at, updated_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountNumber,
		&m.Name,
		&m.AccountGroup,
		&m.NormalBalanceSide,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveAccount inserts a new account row.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_number, name, account_group, normal_balance_side, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountNumber,
		m.Name,
		m.AccountGroup,
		m.NormalBalanceSide,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to insert account "+m.AccountNumber)
	}
	return nil
}

// FindAccountByNumber retrieves one account by its unique number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account " + accountNumber + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find account "+accountNumber, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccounts retrieves a filtered page of accounts plus the total count.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter portsrepo.AccountListFilter) ([]domain.Account, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (account_number ILIKE $%d OR name ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.AccountGroup != "" {
		where += fmt.Sprintf(" AND account_group = $%d", argPos)
		args = append(args, filter.AccountGroup)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM accounts` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count accounts", err)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts` + where +
		fmt.Sprintf(` ORDER BY account_number ASC LIMIT $%d OFFSET $%d;`, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	var ms []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating account rows", err)
	}

	return mapping.ToDomainAccountSlice(ms), total, nil
}

// ResolveExistingAccounts returns the accounts, keyed by number, that exist
// among the given numbers. It runs on q so callers can resolve inside their
// own transaction.
func (r *PgxAccountRepository) ResolveExistingAccounts(ctx context.Context, q portsrepo.Querier, accountNumbers []string) (map[string]domain.Account, error) {
	if len(accountNumbers) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = ANY($1);`
	rows, err := q.Query(ctx, query, accountNumbers)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to resolve accounts", err)
	}
	defer rows.Close()

	found := make(map[string]domain.Account, len(accountNumbers))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		found[m.AccountNumber] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return found, nil
}

// UpdateAccount updates the mutable columns of an account row.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $2, account_group = $3, normal_balance_side = $4, updated_at = $5
		WHERE account_number = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountNumber,
		m.Name,
		m.AccountGroup,
		m.NormalBalanceSide,
		m.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to update account "+m.AccountNumber)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + m.AccountNumber + " not found")
	}
	return nil
}

// DeleteAccount removes an account row. Accounts still referenced by journal
// lines fail the foreign key check and surface as a conflict.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountNumber string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE account_number = $1;`, accountNumber)
	if err != nil {
		return mapPgError(err, "account "+accountNumber+" is still referenced by journal lines")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + accountNumber + " not found")
	}
	return nil
}
