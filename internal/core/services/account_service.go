package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	portsrepo "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/repositories"
	portssvc "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/services"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/akuntansi-app/akuntansi-backend/internal/middleware"
)

// accountService provides chart-of-accounts operations. The journal
// coordinator only reads from this registry, never through it.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount registers a new account. The account number must be unused.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.accountRepo.FindAccountByNumber(ctx, req.AccountNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing account", slog.String("account_number", req.AccountNumber), slog.String("error", err.Error()))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account number %s", apperrors.ErrDuplicate, req.AccountNumber)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountNumber:     req.AccountNumber,
		Name:              req.Name,
		AccountGroup:      domain.AccountGroup(req.AccountGroup),
		NormalBalanceSide: domain.NormalBalanceSide(req.NormalBalanceSide),
		AuditFields:       domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("account_number", req.AccountNumber), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_number", account.AccountNumber))
	return &account, nil
}

// GetAccountByNumber retrieves one account.
func (s *accountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByNumber(ctx, accountNumber)
}

// ListAccounts retrieves a filtered page of accounts.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 10
	}

	accounts, total, err := s.accountRepo.ListAccounts(ctx, portsrepo.AccountListFilter{
		Search:       params.Search,
		AccountGroup: params.AccountGroup,
		Limit:        limit,
		Offset:       (page - 1) * limit,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.ListAccountsResponse{
		Accounts:   dto.ToAccountResponses(accounts),
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// UpdateAccount patches the mutable fields of an account. The number itself
// is immutable.
func (s *accountService) UpdateAccount(ctx context.Context, accountNumber string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountGroup != nil {
		account.AccountGroup = domain.AccountGroup(*req.AccountGroup)
	}
	if req.NormalBalanceSide != nil {
		account.NormalBalanceSide = domain.NormalBalanceSide(*req.NormalBalanceSide)
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("account_number", accountNumber), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_number", accountNumber))
	return account, nil
}

// DeleteAccount removes an account and returns its last state. Accounts still
// referenced by journal lines surface as a conflict.
func (s *accountService) DeleteAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountNumber); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete account", slog.String("account_number", accountNumber), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Account deleted", slog.String("account_number", accountNumber))
	return account, nil
}
