package services

import (
	"context"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
)

// AccountSvcFacade exposes chart-of-accounts operations to handlers.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) (*dto.ListAccountsResponse, error)
	UpdateAccount(ctx context.Context, accountNumber string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountNumber string) (*domain.Account, error)
}
