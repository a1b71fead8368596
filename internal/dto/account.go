package dto

import (
	"time"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a chart-of-accounts
// record. Field names follow the public API contract.
type CreateAccountRequest struct {
	AccountNumber     string `json:"nomor_akun" binding:"required"`
	Name              string `json:"nama_akun" binding:"required"`
	AccountGroup      string `json:"kelompok_akun" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	NormalBalanceSide string `json:"posisi_saldo_normal" binding:"required,oneof=DEBIT CREDIT"`
}

// UpdateAccountRequest defines the patchable account fields. The account
// number is immutable and therefore absent. Pointers distinguish "not
// provided" from zero values.
type UpdateAccountRequest struct {
	Name              *string `json:"nama_akun"`
	AccountGroup      *string `json:"kelompok_akun" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	NormalBalanceSide *string `json:"posisi_saldo_normal" binding:"omitempty,oneof=DEBIT CREDIT"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Page         int    `form:"page,default=1"`
	Limit        int    `form:"limit,default=10"`
	Search       string `form:"search"`
	AccountGroup string `form:"kelompok_akun"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountNumber     string    `json:"nomor_akun"`
	Name              string    `json:"nama_akun"`
	AccountGroup      string    `json:"kelompok_akun"`
	NormalBalanceSide string    `json:"posisi_saldo_normal"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts   []AccountResponse `json:"akun"`
	Pagination Pagination        `json:"pagination"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber:     acc.AccountNumber,
		Name:              acc.Name,
		AccountGroup:      string(acc.AccountGroup),
		NormalBalanceSide: string(acc.NormalBalanceSide),
		CreatedAt:         acc.CreatedAt,
		UpdatedAt:         acc.UpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
