package services_test

import (
	"context"
	"testing"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	portsrepo "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/repositories"
	portssvc "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/services"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/services"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountNumber:     "101",
		Name:              "Kas",
		AccountGroup:      "ASSET",
		NormalBalanceSide: "DEBIT",
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "101").
		Return(nil, apperrors.NewNotFoundError("account 101 not found")).Once()

	var saved domain.Account
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("101", account.AccountNumber)
	suite.Equal(domain.Asset, saved.AccountGroup)
	suite.Equal(domain.DebitSide, saved.NormalBalanceSide)
	suite.False(saved.CreatedAt.IsZero())

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateNumber() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountNumber:     "101",
		Name:              "Kas",
		AccountGroup:      "ASSET",
		NormalBalanceSide: "DEBIT",
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "101").
		Return(&domain.Account{AccountNumber: "101"}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PatchesSuppliedFields() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountNumber:     "101",
		Name:              "Kas",
		AccountGroup:      domain.Asset,
		NormalBalanceSide: domain.DebitSide,
	}

	newName := "Kas Kecil"
	req := dto.UpdateAccountRequest{Name: &newName}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "101").Return(existing, nil).Once()

	var updated domain.Account
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "101", req)

	suite.Require().NoError(err)
	suite.Equal("Kas Kecil", account.Name)
	suite.Equal(domain.Asset, updated.AccountGroup)
	suite.Equal(domain.DebitSide, updated.NormalBalanceSide)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_ConflictWhenReferenced() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "101").
		Return(&domain.Account{AccountNumber: "101"}, nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, "101").
		Return(apperrors.NewAppError(409, "account 101 is still referenced by journal lines", apperrors.ErrConflict)).Once()

	account, err := suite.service.DeleteAccount(ctx, "101")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_ReturnsSnapshot() {
	ctx := context.Background()
	existing := &domain.Account{AccountNumber: "101", Name: "Kas"}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, "101").Return(existing, nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, "101").Return(nil).Once()

	account, err := suite.service.DeleteAccount(ctx, "101")

	suite.Require().NoError(err)
	suite.Equal("Kas", account.Name)
}

func (suite *AccountServiceTestSuite) TestListAccounts_BuildsFilter() {
	ctx := context.Background()

	expectedFilter := portsrepo.AccountListFilter{
		Search:       "kas",
		AccountGroup: "ASSET",
		Limit:        5,
		Offset:       10,
	}
	suite.mockAccountRepo.On("ListAccounts", ctx, expectedFilter).
		Return([]domain.Account{{AccountNumber: "101"}}, int64(11), nil).Once()

	result, err := suite.service.ListAccounts(ctx, dto.ListAccountsParams{
		Page: 3, Limit: 5, Search: "kas", AccountGroup: "ASSET",
	})

	suite.Require().NoError(err)
	suite.Equal(3, result.Pagination.CurrentPage)
	suite.Equal(3, result.Pagination.TotalPages)
	suite.Len(result.Accounts, 1)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
