package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	portssvc "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/services"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/services"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EvidenceServiceTestSuite struct {
	suite.Suite
	mockEvidenceRepo *MockEvidenceRepository
	service          portssvc.EvidenceSvcFacade
}

func (suite *EvidenceServiceTestSuite) SetupTest() {
	suite.mockEvidenceRepo = new(MockEvidenceRepository)
	suite.service = services.NewEvidenceService(suite.mockEvidenceRepo)
}

func (suite *EvidenceServiceTestSuite) TestCreateEvidence_Success() {
	ctx := context.Background()
	req := dto.CreateEvidenceRequest{
		EvidenceNumber:  "BKT-001",
		TransactionDate: dto.NewDate(time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)),
		Description:     "Pembelian perlengkapan",
		Reference:       "INV-42",
	}

	suite.mockEvidenceRepo.On("FindEvidenceByNumber", ctx, "BKT-001").
		Return(nil, apperrors.NewNotFoundError("evidence BKT-001 not found")).Once()

	var saved domain.TransactionEvidence
	suite.mockEvidenceRepo.On("SaveEvidence", ctx, mock.AnythingOfType("domain.TransactionEvidence")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.TransactionEvidence)
		}).Return(nil).Once()

	evidence, err := suite.service.CreateEvidence(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("BKT-001", evidence.EvidenceNumber)
	suite.Equal("INV-42", saved.Reference)
	suite.Equal(req.TransactionDate.Time, saved.TransactionDate)
}

func (suite *EvidenceServiceTestSuite) TestCreateEvidence_DuplicateNumber() {
	ctx := context.Background()
	req := dto.CreateEvidenceRequest{
		EvidenceNumber:  "BKT-001",
		TransactionDate: dto.NewDate(time.Now()),
	}

	suite.mockEvidenceRepo.On("FindEvidenceByNumber", ctx, "BKT-001").
		Return(&domain.TransactionEvidence{EvidenceNumber: "BKT-001"}, nil).Once()

	evidence, err := suite.service.CreateEvidence(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(evidence)
	suite.mockEvidenceRepo.AssertNotCalled(suite.T(), "SaveEvidence", mock.Anything, mock.Anything)
}

func (suite *EvidenceServiceTestSuite) TestUpdateEvidence_PatchesSuppliedFields() {
	ctx := context.Background()
	existing := &domain.TransactionEvidence{
		EvidenceNumber:  "BKT-001",
		TransactionDate: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
		Description:     "Lama",
		Reference:       "INV-42",
	}

	newDesc := "Baru"
	req := dto.UpdateEvidenceRequest{Description: &newDesc}

	suite.mockEvidenceRepo.On("FindEvidenceByNumber", ctx, "BKT-001").Return(existing, nil).Once()

	var updated domain.TransactionEvidence
	suite.mockEvidenceRepo.On("UpdateEvidence", ctx, mock.AnythingOfType("domain.TransactionEvidence")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.TransactionEvidence)
		}).Return(nil).Once()

	evidence, err := suite.service.UpdateEvidence(ctx, "BKT-001", req)

	suite.Require().NoError(err)
	suite.Equal("Baru", evidence.Description)
	suite.Equal("INV-42", updated.Reference)
	suite.Equal(existing.TransactionDate, updated.TransactionDate)
}

func (suite *EvidenceServiceTestSuite) TestDeleteEvidence_ConflictWhenReferenced() {
	ctx := context.Background()

	suite.mockEvidenceRepo.On("FindEvidenceByNumber", ctx, "BKT-001").
		Return(&domain.TransactionEvidence{EvidenceNumber: "BKT-001"}, nil).Once()
	suite.mockEvidenceRepo.On("DeleteEvidence", ctx, "BKT-001").
		Return(apperrors.NewAppError(409, "evidence BKT-001 is still referenced by journal entries", apperrors.ErrConflict)).Once()

	evidence, err := suite.service.DeleteEvidence(ctx, "BKT-001")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(evidence)
}

func TestEvidenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EvidenceServiceTestSuite))
}
