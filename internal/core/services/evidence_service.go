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

// evidenceService provides transaction evidence document operations.
type evidenceService struct {
	evidenceRepo portsrepo.EvidenceRepositoryFacade
}

// NewEvidenceService creates a new evidence service.
func NewEvidenceService(evidenceRepo portsrepo.EvidenceRepositoryFacade) portssvc.EvidenceSvcFacade {
	return &evidenceService{evidenceRepo: evidenceRepo}
}

var _ portssvc.EvidenceSvcFacade = (*evidenceService)(nil)

// CreateEvidence registers a new evidence document. The number must be unused.
func (s *evidenceService) CreateEvidence(ctx context.Context, req dto.CreateEvidenceRequest) (*domain.TransactionEvidence, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.evidenceRepo.FindEvidenceByNumber(ctx, req.EvidenceNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for existing evidence", slog.String("evidence_number", req.EvidenceNumber), slog.String("error", err.Error()))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: evidence number %s", apperrors.ErrDuplicate, req.EvidenceNumber)
	}

	now := time.Now().UTC()
	evidence := domain.TransactionEvidence{
		EvidenceNumber:  req.EvidenceNumber,
		TransactionDate: req.TransactionDate.Time,
		Description:     req.Description,
		Reference:       req.Reference,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.evidenceRepo.SaveEvidence(ctx, evidence); err != nil {
		logger.Error("Failed to save evidence", slog.String("evidence_number", req.EvidenceNumber), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Evidence created", slog.String("evidence_number", evidence.EvidenceNumber))
	return &evidence, nil
}

// GetEvidenceByNumber retrieves one evidence document.
func (s *evidenceService) GetEvidenceByNumber(ctx context.Context, evidenceNumber string) (*domain.TransactionEvidence, error) {
	return s.evidenceRepo.FindEvidenceByNumber(ctx, evidenceNumber)
}

// ListEvidences retrieves a filtered page of evidence documents.
func (s *evidenceService) ListEvidences(ctx context.Context, params dto.ListEvidencesParams) (*dto.ListEvidencesResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 10
	}

	evidences, total, err := s.evidenceRepo.ListEvidences(ctx, portsrepo.EvidenceListFilter{
		Search:    params.Search,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list evidences", slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.ListEvidencesResponse{
		Evidences:  dto.ToEvidenceResponses(evidences),
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// UpdateEvidence patches the mutable fields of an evidence document.
func (s *evidenceService) UpdateEvidence(ctx context.Context, evidenceNumber string, req dto.UpdateEvidenceRequest) (*domain.TransactionEvidence, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	evidence, err := s.evidenceRepo.FindEvidenceByNumber(ctx, evidenceNumber)
	if err != nil {
		return nil, err
	}

	if req.TransactionDate != nil {
		evidence.TransactionDate = req.TransactionDate.Time
	}
	if req.Description != nil {
		evidence.Description = *req.Description
	}
	if req.Reference != nil {
		evidence.Reference = *req.Reference
	}
	evidence.UpdatedAt = time.Now().UTC()

	if err := s.evidenceRepo.UpdateEvidence(ctx, *evidence); err != nil {
		logger.Error("Failed to update evidence", slog.String("evidence_number", evidenceNumber), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Evidence updated", slog.String("evidence_number", evidenceNumber))
	return evidence, nil
}

// DeleteEvidence removes an evidence document and returns its last state.
// Evidences still referenced by general journal entries surface as a conflict.
func (s *evidenceService) DeleteEvidence(ctx context.Context, evidenceNumber string) (*domain.TransactionEvidence, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	evidence, err := s.evidenceRepo.FindEvidenceByNumber(ctx, evidenceNumber)
	if err != nil {
		return nil, err
	}

	if err := s.evidenceRepo.DeleteEvidence(ctx, evidenceNumber); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete evidence", slog.String("evidence_number", evidenceNumber), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Evidence deleted", slog.String("evidence_number", evidenceNumber))
	return evidence, nil
}
