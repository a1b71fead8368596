package services

import (
	"context"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
)

// EvidenceSvcFacade exposes transaction evidence operations to handlers.
type EvidenceSvcFacade interface {
	CreateEvidence(ctx context.Context, req dto.CreateEvidenceRequest) (*domain.TransactionEvidence, error)
	GetEvidenceByNumber(ctx context.Context, evidenceNumber string) (*domain.TransactionEvidence, error)
	ListEvidences(ctx context.Context, params dto.ListEvidencesParams) (*dto.ListEvidencesResponse, error)
	UpdateEvidence(ctx context.Context, evidenceNumber string, req dto.UpdateEvidenceRequest) (*domain.TransactionEvidence, error)
	DeleteEvidence(ctx context.Context, evidenceNumber string) (*domain.TransactionEvidence, error)
}
