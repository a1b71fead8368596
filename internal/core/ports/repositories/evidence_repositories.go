package repositories

import (
	"context"
	"time"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
)

// EvidenceListFilter narrows and pages transaction evidence listings.
type EvidenceListFilter struct {
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// EvidenceReader defines read operations for transaction evidence documents.
type EvidenceReader interface {
	// FindEvidenceByNumber retrieves one evidence document by its unique number.
	FindEvidenceByNumber(ctx context.Context, evidenceNumber string) (*domain.TransactionEvidence, error)

	// ListEvidences retrieves a filtered page of evidences plus the total count.
	ListEvidences(ctx context.Context, filter EvidenceListFilter) ([]domain.TransactionEvidence, int64, error)

	// EvidenceExists reports whether an evidence number exists. It runs on q so
	// journal writes can resolve references inside their own transaction.
	EvidenceExists(ctx context.Context, q Querier, evidenceNumber string) (bool, error)
}

// EvidenceWriter defines write operations for transaction evidence documents.
type EvidenceWriter interface {
	SaveEvidence(ctx context.Context, evidence domain.TransactionEvidence) error
	UpdateEvidence(ctx context.Context, evidence domain.TransactionEvidence) error
	DeleteEvidence(ctx context.Context, evidenceNumber string) error
}

// EvidenceRepositoryFacade combines all evidence repository interfaces.
type EvidenceRepositoryFacade interface {
	EvidenceReader
	EvidenceWriter
}
