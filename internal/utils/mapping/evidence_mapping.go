package mapping

import (
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/akuntansi-app/akuntansi-backend/internal/models"
)

// ToModelEvidence converts a domain TransactionEvidence to its model.
func ToModelEvidence(d domain.TransactionEvidence) models.TransactionEvidence {
	return models.TransactionEvidence{
		EvidenceNumber:  d.EvidenceNumber,
		TransactionDate: d.TransactionDate,
		Description:     d.Description,
		Reference:       d.Reference,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDomainEvidence converts a model TransactionEvidence to its domain form.
func ToDomainEvidence(m models.TransactionEvidence) domain.TransactionEvidence {
	return domain.TransactionEvidence{
		EvidenceNumber:  m.EvidenceNumber,
		TransactionDate: m.TransactionDate,
		Description:     m.Description,
		Reference:       m.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainEvidenceSlice converts a slice of model evidences to domain form.
func ToDomainEvidenceSlice(ms []models.TransactionEvidence) []domain.TransactionEvidence {
	ds := make([]domain.TransactionEvidence, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvidence(m)
	}
	return ds
}
