package dto

import (
	"time"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
)

// CreateEvidenceRequest defines the data needed to register a transaction
// evidence document.
type CreateEvidenceRequest struct {
	EvidenceNumber  string `json:"no_bukti" binding:"required"`
	TransactionDate Date   `json:"tanggal_transaksi" binding:"required"`
	Description     string `json:"deskripsi"`
	Reference       string `json:"referensi"`
}

// UpdateEvidenceRequest defines the patchable evidence fields. The evidence
// number is the identifier and cannot change.
type UpdateEvidenceRequest struct {
	TransactionDate *Date   `json:"tanggal_transaksi"`
	Description     *string `json:"deskripsi"`
	Reference       *string `json:"referensi"`
}

// ListEvidencesParams defines query parameters for listing evidences.
type ListEvidencesParams struct {
	Page      int        `form:"page,default=1"`
	Limit     int        `form:"limit,default=10"`
	Search    string     `form:"search"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// EvidenceResponse defines the data returned for a transaction evidence.
type EvidenceResponse struct {
	EvidenceNumber  string    `json:"no_bukti"`
	TransactionDate Date      `json:"tanggal_transaksi"`
	Description     string    `json:"deskripsi"`
	Reference       string    `json:"referensi"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ListEvidencesResponse wraps a page of evidences.
type ListEvidencesResponse struct {
	Evidences  []EvidenceResponse `json:"buktiTransaksi"`
	Pagination Pagination         `json:"pagination"`
}

// ToEvidenceResponse converts a domain.TransactionEvidence to its response DTO.
func ToEvidenceResponse(ev *domain.TransactionEvidence) EvidenceResponse {
	return EvidenceResponse{
		EvidenceNumber:  ev.EvidenceNumber,
		TransactionDate: NewDate(ev.TransactionDate),
		Description:     ev.Description,
		Reference:       ev.Reference,
		CreatedAt:       ev.CreatedAt,
		UpdatedAt:       ev.UpdatedAt,
	}
}

// ToEvidenceResponses converts a slice of domain evidences.
func ToEvidenceResponses(evidences []domain.TransactionEvidence) []EvidenceResponse {
	res := make([]EvidenceResponse, len(evidences))
	for i := range evidences {
		res[i] = ToEvidenceResponse(&evidences[i])
	}
	return res
}
