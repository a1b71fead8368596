package dto

import (
	"time"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one proposed detail line of a journal entry. Debit and
// credit are pointers so "amount omitted" is distinguishable from zero; the
// balance validator rejects lines with both absent.
type JournalLineRequest struct {
	AccountNumber string           `json:"account_id" binding:"required"`
	Debit         *decimal.Decimal `json:"debet"`
	Credit        *decimal.Decimal `json:"kredit"`
}

// CreateJournalRequest defines the data needed to create a journal entry with
// its full line set. EvidenceNumber applies to the general variant,
// VoucherNumber to the adjusting variant; the other is ignored.
type CreateJournalRequest struct {
	Date           Date                 `json:"tanggal" binding:"required"`
	Description    string               `json:"deskripsi_transaksi" binding:"required"`
	EvidenceNumber *string              `json:"evidence_ref"`
	VoucherNumber  *string              `json:"no_bukti_penyesuaian"`
	Lines          []JournalLineRequest `json:"lines" binding:"required"`
}

// UpdateJournalRequest patches a journal entry. Header fields use Optional so
// an absent key leaves the field unchanged while an explicit null clears the
// nullable side reference. The line set is always replaced wholesale and is
// therefore required in full.
type UpdateJournalRequest struct {
	Date           Optional[Date]       `json:"tanggal"`
	Description    Optional[string]     `json:"deskripsi_transaksi"`
	EvidenceNumber Optional[string]     `json:"evidence_ref"`
	VoucherNumber  Optional[string]     `json:"no_bukti_penyesuaian"`
	Lines          []JournalLineRequest `json:"lines" binding:"required"`
}

// ListJournalsParams defines query parameters for listing journal entries.
type ListJournalsParams struct {
	Page          int        `form:"page,default=1"`
	Limit         int        `form:"limit,default=10"`
	Search        string     `form:"search"`
	StartDate     *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate       *time.Time `form:"endDate" time_format:"2006-01-02"`
	AccountNumber string     `form:"account_id"`
}

// JournalLineResponse is one persisted detail line with resolved account
// metadata.
type JournalLineResponse struct {
	LineID        string           `json:"line_id"`
	AccountNumber string           `json:"account_id"`
	Debit         decimal.Decimal  `json:"debet"`
	Credit        decimal.Decimal  `json:"kredit"`
	Account       *AccountResponse `json:"akun,omitempty"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID      string                `json:"journal_id"`
	Date           Date                  `json:"tanggal"`
	Description    string                `json:"deskripsi_transaksi"`
	EvidenceNumber *string               `json:"evidence_ref,omitempty"`
	VoucherNumber  *string               `json:"no_bukti_penyesuaian,omitempty"`
	Evidence       *EvidenceResponse     `json:"bukti_transaksi,omitempty"`
	Version        int64                 `json:"version"`
	Lines          []JournalLineResponse `json:"lines"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// ListJournalsResponse wraps a page of journal entries.
type ListJournalsResponse struct {
	Journals   []JournalResponse `json:"journals"`
	Pagination Pagination        `json:"pagination"`
}

// ToJournalLineResponse converts a domain.JournalLine to its response DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	resp := JournalLineResponse{
		LineID:        line.LineID,
		AccountNumber: line.AccountNumber,
		Debit:         line.Debit,
		Credit:        line.Credit,
	}
	if line.Account != nil {
		acc := ToAccountResponse(line.Account)
		resp.Account = &acc
	}
	return resp
}

// ToJournalResponse converts a domain.JournalEntry to its response DTO.
func ToJournalResponse(entry *domain.JournalEntry) JournalResponse {
	lines := make([]JournalLineResponse, len(entry.Lines))
	for i := range entry.Lines {
		lines[i] = ToJournalLineResponse(&entry.Lines[i])
	}
	resp := JournalResponse{
		JournalID:      entry.JournalID,
		Date:           NewDate(entry.EntryDate),
		Description:    entry.Description,
		EvidenceNumber: entry.EvidenceNumber,
		VoucherNumber:  entry.VoucherNumber,
		Version:        entry.Version,
		Lines:          lines,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
	if entry.Evidence != nil {
		ev := ToEvidenceResponse(entry.Evidence)
		resp.Evidence = &ev
	}
	return resp
}

// ToJournalResponses converts a slice of domain journal entries.
func ToJournalResponses(entries []domain.JournalEntry) []JournalResponse {
	res := make([]JournalResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalResponse(&entries[i])
	}
	return res
}
