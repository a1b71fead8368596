package mapping

import (
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/akuntansi-app/akuntansi-backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model row.
// The side reference column holds the evidence number for general journals and
// the voucher number for adjusting journals.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	sideRef := d.EvidenceNumber
	if d.Kind == domain.AdjustingJournal {
		sideRef = d.VoucherNumber
	}
	return models.JournalEntry{
		JournalID:     d.JournalID,
		EntryDate:     d.EntryDate,
		Description:   d.Description,
		SideReference: sideRef,
		Version:       d.Version,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainJournalEntry converts a model header row back to the domain form for
// the given kind.
func ToDomainJournalEntry(m models.JournalEntry, kind domain.JournalKind) domain.JournalEntry {
	d := domain.JournalEntry{
		JournalID:   m.JournalID,
		Kind:        kind,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Version:     m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
	if kind == domain.AdjustingJournal {
		d.VoucherNumber = m.SideReference
	} else {
		d.EvidenceNumber = m.SideReference
	}
	return d
}

// ToModelJournalLine converts a domain JournalLine to a model row.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:        d.LineID,
		JournalID:     d.JournalID,
		AccountNumber: d.AccountNumber,
		Debit:         d.Debit,
		Credit:        d.Credit,
		Position:      d.Position,
	}
}

// ToDomainJournalLine converts a model line row to the domain form.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:        m.LineID,
		JournalID:     m.JournalID,
		AccountNumber: m.AccountNumber,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Position:      m.Position,
	}
}

// ToDomainJournalLineSlice converts a slice of model lines to domain lines.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
