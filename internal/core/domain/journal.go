package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalKind distinguishes the two journal variants. They share structure and
// behavior; they differ only in which optional side reference the header
// carries and in which tables they are stored.
type JournalKind string

const (
	// GeneralJournal records routine transactions and may reference a
	// transaction evidence document.
	GeneralJournal JournalKind = "GENERAL"
	// AdjustingJournal records period-end adjustments and may carry a free-text
	// adjustment voucher number.
	AdjustingJournal JournalKind = "ADJUSTING"
)

// JournalEntry is a dated, described transaction composed of at least two
// balanced lines. An entry exists fully formed or not at all: its lines are
// created with it and replaced wholesale on every update.
type JournalEntry struct {
	JournalID   string     `json:"journalID"`
	Kind        JournalKind `json:"kind"`
	EntryDate   time.Time  `json:"entryDate"`
	Description string     `json:"description"`

	// EvidenceNumber references a TransactionEvidence; General kind only.
	EvidenceNumber *string `json:"evidenceNumber,omitempty"`
	// VoucherNumber is the adjustment voucher reference; Adjusting kind only.
	VoucherNumber *string `json:"voucherNumber,omitempty"`

	// Version increments on every header update; stale updates are rejected.
	Version int64 `json:"version"`

	Lines    []JournalLine        `json:"lines"`
	Evidence *TransactionEvidence `json:"evidence,omitempty"`
	AuditFields
}

// JournalLine is one debit-or-credit movement against one account within a
// journal entry. Exactly one of Debit/Credit is nonzero in conventional usage,
// but only non-negativity is enforced.
type JournalLine struct {
	LineID        string          `json:"lineID"`
	JournalID     string          `json:"journalID"`
	AccountNumber string          `json:"accountNumber"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	// Position preserves the caller's line order within the entry.
	Position int `json:"position"`

	// Account carries the resolved account metadata when eagerly joined.
	Account *Account `json:"account,omitempty"`
}
