package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry mirrors a header row of the general_journals or
// adjusting_journals table. SideReference holds evidence_number for the
// general variant and voucher_number for the adjusting one.
type JournalEntry struct {
	JournalID     string    `json:"journalID"`
	EntryDate     time.Time `json:"entryDate"`
	Description   string    `json:"description"`
	SideReference *string   `json:"sideReference"`
	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// JournalLine mirrors a row of a journal line table.
type JournalLine struct {
	LineID        string          `json:"lineID"`
	JournalID     string          `json:"journalID"`
	AccountNumber string          `json:"accountNumber"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Position      int             `json:"position"`
}
