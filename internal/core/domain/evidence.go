package domain

import "time"

// TransactionEvidence is a source document (receipt, voucher) identified by a
// unique evidence number. A general journal entry may reference one.
type TransactionEvidence struct {
	EvidenceNumber  string    `json:"evidenceNumber"`
	TransactionDate time.Time `json:"transactionDate"`
	Description     string    `json:"description"`
	Reference       string    `json:"reference"`
	AuditFields
}
