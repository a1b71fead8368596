package models

import "time"

// TransactionEvidence mirrors a row of the transaction_evidences table.
type TransactionEvidence struct {
	EvidenceNumber  string    `json:"evidenceNumber"`
	TransactionDate time.Time `json:"transactionDate"`
	Description     string    `json:"description"`
	Reference       string    `json:"reference"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
