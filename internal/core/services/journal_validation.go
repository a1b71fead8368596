package services

import (
	"fmt"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// balanceTolerance is the maximum accepted difference between the debit and
// credit totals of an entry. Inclusive: a difference of exactly 0.01 passes.
var balanceTolerance = decimal.RequireFromString("0.01")

// lineBatch is the normalized result of validating a proposed line set.
type lineBatch struct {
	// Lines carry amounts and positions; IDs are assigned at persistence time.
	Lines []domain.JournalLine
	// AccountNumbers are the distinct referenced numbers in first-seen order.
	AccountNumbers []string
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
}

// validateJournalLines checks a candidate line set for structural correctness
// and debit/credit balance. Checks run in order and short-circuit on the first
// failure; account existence is the caller's job since it needs the registry.
// Pure computation, no side effects.
func validateJournalLines(lines []dto.JournalLineRequest) (*lineBatch, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: a journal entry requires at least two detail lines", apperrors.ErrValidation)
	}

	batch := &lineBatch{
		Lines:       make([]domain.JournalLine, 0, len(lines)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	seen := make(map[string]struct{}, len(lines))

	for i, line := range lines {
		if line.AccountNumber == "" || (line.Debit == nil && line.Credit == nil) {
			return nil, fmt.Errorf("%w: each detail line must have account_id and either debet or kredit", apperrors.ErrValidation)
		}

		debit := decimal.Zero
		if line.Debit != nil {
			debit = *line.Debit
		}
		credit := decimal.Zero
		if line.Credit != nil {
			credit = *line.Credit
		}
		if debit.IsNegative() || credit.IsNegative() {
			return nil, fmt.Errorf("%w: debet and kredit amounts must be non-negative", apperrors.ErrValidation)
		}

		batch.TotalDebit = batch.TotalDebit.Add(debit)
		batch.TotalCredit = batch.TotalCredit.Add(credit)

		if _, ok := seen[line.AccountNumber]; !ok {
			seen[line.AccountNumber] = struct{}{}
			batch.AccountNumbers = append(batch.AccountNumbers, line.AccountNumber)
		}

		batch.Lines = append(batch.Lines, domain.JournalLine{
			AccountNumber: line.AccountNumber,
			Debit:         debit,
			Credit:        credit,
			Position:      i,
		})
	}

	if batch.TotalDebit.Sub(batch.TotalCredit).Abs().GreaterThan(balanceTolerance) {
		return nil, &apperrors.UnbalancedEntryError{
			TotalDebit:  batch.TotalDebit,
			TotalCredit: batch.TotalCredit,
		}
	}

	return batch, nil
}

// missingAccountNumbers returns the numbers from wanted that are absent from
// the resolved registry map, preserving input order.
func missingAccountNumbers(wanted []string, resolved map[string]domain.Account) []string {
	var missing []string
	for _, number := range wanted {
		if _, ok := resolved[number]; !ok {
			missing = append(missing, number)
		}
	}
	return missing
}
