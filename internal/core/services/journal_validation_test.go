package services

import (
	"errors"
	"testing"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidateJournalLines_Balanced(t *testing.T) {
	batch, err := validateJournalLines([]dto.JournalLineRequest{
		{AccountNumber: "101", Debit: dec("150.75")},
		{AccountNumber: "401", Credit: dec("150.75")},
	})

	require.NoError(t, err)
	assert.True(t, batch.TotalDebit.Equal(decimal.RequireFromString("150.75")))
	assert.True(t, batch.TotalCredit.Equal(decimal.RequireFromString("150.75")))
	assert.Equal(t, []string{"101", "401"}, batch.AccountNumbers)
}

func TestValidateJournalLines_ToleranceBoundary(t *testing.T) {
	// A difference of exactly 0.01 is accepted.
	_, err := validateJournalLines([]dto.JournalLineRequest{
		{AccountNumber: "101", Debit: dec("100.01")},
		{AccountNumber: "401", Credit: dec("100.00")},
	})
	assert.NoError(t, err)

	// Anything beyond it is not, even by a fraction of a cent.
	_, err = validateJournalLines([]dto.JournalLineRequest{
		{AccountNumber: "101", Debit: dec("100.011")},
		{AccountNumber: "401", Credit: dec("100.00")},
	})
	require.Error(t, err)

	var unbalanced *apperrors.UnbalancedEntryError
	require.True(t, errors.As(err, &unbalanced))
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.True(t, unbalanced.TotalDebit.Equal(decimal.RequireFromString("100.011")))
	assert.True(t, unbalanced.TotalCredit.Equal(decimal.RequireFromString("100.00")))
}

func TestValidateJournalLines_RequiresTwoLines(t *testing.T) {
	_, err := validateJournalLines([]dto.JournalLineRequest{
		{AccountNumber: "101", Debit: dec("50")},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = validateJournalLines(nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateJournalLines_MalformedLine(t *testing.T) {
	// Missing account number.
	_, err := validateJournalLines([]dto.JournalLineRequest{
		{AccountNumber: "", Debit: dec("50")},
		{AccountNumber: "401", Credit: dec("50")},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Neither debit nor credit supplied.
	_, err = validateJournalLines([]dto.JournalLineRequest{
		{AccountNumber: "101"},
		{AccountNumber: "401", Credit: dec("50")},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateJournalLines_RejectsNegativeAmounts(t *testing.T) {
	_, err := validateJournalLines([]dto.JournalLineRequest{
		{AccountNumber: "101", Debit: dec("-50")},
		{AccountNumber: "401", Credit: dec("-50")},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateJournalLines_PreservesOrderAndPositions(t *testing.T) {
	batch, err := validateJournalLines([]dto.JournalLineRequest{
		{AccountNumber: "501", Debit: dec("30")},
		{AccountNumber: "101", Debit: dec("70")},
		{AccountNumber: "501", Credit: dec("100")},
	})

	require.NoError(t, err)
	require.Len(t, batch.Lines, 3)
	for i, line := range batch.Lines {
		assert.Equal(t, i, line.Position)
	}
	// Distinct numbers in first-seen order, duplicates collapsed.
	assert.Equal(t, []string{"501", "101"}, batch.AccountNumbers)
}

func TestValidateJournalLines_ZeroAmountLineCounts(t *testing.T) {
	// An explicit zero is a supplied amount; the line is structurally valid.
	batch, err := validateJournalLines([]dto.JournalLineRequest{
		{AccountNumber: "101", Debit: dec("0"), Credit: dec("25")},
		{AccountNumber: "401", Debit: dec("25"), Credit: dec("0")},
	})

	require.NoError(t, err)
	assert.True(t, batch.TotalDebit.Equal(batch.TotalCredit))
}

func TestMissingAccountNumbers(t *testing.T) {
	resolved := map[string]domain.Account{
		"101": {AccountNumber: "101"},
		"401": {AccountNumber: "401"},
	}

	missing := missingAccountNumbers([]string{"101", "999", "401", "888"}, resolved)
	assert.Equal(t, []string{"999", "888"}, missing)

	assert.Nil(t, missingAccountNumbers([]string{"101", "401"}, resolved))
}
