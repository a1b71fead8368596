package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrReference indicates that input referenced an identifier that does not exist.
var ErrReference = errors.New("reference error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation conflicts with the current state of a resource,
// e.g. a stale version on update or a foreign key still referencing it on delete.
var ErrConflict = errors.New("resource conflict")

// ErrInternal indicates an unexpected failure in the persistence layer or below.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower level error with an HTTP-ish status code and a message
// safe to surface to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInternal
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// UnbalancedEntryError reports that the debit and credit totals of a journal
// entry differ by more than the accepted tolerance. It carries both totals.
type UnbalancedEntryError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("total debit (%s) does not equal total credit (%s)",
		e.TotalDebit.String(), e.TotalCredit.String())
}

func (e *UnbalancedEntryError) Unwrap() error { return ErrValidation }

// UnknownAccountsError reports journal lines referencing account numbers that
// do not exist in the chart of accounts. It carries the unresolved numbers.
type UnknownAccountsError struct {
	AccountNumbers []string
}

func (e *UnknownAccountsError) Error() string {
	return fmt.Sprintf("account numbers not found: %s", strings.Join(e.AccountNumbers, ", "))
}

func (e *UnknownAccountsError) Unwrap() error { return ErrReference }

// UnknownEvidenceError reports a journal referencing a transaction evidence
// number that does not exist.
type UnknownEvidenceError struct {
	EvidenceNumber string
}

func (e *UnknownEvidenceError) Error() string {
	return fmt.Sprintf("transaction evidence with number '%s' not found", e.EvidenceNumber)
}

func (e *UnknownEvidenceError) Unwrap() error { return ErrReference }
