package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	portsrepo "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/repositories"
	portssvc "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/services"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/akuntansi-app/akuntansi-backend/internal/middleware"
)

// journalService coordinates create/update/delete of balanced journal entries
// as all-or-nothing operations. One implementation serves both variants; the
// kind decides which store it writes to and which side reference it resolves.
type journalService struct {
	kind         domain.JournalKind
	journalRepo  portsrepo.JournalRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
	evidenceRepo portsrepo.EvidenceRepositoryFacade
}

// NewJournalService creates the journal coordinator for one variant.
func NewJournalService(
	kind domain.JournalKind,
	journalRepo portsrepo.JournalRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	evidenceRepo portsrepo.EvidenceRepositoryFacade,
) portssvc.JournalSvcFacade {
	return &journalService{
		kind:         kind,
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		evidenceRepo: evidenceRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// Kind implements portssvc.JournalSvcFacade.
func (s *journalService) Kind() domain.JournalKind {
	return s.kind
}

// resolveReferences checks line account numbers against the registry and, for
// the general variant, the evidence reference against the evidence store. Both
// lookups run on the operation's transaction so they see its snapshot.
func (s *journalService) resolveReferences(ctx context.Context, tx pgx.Tx, batch *lineBatch, evidenceNumber *string) (map[string]domain.Account, error) {
	if s.kind == domain.GeneralJournal && evidenceNumber != nil {
		exists, err := s.evidenceRepo.EvidenceExists(ctx, tx, *evidenceNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve evidence reference: %w", err)
		}
		if !exists {
			return nil, &apperrors.UnknownEvidenceError{EvidenceNumber: *evidenceNumber}
		}
	}

	accounts, err := s.accountRepo.ResolveExistingAccounts(ctx, tx, batch.AccountNumbers)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve accounts: %w", err)
	}
	if missing := missingAccountNumbers(batch.AccountNumbers, accounts); len(missing) > 0 {
		return nil, &apperrors.UnknownAccountsError{AccountNumbers: missing}
	}
	return accounts, nil
}

// CreateJournal validates and persists a new entry with its lines as one
// atomic unit. On any failure no header or line row survives.
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: tanggal is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: deskripsi_transaksi is required", apperrors.ErrValidation)
	}

	batch, err := validateJournalLines(req.Lines)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := domain.JournalEntry{
		JournalID:   uuid.NewString(),
		Kind:        s.kind,
		EntryDate:   req.Date.Time,
		Description: req.Description,
		Version:     1,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	switch s.kind {
	case domain.GeneralJournal:
		entry.EvidenceNumber = normalizeRef(req.EvidenceNumber)
	case domain.AdjustingJournal:
		entry.VoucherNumber = normalizeRef(req.VoucherNumber)
	}

	err = s.journalRepo.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := s.resolveReferences(ctx, tx, batch, entry.EvidenceNumber); err != nil {
			return err
		}
		if err := s.journalRepo.CreateHeader(ctx, tx, entry); err != nil {
			return err
		}
		return s.journalRepo.BulkInsertLines(ctx, tx, newLines(entry.JournalID, batch.Lines))
	})
	if err != nil {
		if isClientError(err) {
			logger.Warn("Journal creation rejected", slog.String("kind", string(s.kind)), slog.String("error", err.Error()))
		} else {
			logger.Error("Failed to create journal", slog.String("kind", string(s.kind)), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Journal created", slog.String("kind", string(s.kind)), slog.String("journal_id", entry.JournalID))
	return s.journalRepo.FindWithLines(ctx, entry.JournalID)
}

// GetJournalByID retrieves one entry with lines and resolved account metadata.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindWithLines(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return entry, nil
}

// ListJournals retrieves a filtered page of entries with their lines.
func (s *journalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 10
	}

	filter := portsrepo.JournalListFilter{
		Search:        params.Search,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		AccountNumber: params.AccountNumber,
		Limit:         limit,
		Offset:        (page - 1) * limit,
	}

	entries, total, err := s.journalRepo.FindAllWithLines(ctx, filter)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("kind", string(s.kind)), slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.ListJournalsResponse{
		Journals:   dto.ToJournalResponses(entries),
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// UpdateJournal patches the header and replaces the full line set as one
// atomic unit. Header fields are patched only when explicitly supplied; the
// old lines are destroyed wholesale and the new set inserted.
func (s *journalService) UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	batch, err := validateJournalLines(req.Lines)
	if err != nil {
		return nil, err
	}

	err = s.journalRepo.WithTx(ctx, func(tx pgx.Tx) error {
		entry, err := s.journalRepo.FindHeaderForUpdate(ctx, tx, journalID)
		if err != nil {
			return err
		}
		expectedVersion := entry.Version

		if err := s.applyHeaderPatch(entry, req); err != nil {
			return err
		}
		if _, err := s.resolveReferences(ctx, tx, batch, entry.EvidenceNumber); err != nil {
			return err
		}

		entry.UpdatedAt = time.Now().UTC()
		if err := s.journalRepo.UpdateHeader(ctx, tx, *entry, expectedVersion); err != nil {
			return err
		}
		if err := s.journalRepo.DestroyLinesForJournal(ctx, tx, journalID); err != nil {
			return err
		}
		return s.journalRepo.BulkInsertLines(ctx, tx, newLines(journalID, batch.Lines))
	})
	if err != nil {
		if isClientError(err) {
			logger.Warn("Journal update rejected", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		} else {
			logger.Error("Failed to update journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Journal updated", slog.String("kind", string(s.kind)), slog.String("journal_id", journalID))
	return s.journalRepo.FindWithLines(ctx, journalID)
}

// DeleteJournal destroys the lines then the header atomically and returns the
// entry as it existed before the delete.
func (s *journalService) DeleteJournal(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var snapshot *domain.JournalEntry
	err := s.journalRepo.WithTx(ctx, func(tx pgx.Tx) error {
		entry, err := s.journalRepo.FindHeaderForUpdate(ctx, tx, journalID)
		if err != nil {
			return err
		}
		lines, err := s.journalRepo.FindLinesForJournal(ctx, tx, journalID)
		if err != nil {
			return err
		}
		entry.Lines = lines
		snapshot = entry

		if err := s.journalRepo.DestroyLinesForJournal(ctx, tx, journalID); err != nil {
			return err
		}
		return s.journalRepo.DestroyHeader(ctx, tx, journalID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Journal deleted", slog.String("kind", string(s.kind)), slog.String("journal_id", journalID))
	return snapshot, nil
}

// applyHeaderPatch folds explicitly supplied fields into the header. Absent
// fields stay untouched; null clears the nullable side reference and is
// rejected for the non-nullable date and description.
func (s *journalService) applyHeaderPatch(entry *domain.JournalEntry, req dto.UpdateJournalRequest) error {
	if req.Date.Set {
		if !req.Date.Valid || req.Date.Value.IsZero() {
			return fmt.Errorf("%w: tanggal cannot be cleared", apperrors.ErrValidation)
		}
		entry.EntryDate = req.Date.Value.Time
	}
	if req.Description.Set {
		if !req.Description.Valid || strings.TrimSpace(req.Description.Value) == "" {
			return fmt.Errorf("%w: deskripsi_transaksi cannot be cleared", apperrors.ErrValidation)
		}
		entry.Description = req.Description.Value
	}
	switch s.kind {
	case domain.GeneralJournal:
		if req.EvidenceNumber.Set {
			if !req.EvidenceNumber.Valid || req.EvidenceNumber.Value == "" {
				entry.EvidenceNumber = nil
			} else {
				entry.EvidenceNumber = &req.EvidenceNumber.Value
			}
		}
	case domain.AdjustingJournal:
		if req.VoucherNumber.Set {
			if !req.VoucherNumber.Valid || req.VoucherNumber.Value == "" {
				entry.VoucherNumber = nil
			} else {
				entry.VoucherNumber = &req.VoucherNumber.Value
			}
		}
	}
	return nil
}

// newLines stamps fresh IDs and the owning journal onto a validated batch.
func newLines(journalID string, lines []domain.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	for i, line := range lines {
		line.LineID = uuid.NewString()
		line.JournalID = journalID
		out[i] = line
	}
	return out
}

// normalizeRef maps nil and empty references to nil.
func normalizeRef(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}

// isClientError reports whether err is caused by the request rather than the
// system, for log level selection.
func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrReference) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrDuplicate)
}
