package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/akuntansi-app/akuntansi-backend/internal/apperrors"
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	portsrepo "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/repositories"
	"github.com/akuntansi-app/akuntansi-backend/internal/models"
	"github.com/akuntansi-app/akuntansi-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// journalTables holds the table pair backing one journal variant.
type journalTables struct {
	headers string
	lines   string
}

var tablesByKind = map[domain.JournalKind]journalTables{
	domain.GeneralJournal:   {headers: "general_journals", lines: "general_journal_lines"},
	domain.AdjustingJournal: {headers: "adjusting_journals", lines: "adjusting_journal_lines"},
}

// PgxJournalRepository persists one journal variant. The same implementation
// serves both variants; the kind picks the table pair at construction time.
type PgxJournalRepository struct {
	BaseRepository
	kind   domain.JournalKind
	tables journalTables
}

func newPgxJournalRepository(pool *pgxpool.Pool, kind domain.JournalKind) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		kind:           kind,
		tables:         tablesByKind[kind],
	}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const journalHeaderColumns = `journal_id, entry_date, description, side_reference, version, created_at, updated_at`
const journalLineColumns = `line_id, journal_id, account_number, debit, credit, position`

func scanJournalHeader(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalID,
		&m.EntryDate,
		&m.Description,
		&m.SideReference,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// CreateHeader inserts a new header row inside tx.
func (r *PgxJournalRepository) CreateHeader(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO ` + r.tables.headers + ` (` + journalHeaderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		m.JournalID,
		m.EntryDate,
		m.Description,
		m.SideReference,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to insert journal "+m.JournalID)
	}
	return nil
}

// BulkInsertLines inserts the line rows of one entry inside tx, stamping the
// position from the slice order.
func (r *PgxJournalRepository) BulkInsertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}

	query := `
		INSERT INTO ` + r.tables.lines + ` (` + journalLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for i, line := range lines {
		m := mapping.ToModelJournalLine(line)
		m.Position = i
		batch.Queue(query, m.LineID, m.JournalID, m.AccountNumber, m.Debit, m.Credit, m.Position)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return mapPgError(err, "failed to insert journal lines")
		}
	}
	return nil
}

// DestroyLinesForJournal removes every line row of an entry inside tx.
func (r *PgxJournalRepository) DestroyLinesForJournal(ctx context.Context, tx pgx.Tx, journalID string) error {
	query := `DELETE FROM ` + r.tables.lines + ` WHERE journal_id = $1;`
	if _, err := tx.Exec(ctx, query, journalID); err != nil {
		return mapPgError(err, "failed to delete lines of journal "+journalID)
	}
	return nil
}

// UpdateHeader patches a header row guarded by its version counter and bumps
// the version. A stale expected version yields ErrConflict.
func (r *PgxJournalRepository) UpdateHeader(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, expectedVersion int64) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE ` + r.tables.headers + `
		SET entry_date = $2, description = $3, side_reference = $4, version = version + 1, updated_at = $5
		WHERE journal_id = $1 AND version = $6;
	`
	tag, err := tx.Exec(ctx, query,
		m.JournalID,
		m.EntryDate,
		m.Description,
		m.SideReference,
		m.UpdatedAt,
		expectedVersion,
	)
	if err != nil {
		return mapPgError(err, "failed to update journal "+m.JournalID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s was modified concurrently", apperrors.ErrConflict, m.JournalID)
	}
	return nil
}

// DestroyHeader removes a header row inside tx.
func (r *PgxJournalRepository) DestroyHeader(ctx context.Context, tx pgx.Tx, journalID string) error {
	query := `DELETE FROM ` + r.tables.headers + ` WHERE journal_id = $1;`
	tag, err := tx.Exec(ctx, query, journalID)
	if err != nil {
		return mapPgError(err, "failed to delete journal "+journalID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal " + journalID + " not found")
	}
	return nil
}

// FindHeaderForUpdate retrieves a header row inside tx with a row lock, so
// concurrent updates to the same entry serialize.
func (r *PgxJournalRepository) FindHeaderForUpdate(ctx context.Context, tx pgx.Tx, journalID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalHeaderColumns + ` FROM ` + r.tables.headers + ` WHERE journal_id = $1 FOR UPDATE;`
	m, err := scanJournalHeader(tx.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal " + journalID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to lock journal "+journalID, err)
	}
	entry := mapping.ToDomainJournalEntry(m, r.kind)
	return &entry, nil
}

// FindLinesForJournal retrieves the line rows of an entry on q, ordered by
// position ascending.
func (r *PgxJournalRepository) FindLinesForJournal(ctx context.Context, q portsrepo.Querier, journalID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM ` + r.tables.lines + ` WHERE journal_id = $1 ORDER BY position ASC;`
	rows, err := q.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines of journal "+journalID, err)
	}
	defer rows.Close()
	return r.collectLines(rows, nil)
}

// FindWithLines retrieves one entry with its lines eagerly joined, lines
// ordered by position ascending with account metadata resolved. For the
// general variant the referenced evidence document is joined as well.
func (r *PgxJournalRepository) FindWithLines(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalHeaderColumns + ` FROM ` + r.tables.headers + ` WHERE journal_id = $1;`
	m, err := scanJournalHeader(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal " + journalID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find journal "+journalID, err)
	}
	entry := mapping.ToDomainJournalEntry(m, r.kind)

	if err := r.attachLines(ctx, []*domain.JournalEntry{&entry}); err != nil {
		return nil, err
	}
	if err := r.attachEvidence(ctx, []*domain.JournalEntry{&entry}); err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindAllWithLines retrieves a filtered page of entries, each with joined
// lines, plus the total entry count.
func (r *PgxJournalRepository) FindAllWithLines(ctx context.Context, filter portsrepo.JournalListFilter) ([]domain.JournalEntry, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND description ILIKE $%d", argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND entry_date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND entry_date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.AccountNumber != "" {
		where += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM %s l WHERE l.journal_id = %s.journal_id AND l.account_number = $%d)",
			r.tables.lines, r.tables.headers, argPos)
		args = append(args, filter.AccountNumber)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM ` + r.tables.headers + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count journals", err)
	}

	query := `SELECT ` + journalHeaderColumns + ` FROM ` + r.tables.headers + where +
		fmt.Sprintf(` ORDER BY entry_date DESC, created_at DESC LIMIT $%d OFFSET $%d;`, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query journals", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanJournalHeader(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan journal row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m, r.kind))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating journal rows", err)
	}

	refs := make([]*domain.JournalEntry, len(entries))
	for i := range entries {
		refs[i] = &entries[i]
	}
	if err := r.attachLines(ctx, refs); err != nil {
		return nil, 0, err
	}
	if err := r.attachEvidence(ctx, refs); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// attachLines fetches the lines of the given entries in one query, resolves
// the account of each line, and assigns them in position order.
func (r *PgxJournalRepository) attachLines(ctx context.Context, entries []*domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	journalIDs := make([]string, len(entries))
	byID := make(map[string]*domain.JournalEntry, len(entries))
	for i, e := range entries {
		journalIDs[i] = e.JournalID
		byID[e.JournalID] = e
		e.Lines = nil
	}

	query := `
		SELECT l.line_id, l.journal_id, l.account_number, l.debit, l.credit, l.position,
		       a.account_number, a.name, a.account_group, a.normal_balance_side, a.created_at, a.updated_at
		FROM ` + r.tables.lines + ` l
		JOIN accounts a ON a.account_number = l.account_number
		WHERE l.journal_id = ANY($1)
		ORDER BY l.journal_id, l.position ASC;
	`
	rows, err := r.Pool.Query(ctx, query, journalIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query journal lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var lm models.JournalLine
		var am models.Account
		if err := rows.Scan(
			&lm.LineID, &lm.JournalID, &lm.AccountNumber, &lm.Debit, &lm.Credit, &lm.Position,
			&am.AccountNumber, &am.Name, &am.AccountGroup, &am.NormalBalanceSide, &am.CreatedAt, &am.UpdatedAt,
		); err != nil {
			return apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		line := mapping.ToDomainJournalLine(lm)
		account := mapping.ToDomainAccount(am)
		line.Account = &account
		if entry, ok := byID[lm.JournalID]; ok {
			entry.Lines = append(entry.Lines, line)
		}
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return nil
}

// attachEvidence resolves the referenced evidence documents of general journal
// entries. Adjusting journals carry a free-form voucher number instead.
func (r *PgxJournalRepository) attachEvidence(ctx context.Context, entries []*domain.JournalEntry) error {
	if r.kind != domain.GeneralJournal {
		return nil
	}

	wanted := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.EvidenceNumber != nil && !seen[*e.EvidenceNumber] {
			seen[*e.EvidenceNumber] = true
			wanted = append(wanted, *e.EvidenceNumber)
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	query := `SELECT ` + evidenceColumns + ` FROM transaction_evidences WHERE evidence_number = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, wanted)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query evidence references", err)
	}
	defer rows.Close()

	found := make(map[string]domain.TransactionEvidence, len(wanted))
	for rows.Next() {
		m, err := scanEvidence(rows)
		if err != nil {
			return apperrors.NewAppError(500, "failed to scan evidence row", err)
		}
		found[m.EvidenceNumber] = mapping.ToDomainEvidence(m)
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating evidence rows", err)
	}

	for _, e := range entries {
		if e.EvidenceNumber == nil {
			continue
		}
		if evidence, ok := found[*e.EvidenceNumber]; ok {
			e.Evidence = &evidence
		}
	}
	return nil
}

// collectLines scans line rows, optionally attaching pre-resolved accounts.
func (r *PgxJournalRepository) collectLines(rows pgx.Rows, accounts map[string]domain.Account) ([]domain.JournalLine, error) {
	var lines []domain.JournalLine
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(&m.LineID, &m.JournalID, &m.AccountNumber, &m.Debit, &m.Credit, &m.Position); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line row", err)
		}
		line := mapping.ToDomainJournalLine(m)
		if account, ok := accounts[m.AccountNumber]; ok {
			account := account
			line.Account = &account
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal line rows", err)
	}
	return lines, nil
}
