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

// PgxEvidenceRepository persists transaction evidence documents.
type PgxEvidenceRepository struct {
	BaseRepository
}

func newPgxEvidenceRepository(pool *pgxpool.Pool) portsrepo.EvidenceRepositoryFacade {
	return &PgxEvidenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EvidenceRepositoryFacade = (*PgxEvidenceRepository)(nil)

const evidenceColumns = `evidence_number, transaction_date, description, reference, created_at, updated_at`

func scanEvidence(row pgx.Row) (models.TransactionEvidence, error) {
	var m models.TransactionEvidence
	err := row.Scan(
		&m.EvidenceNumber,
		&m.TransactionDate,
		&m.Description,
		&m.Reference,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveEvidence inserts a new evidence row.
func (r *PgxEvidenceRepository) SaveEvidence(ctx context.Context, evidence domain.TransactionEvidence) error {
	m := mapping.ToModelEvidence(evidence)
	query := `
		INSERT INTO transaction_evidences (evidence_number, transaction_date, description, reference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EvidenceNumber,
		m.TransactionDate,
		m.Description,
		m.Reference,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to insert evidence "+m.EvidenceNumber)
	}
	return nil
}

// FindEvidenceByNumber retrieves one evidence document by its unique number.
func (r *PgxEvidenceRepository) FindEvidenceByNumber(ctx context.Context, evidenceNumber string) (*domain.TransactionEvidence, error) {
	query := `SELECT ` + evidenceColumns + ` FROM transaction_evidences WHERE evidence_number = $1;`
	m, err := scanEvidence(r.Pool.QueryRow(ctx, query, evidenceNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("evidence " + evidenceNumber + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find evidence "+evidenceNumber, err)
	}
	evidence := mapping.ToDomainEvidence(m)
	return &evidence, nil
}

// ListEvidences retrieves a filtered page of evidences plus the total count.
func (r *PgxEvidenceRepository) ListEvidences(ctx context.Context, filter portsrepo.EvidenceListFilter) ([]domain.TransactionEvidence, int64, error) {
	where := ` WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (evidence_number ILIKE $%d OR description ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND transaction_date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND transaction_date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM transaction_evidences` + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count evidences", err)
	}

	query := `SELECT ` + evidenceColumns + ` FROM transaction_evidences` + where +
		fmt.Sprintf(` ORDER BY transaction_date DESC, evidence_number ASC LIMIT $%d OFFSET $%d;`, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query evidences", err)
	}
	defer rows.Close()

	var ms []models.TransactionEvidence
	for rows.Next() {
		m, err := scanEvidence(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan evidence row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating evidence rows", err)
	}

	return mapping.ToDomainEvidenceSlice(ms), total, nil
}

// EvidenceExists reports whether an evidence number exists. It runs on q so
// journal writes can resolve references inside their own transaction.
func (r *PgxEvidenceRepository) EvidenceExists(ctx context.Context, q portsrepo.Querier, evidenceNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM transaction_evidences WHERE evidence_number = $1);`
	if err := q.QueryRow(ctx, query, evidenceNumber).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check evidence "+evidenceNumber, err)
	}
	return exists, nil
}

// UpdateEvidence updates the mutable columns of an evidence row.
func (r *PgxEvidenceRepository) UpdateEvidence(ctx context.Context, evidence domain.TransactionEvidence) error {
	m := mapping.ToModelEvidence(evidence)
	query := `
		UPDATE transaction_evidences
		SET transaction_date = $2, description = $3, reference = $4, updated_at = $5
		WHERE evidence_number = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EvidenceNumber,
		m.TransactionDate,
		m.Description,
		m.Reference,
		m.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to update evidence "+m.EvidenceNumber)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("evidence " + m.EvidenceNumber + " not found")
	}
	return nil
}

// DeleteEvidence removes an evidence row. Evidences still referenced by
// general journal entries fail the foreign key check and surface as a conflict.
func (r *PgxEvidenceRepository) DeleteEvidence(ctx context.Context, evidenceNumber string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transaction_evidences WHERE evidence_number = $1;`, evidenceNumber)
	if err != nil {
		return mapPgError(err, "evidence "+evidenceNumber+" is still referenced by journal entries")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("evidence " + evidenceNumber + " not found")
	}
	return nil
}
