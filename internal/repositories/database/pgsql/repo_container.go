package pgsql

import (
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	portsrepo "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:          newPgxAccountRepository(dbPool),
		EvidenceRepo:         newPgxEvidenceRepository(dbPool),
		GeneralJournalRepo:   newPgxJournalRepository(dbPool, domain.GeneralJournal),
		AdjustingJournalRepo: newPgxJournalRepository(dbPool, domain.AdjustingJournal),
	}
}
