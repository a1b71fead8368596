package services

import (
	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	portsrepo "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/repositories"
	portssvc "github.com/akuntansi-app/akuntansi-backend/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the full service layer.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:  NewAccountService(repos.AccountRepo),
		Evidence: NewEvidenceService(repos.EvidenceRepo),
		GeneralJournal: NewJournalService(
			domain.GeneralJournal, repos.GeneralJournalRepo, repos.AccountRepo, repos.EvidenceRepo,
		),
		AdjustingJournal: NewJournalService(
			domain.AdjustingJournal, repos.AdjustingJournalRepo, repos.AccountRepo, repos.EvidenceRepo,
		),
	}
}
