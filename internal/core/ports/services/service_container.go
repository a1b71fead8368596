package services

// ServiceContainer bundles the service facades for injection into the
// handler layer.
type ServiceContainer struct {
	Account          AccountSvcFacade
	Evidence         EvidenceSvcFacade
	GeneralJournal   JournalSvcFacade
	AdjustingJournal JournalSvcFacade
}
