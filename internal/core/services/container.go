package services

import (
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Document: NewDocumentService(repos.DocumentRepo),
		Journal:  NewJournalService(repos.JournalRepo),
		Finance:  NewFinanceService(),
	}
}

// Interface implementation checks.
var (
	_ portssvc.DocumentSvcFacade = (*documentService)(nil)
	_ portssvc.JournalSvcFacade  = (*journalService)(nil)
	_ portssvc.FinanceSvcFacade  = (*financeService)(nil)
)
