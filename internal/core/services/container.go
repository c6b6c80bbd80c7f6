package services

import (
	portsrepo "github.com/gestaoerp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/gestaoerp/ledger_backend/internal/core/ports/services"
)

// NewServiceContainer wires all application services over the provided repositories.
func NewServiceContainer(accountRepo portsrepo.AccountRepository, journalRepo portsrepo.JournalRepository) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(accountRepo),
		Journal:   NewJournalService(journalRepo, accountRepo),
		Reporting: NewReportingService(accountRepo, journalRepo),
	}
}
