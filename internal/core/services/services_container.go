package services

import (
	portsrepo "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/repositories"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
)

// NewServiceContainer wires repositories into the full service set.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	posting := NewPostingService(repos.JournalRepo, repos.AccountRepo)
	return &portssvc.ServiceContainer{
		Accounts:       NewAccountService(repos.AccountRepo),
		Posting:        posting,
		Expense:        NewExpensePostingService(posting),
		Intercompany:   NewIntercompanyService(repos.IntercompanyRepo),
		Reconciliation: NewReconciliationService(repos.IntercompanyRepo),
	}
}
