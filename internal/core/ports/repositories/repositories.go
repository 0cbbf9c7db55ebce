package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// layer at startup.
type RepositoryProvider struct {
	JournalRepo      JournalRepositoryFacade
	AccountRepo      ChartOfAccountRepositoryFacade
	IntercompanyRepo IntercompanyRepositoryFacade
}
