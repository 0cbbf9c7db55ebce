package pgsql

import (
	portsrepo "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	journalRepo := newPgxJournalRepository(dbPool)
	accountRepo := newPgxChartOfAccountRepository(dbPool)
	intercompanyRepo := newPgxIntercompanyRepository(dbPool)

	return portsrepo.RepositoryProvider{
		JournalRepo:      journalRepo,
		AccountRepo:      accountRepo,
		IntercompanyRepo: intercompanyRepo,
	}
}
