package repositories

import (
	"context"

	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
)

// ChartOfAccountLookup resolves account codes for the posting core. The chart
// of accounts is owned by the accounts module; the core treats it as read-only.
type ChartOfAccountLookup interface {
	// ResolveAccount maps (companyID, accountCode) to the chart-of-accounts row.
	// Returns apperrors.ErrNotFound for unknown or foreign codes.
	ResolveAccount(ctx context.Context, companyID, accountCode string) (*domain.ChartOfAccount, error)
}

// ChartOfAccountWriter defines the admin-side write operations used for
// seeding and account maintenance outside the posting path.
type ChartOfAccountWriter interface {
	// SaveAccount persists a new chart-of-accounts row.
	SaveAccount(ctx context.Context, account domain.ChartOfAccount) error
}

// ChartOfAccountRepositoryFacade combines lookup and maintenance operations.
type ChartOfAccountRepositoryFacade interface {
	ChartOfAccountLookup
	ChartOfAccountWriter
}
