package services

import (
	"context"

	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
)

// ChartOfAccountSvc defines the admin-side maintenance of the chart of
// accounts, used for seeding GL codes before the posting paths reference them.
type ChartOfAccountSvc interface {
	// CreateAccount persists a new active chart-of-accounts row for a company.
	// Returns apperrors.ErrDuplicate when the (companyID, accountCode) pair
	// already exists.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest) (*domain.ChartOfAccount, error)
}
