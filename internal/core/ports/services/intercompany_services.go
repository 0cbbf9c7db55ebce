package services

import (
	"context"

	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
)

// IntercompanySvcFacade records cross-company events as mirrored transaction
// pairs and maintains the running balances between group companies.
type IntercompanySvcFacade interface {
	// RecordInvoice creates the receivable leg on the invoicing company's
	// books and the payable leg on the customer company's books.
	RecordInvoice(ctx context.Context, req dto.RecordIntercompanyInvoiceRequest) (*domain.IntercompanyTransaction, *domain.IntercompanyTransaction, error)

	// RecordPayment creates the mirrored pair in the position-reducing
	// direction.
	RecordPayment(ctx context.Context, req dto.RecordIntercompanyPaymentRequest) (*domain.IntercompanyTransaction, *domain.IntercompanyTransaction, error)

	// BalanceBetween returns the running position from one company to another.
	BalanceBetween(ctx context.Context, fromCompanyID, toCompanyID string) (*domain.IntercompanyBalance, error)
}

// ReconciliationSvcFacade matches and links counterpart intercompany legs.
type ReconciliationSvcFacade interface {
	// AutoReconcile matches unreconciled legs best-effort and returns how many
	// transactions were marked reconciled. An empty companyID scans all
	// companies.
	AutoReconcile(ctx context.Context, companyID string) (int, error)

	// ManualReconcile links two specific legs after verifying their amounts
	// agree.
	ManualReconcile(ctx context.Context, txnID, counterpartTxnID, reconciledBy string) error
}
