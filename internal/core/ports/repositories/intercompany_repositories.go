package repositories

import (
	"context"
	"time"

	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IntercompanyTxnReader defines read operations for intercompany transaction data
type IntercompanyTxnReader interface {
	// FindTransactionByID retrieves a single intercompany leg.
	FindTransactionByID(ctx context.Context, txnID string) (*domain.IntercompanyTransaction, error)

	// FindUnreconciled retrieves unreconciled legs. An empty companyID selects
	// across all companies. Results are ordered deterministically (creation
	// order) so auto-matching picks the same candidate on every run.
	FindUnreconciled(ctx context.Context, companyID string) ([]domain.IntercompanyTransaction, error)
}

// IntercompanyTxnWriter defines write operations for intercompany transaction data
type IntercompanyTxnWriter interface {
	// SaveTransaction persists one leg of a cross-company event.
	SaveTransaction(ctx context.Context, txn domain.IntercompanyTransaction) error

	// SetCounterpart links a leg to its mirrored counterpart on the other
	// company's books.
	SetCounterpart(ctx context.Context, txnID, counterpartTxnID string, updatedByUserID string, updatedAt time.Time) error

	// MarkReconciled sets the one-way reconciled flag on a leg and, when the
	// leg is unlinked, records its counterpart.
	MarkReconciled(ctx context.Context, txnID string, counterpartTxnID *string, reconciledBy string, reconciledAt time.Time) error
}

// IntercompanyBalanceStore maintains the materialized running position per
// company pair.
type IntercompanyBalanceStore interface {
	// UpsertBalance applies delta to the (from, to) pair balance as a single
	// atomic increment at the storage layer, so concurrent postings against
	// the same pair cannot lose updates.
	UpsertBalance(ctx context.Context, fromCompanyID, toCompanyID string, delta decimal.Decimal, txnDate time.Time) error

	// FindBalance retrieves the running position from one company to another.
	// A pair with no recorded transactions yields a zero balance.
	FindBalance(ctx context.Context, fromCompanyID, toCompanyID string) (*domain.IntercompanyBalance, error)
}

// IntercompanyRepositoryFacade combines all intercompany repository interfaces
type IntercompanyRepositoryFacade interface {
	IntercompanyTxnReader
	IntercompanyTxnWriter
	IntercompanyBalanceStore
}
