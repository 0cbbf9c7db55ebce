package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/himanshudhami/InvoiceX-sub016/internal/apperrors"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	portsrepo "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/repositories"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/middleware"
)

// reconciliationService matches unreconciled intercompany legs best-effort.
// Reconciliation is one-way: a reconciled leg never goes back; corrections
// are made by reversing and re-posting, not by flipping the flag.
type reconciliationService struct {
	icRepo portsrepo.IntercompanyRepositoryFacade
	now    func() time.Time
}

// ReconciliationOption overrides the clock, mainly for tests.
type ReconciliationOption func(*reconciliationService)

// WithReconClock substitutes the wall clock.
func WithReconClock(now func() time.Time) ReconciliationOption {
	return func(s *reconciliationService) { s.now = now }
}

// NewReconciliationService creates a new ReconciliationMatcher.
func NewReconciliationService(icRepo portsrepo.IntercompanyRepositoryFacade, opts ...ReconciliationOption) portssvc.ReconciliationSvcFacade {
	s := &reconciliationService{
		icRepo: icRepo,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// AutoReconcile scans unreconciled legs for counterpart candidates with the
// companies swapped, the same amount, the same transaction date and the same
// document number. The first candidate in creation order wins; ambiguous
// matches are not resolved further and are left to manual review if the
// match later proves wrong. Returns the number of transactions reconciled.
func (s *reconciliationService) AutoReconcile(ctx context.Context, companyID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Always scan the full unreconciled set: a leg owned by companyID can
	// only pair with a leg owned by its counterparty.
	candidates, err := s.icRepo.FindUnreconciled(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to load unreconciled transactions: %w", err)
	}

	now := s.now()
	reconciled := 0
	consumed := make(map[string]bool, len(candidates))

	for i := range candidates {
		txn := &candidates[i]
		if consumed[txn.TxnID] {
			continue
		}
		if companyID != "" && txn.CompanyID != companyID {
			continue
		}

		match := findCounterpart(txn, candidates, consumed)
		if match == nil {
			continue
		}

		link := txn.CounterpartTxnID == nil || match.CounterpartTxnID == nil
		if err := s.markPair(ctx, txn, match, "auto-reconcile", link, now); err != nil {
			return reconciled, err
		}
		consumed[txn.TxnID] = true
		consumed[match.TxnID] = true
		reconciled += 2

		logger.Info("Auto-reconciled intercompany pair",
			slog.String("txn_id", txn.TxnID),
			slog.String("counterpart_txn_id", match.TxnID),
			slog.String("doc_number", txn.SourceDocNumber),
			slog.String("amount", txn.Amount.String()))
	}

	return reconciled, nil
}

// ManualReconcile links two specific legs. Mismatched amounts are rejected
// before any mutation.
func (s *reconciliationService) ManualReconcile(ctx context.Context, txnID, counterpartTxnID, reconciledBy string) error {
	if txnID == counterpartTxnID {
		return fmt.Errorf("%w: a transaction cannot reconcile against itself", apperrors.ErrValidation)
	}

	txn, err := s.icRepo.FindTransactionByID(ctx, txnID)
	if err != nil {
		return err
	}
	counterpart, err := s.icRepo.FindTransactionByID(ctx, counterpartTxnID)
	if err != nil {
		return err
	}

	if txn.Reconciled || counterpart.Reconciled {
		return apperrors.ErrAlreadyReconciled
	}
	if !txn.Amount.Equal(counterpart.Amount) {
		return fmt.Errorf("%w: %s vs %s", apperrors.ErrReconcileAmountMismatch, txn.Amount, counterpart.Amount)
	}

	link := txn.CounterpartTxnID == nil || counterpart.CounterpartTxnID == nil
	return s.markPair(ctx, txn, counterpart, reconciledBy, link, s.now())
}

func (s *reconciliationService) markPair(ctx context.Context, a, b *domain.IntercompanyTransaction, reconciledBy string, link bool, now time.Time) error {
	var aCounterpart, bCounterpart *string
	if link {
		aCounterpart = &b.TxnID
		bCounterpart = &a.TxnID
	}
	if err := s.icRepo.MarkReconciled(ctx, a.TxnID, aCounterpart, reconciledBy, now); err != nil {
		return fmt.Errorf("failed to mark %s reconciled: %w", a.TxnID, err)
	}
	if err := s.icRepo.MarkReconciled(ctx, b.TxnID, bCounterpart, reconciledBy, now); err != nil {
		return fmt.Errorf("failed to mark %s reconciled: %w", b.TxnID, err)
	}
	return nil
}

// findCounterpart returns the first unconsumed candidate whose companies are
// the mirror of txn's and whose amount, date and document number agree.
func findCounterpart(txn *domain.IntercompanyTransaction, candidates []domain.IntercompanyTransaction, consumed map[string]bool) *domain.IntercompanyTransaction {
	for i := range candidates {
		c := &candidates[i]
		if c.TxnID == txn.TxnID || consumed[c.TxnID] {
			continue
		}
		if c.CompanyID != txn.CounterpartyCompanyID || c.CounterpartyCompanyID != txn.CompanyID {
			continue
		}
		if !c.Amount.Equal(txn.Amount) {
			continue
		}
		if !sameDay(c.TxnDate, txn.TxnDate) {
			continue
		}
		if c.SourceDocNumber != txn.SourceDocNumber {
			continue
		}
		return c
	}
	return nil
}

// sameDay compares calendar dates in UTC so that legs recorded with
// different zone offsets still match when they share an instant's day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
