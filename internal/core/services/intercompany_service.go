package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/himanshudhami/InvoiceX-sub016/internal/apperrors"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	portsrepo "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/repositories"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
	"github.com/himanshudhami/InvoiceX-sub016/internal/middleware"
	"github.com/himanshudhami/InvoiceX-sub016/internal/utils/fiscal"
)

// intercompanyService records each cross-company event as a mirrored pair of
// transactions and keeps the per-pair running balances current.
//
// The two legs are written independently, not under one transaction spanning
// both companies' ledgers. A failed second leg leaves the first as an
// orphaned unreconciled transaction; the reconciliation matcher exists to
// detect and heal exactly that, so no distributed transaction is needed.
type intercompanyService struct {
	icRepo portsrepo.IntercompanyRepositoryFacade
	now    func() time.Time
	newID  func() string
}

// IntercompanyOption overrides clock or ID generation, mainly for tests.
type IntercompanyOption func(*intercompanyService)

// WithICClock substitutes the wall clock.
func WithICClock(now func() time.Time) IntercompanyOption {
	return func(s *intercompanyService) { s.now = now }
}

// WithICIDSource substitutes the unique ID generator.
func WithICIDSource(newID func() string) IntercompanyOption {
	return func(s *intercompanyService) { s.newID = newID }
}

// NewIntercompanyService creates a new IntercompanyMirrorService.
func NewIntercompanyService(icRepo portsrepo.IntercompanyRepositoryFacade, opts ...IntercompanyOption) portssvc.IntercompanySvcFacade {
	s := &intercompanyService{
		icRepo: icRepo,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.IntercompanySvcFacade = (*intercompanyService)(nil)

// RecordInvoice creates a receivable on the invoicing company's books and a
// payable on the customer company's books, links the pair, and moves both
// running balances (+amount on the receivable side, -amount on the payable
// side, so a matched pair nets to zero).
func (s *intercompanyService) RecordInvoice(ctx context.Context, req dto.RecordIntercompanyInvoiceRequest) (*domain.IntercompanyTransaction, *domain.IntercompanyTransaction, error) {
	if req.InvoicingCompany == req.CustomerCompany {
		return nil, nil, fmt.Errorf("%w: invoicing and customer company must differ", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	return s.recordPair(ctx, pairParams{
		docType:      "intercompany_invoice",
		docID:        req.InvoiceID,
		docNumber:    req.DocumentNumber,
		txnType:      domain.IntercompanyInvoice,
		date:         req.InvoiceDate,
		amount:       req.Amount,
		currency:     defaultCurrency(req.CurrencyCode),
		firstCompany: req.InvoicingCompany,
		firstDir:     domain.DirectionReceivable,
		// Invoice raises the receivable on the invoicing side.
		firstDelta:    req.Amount,
		secondCompany: req.CustomerCompany,
		secondDir:     domain.DirectionPayable,
		secondDelta:   req.Amount.Neg(),
		recordedBy:    req.RecordedBy,
	})
}

// RecordPayment mirrors the same pairing in the position-reducing direction:
// the payment shrinks the payer's payable and the receiver's receivable.
func (s *intercompanyService) RecordPayment(ctx context.Context, req dto.RecordIntercompanyPaymentRequest) (*domain.IntercompanyTransaction, *domain.IntercompanyTransaction, error) {
	if req.PayingCompany == req.ReceivingCompany {
		return nil, nil, fmt.Errorf("%w: paying and receiving company must differ", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	return s.recordPair(ctx, pairParams{
		docType:      "intercompany_payment",
		docID:        req.PaymentID,
		docNumber:    req.Reference,
		txnType:      domain.IntercompanyPayment,
		date:         req.PaymentDate,
		amount:       req.Amount,
		currency:     defaultCurrency(req.CurrencyCode),
		firstCompany: req.PayingCompany,
		firstDir:     domain.DirectionPayable,
		// Payment walks the payer's negative position back toward zero.
		firstDelta:    req.Amount,
		secondCompany: req.ReceivingCompany,
		secondDir:     domain.DirectionReceivable,
		secondDelta:   req.Amount.Neg(),
		recordedBy:    req.RecordedBy,
	})
}

// BalanceBetween returns the running position from one company to another.
func (s *intercompanyService) BalanceBetween(ctx context.Context, fromCompanyID, toCompanyID string) (*domain.IntercompanyBalance, error) {
	return s.icRepo.FindBalance(ctx, fromCompanyID, toCompanyID)
}

type pairParams struct {
	docType       string
	docID         string
	docNumber     string
	txnType       domain.IntercompanyTxnType
	date          time.Time
	amount        decimal.Decimal
	currency      string
	firstCompany  string
	firstDir      domain.IntercompanyDirection
	firstDelta    decimal.Decimal
	secondCompany string
	secondDir     domain.IntercompanyDirection
	secondDelta   decimal.Decimal
	recordedBy    string
}

// recordPair persists the two legs in sequence. The counterpart link is set
// after both inserts because the second insert needs the first's ID.
func (s *intercompanyService) recordPair(ctx context.Context, p pairParams) (*domain.IntercompanyTransaction, *domain.IntercompanyTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := s.now()
	fy := fiscal.YearLabel(p.date)

	first := s.buildLeg(p, p.firstCompany, p.secondCompany, p.firstDir, fy, now)
	if err := s.icRepo.SaveTransaction(ctx, first); err != nil {
		return nil, nil, fmt.Errorf("failed to save %s leg for %s: %w", p.firstDir, p.firstCompany, err)
	}
	if err := s.icRepo.UpsertBalance(ctx, p.firstCompany, p.secondCompany, p.firstDelta, p.date); err != nil {
		return nil, nil, fmt.Errorf("failed to update balance %s->%s: %w", p.firstCompany, p.secondCompany, err)
	}

	second := s.buildLeg(p, p.secondCompany, p.firstCompany, p.secondDir, fy, now)
	second.CounterpartTxnID = &first.TxnID
	if err := s.icRepo.SaveTransaction(ctx, second); err != nil {
		// The first leg stays behind as an orphan; the matcher or manual
		// reconciliation heals it once the other books recover.
		logger.Error("Second intercompany leg failed, first leg left unmirrored",
			slog.String("doc_type", p.docType),
			slog.String("doc_id", p.docID),
			slog.String("orphaned_txn_id", first.TxnID),
			slog.String("error", err.Error()))
		return &first, nil, fmt.Errorf("failed to save %s leg for %s: %w", p.secondDir, p.secondCompany, err)
	}
	if err := s.icRepo.UpsertBalance(ctx, p.secondCompany, p.firstCompany, p.secondDelta, p.date); err != nil {
		return &first, &second, fmt.Errorf("failed to update balance %s->%s: %w", p.secondCompany, p.firstCompany, err)
	}

	if err := s.icRepo.SetCounterpart(ctx, first.TxnID, second.TxnID, p.recordedBy, now); err != nil {
		return &first, &second, fmt.Errorf("failed to link counterpart transactions: %w", err)
	}
	first.CounterpartTxnID = &second.TxnID

	logger.Info("Intercompany pair recorded",
		slog.String("doc_type", p.docType),
		slog.String("doc_number", p.docNumber),
		slog.String("txn_id", first.TxnID),
		slog.String("counterpart_txn_id", second.TxnID),
		slog.String("amount", p.amount.String()))
	return &first, &second, nil
}

func (s *intercompanyService) buildLeg(p pairParams, companyID, counterpartyID string, dir domain.IntercompanyDirection, fy string, now time.Time) domain.IntercompanyTransaction {
	txn := domain.IntercompanyTransaction{
		TxnID:                 s.newID(),
		CompanyID:             companyID,
		CounterpartyCompanyID: counterpartyID,
		TxnDate:               p.date,
		FinancialYear:         fy,
		TxnType:               p.txnType,
		Direction:             dir,
		SourceDocType:         p.docType,
		SourceDocID:           p.docID,
		SourceDocNumber:       p.docNumber,
		Amount:                p.amount,
		CurrencyCode:          p.currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     p.recordedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: p.recordedBy,
		},
	}
	if p.currency == DefaultCurrencyCode {
		inr := p.amount
		txn.AmountINR = &inr
	}
	return txn
}

func defaultCurrency(code string) string {
	if code == "" {
		return DefaultCurrencyCode
	}
	return code
}
