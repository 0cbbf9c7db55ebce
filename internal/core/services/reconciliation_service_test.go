package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/himanshudhami/InvoiceX-sub016/internal/apperrors"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockIntercompanyRepository
	service  portssvc.ReconciliationSvcFacade
	fixedNow time.Time
	txnDate  time.Time
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockIntercompanyRepository)
	suite.fixedNow = time.Date(2024, time.September, 2, 8, 0, 0, 0, time.UTC)
	suite.txnDate = time.Date(2024, time.August, 28, 0, 0, 0, 0, time.UTC)
	suite.service = services.NewReconciliationService(
		suite.mockRepo,
		services.WithReconClock(func() time.Time { return suite.fixedNow }),
	)
}

func (suite *ReconciliationServiceTestSuite) leg(txnID, companyID, counterpartyID, docNumber string, amount decimal.Decimal) domain.IntercompanyTransaction {
	return domain.IntercompanyTransaction{
		TxnID:                 txnID,
		CompanyID:             companyID,
		CounterpartyCompanyID: counterpartyID,
		TxnDate:               suite.txnDate,
		TxnType:               domain.IntercompanyInvoice,
		SourceDocNumber:       docNumber,
		Amount:                amount,
		CurrencyCode:          "INR",
	}
}

// --- AutoReconcile ---

func (suite *ReconciliationServiceTestSuite) TestAutoReconcile_MatchesSwappedPair() {
	ctx := context.Background()
	amount := decimal.NewFromInt(1000)
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-1", amount)
	b := suite.leg("txn-b", "company-b", "company-a", "DOC-1", amount)

	suite.mockRepo.On("FindUnreconciled", ctx, "").Return([]domain.IntercompanyTransaction{a, b}, nil).Once()
	// Unlinked legs get linked while being marked
	suite.mockRepo.On("MarkReconciled", ctx, "txn-a", mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == "txn-b"
	}), "auto-reconcile", suite.fixedNow).Return(nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-b", mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == "txn-a"
	}), "auto-reconcile", suite.fixedNow).Return(nil).Once()

	count, err := suite.service.AutoReconcile(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestAutoReconcile_AmountMismatchNotMatched() {
	ctx := context.Background()
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-1", decimal.NewFromInt(1000))
	b := suite.leg("txn-b", "company-b", "company-a", "DOC-1", decimal.NewFromInt(900))

	suite.mockRepo.On("FindUnreconciled", ctx, "").Return([]domain.IntercompanyTransaction{a, b}, nil).Once()

	count, err := suite.service.AutoReconcile(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(0, count)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkReconciled", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestAutoReconcile_DifferentDayNotMatched() {
	ctx := context.Background()
	amount := decimal.NewFromInt(500)
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-2", amount)
	b := suite.leg("txn-b", "company-b", "company-a", "DOC-2", amount)
	b.TxnDate = suite.txnDate.AddDate(0, 0, 1)

	suite.mockRepo.On("FindUnreconciled", ctx, "").Return([]domain.IntercompanyTransaction{a, b}, nil).Once()

	count, err := suite.service.AutoReconcile(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(0, count)
}

func (suite *ReconciliationServiceTestSuite) TestAutoReconcile_MatchesAcrossTimeZones() {
	ctx := context.Background()
	amount := decimal.NewFromInt(2500)
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-TZ", amount)
	b := suite.leg("txn-b", "company-b", "company-a", "DOC-TZ", amount)
	// Same instant, one leg recorded with an IST offset. Wall-clock dates
	// differ (Aug 28 22:00 UTC is Aug 29 03:30 IST) but the UTC day matches.
	ist := time.FixedZone("IST", 5*3600+1800)
	a.TxnDate = time.Date(2024, time.August, 28, 22, 0, 0, 0, time.UTC)
	b.TxnDate = time.Date(2024, time.August, 29, 3, 30, 0, 0, ist)

	suite.mockRepo.On("FindUnreconciled", ctx, "").Return([]domain.IntercompanyTransaction{a, b}, nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-a", mock.Anything, "auto-reconcile", suite.fixedNow).Return(nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-b", mock.Anything, "auto-reconcile", suite.fixedNow).Return(nil).Once()

	count, err := suite.service.AutoReconcile(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestAutoReconcile_AmbiguousPicksFirstInCreationOrder() {
	ctx := context.Background()
	amount := decimal.NewFromInt(300)
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-3", amount)
	b1 := suite.leg("txn-b1", "company-b", "company-a", "DOC-3", amount)
	b2 := suite.leg("txn-b2", "company-b", "company-a", "DOC-3", amount)

	suite.mockRepo.On("FindUnreconciled", ctx, "").Return([]domain.IntercompanyTransaction{a, b1, b2}, nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-a", mock.Anything, "auto-reconcile", suite.fixedNow).Return(nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-b1", mock.Anything, "auto-reconcile", suite.fixedNow).Return(nil).Once()

	count, err := suite.service.AutoReconcile(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(2, count)
	// txn-b2 stays unreconciled
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkReconciled", ctx, "txn-b2", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestAutoReconcile_CompanyFilterScansFullSet() {
	ctx := context.Background()
	amount := decimal.NewFromInt(800)
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-4", amount)
	b := suite.leg("txn-b", "company-b", "company-a", "DOC-4", amount)
	foreign := suite.leg("txn-c", "company-c", "company-d", "DOC-5", amount)

	// The filter narrows which legs may initiate a match, but the candidate
	// pool is always loaded across companies.
	suite.mockRepo.On("FindUnreconciled", ctx, "").Return([]domain.IntercompanyTransaction{foreign, a, b}, nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-a", mock.Anything, "auto-reconcile", suite.fixedNow).Return(nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-b", mock.Anything, "auto-reconcile", suite.fixedNow).Return(nil).Once()

	count, err := suite.service.AutoReconcile(ctx, "company-a")

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkReconciled", ctx, "txn-c", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestAutoReconcile_AlreadyLinkedPairNotRelinked() {
	ctx := context.Background()
	amount := decimal.NewFromInt(450)
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-6", amount)
	b := suite.leg("txn-b", "company-b", "company-a", "DOC-6", amount)
	bID := "txn-b"
	aID := "txn-a"
	a.CounterpartTxnID = &bID
	b.CounterpartTxnID = &aID

	suite.mockRepo.On("FindUnreconciled", ctx, "").Return([]domain.IntercompanyTransaction{a, b}, nil).Once()
	// Both already linked, so only the flag flips
	suite.mockRepo.On("MarkReconciled", ctx, "txn-a", (*string)(nil), "auto-reconcile", suite.fixedNow).Return(nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-b", (*string)(nil), "auto-reconcile", suite.fixedNow).Return(nil).Once()

	count, err := suite.service.AutoReconcile(ctx, "")

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ManualReconcile ---

func (suite *ReconciliationServiceTestSuite) TestManualReconcile_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(1200)
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-7", amount)
	b := suite.leg("txn-b", "company-b", "company-a", "DOC-7-ALT", amount)

	suite.mockRepo.On("FindTransactionByID", ctx, "txn-a").Return(&a, nil).Once()
	suite.mockRepo.On("FindTransactionByID", ctx, "txn-b").Return(&b, nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-a", mock.Anything, "user-1", suite.fixedNow).Return(nil).Once()
	suite.mockRepo.On("MarkReconciled", ctx, "txn-b", mock.Anything, "user-1", suite.fixedNow).Return(nil).Once()

	err := suite.service.ManualReconcile(ctx, "txn-a", "txn-b", "user-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestManualReconcile_SelfRejected() {
	ctx := context.Background()

	err := suite.service.ManualReconcile(ctx, "txn-a", "txn-a", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestManualReconcile_AmountMismatchRejected() {
	ctx := context.Background()
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-8", decimal.NewFromInt(100))
	b := suite.leg("txn-b", "company-b", "company-a", "DOC-8", decimal.NewFromInt(150))

	suite.mockRepo.On("FindTransactionByID", ctx, "txn-a").Return(&a, nil).Once()
	suite.mockRepo.On("FindTransactionByID", ctx, "txn-b").Return(&b, nil).Once()

	err := suite.service.ManualReconcile(ctx, "txn-a", "txn-b", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReconcileAmountMismatch)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkReconciled", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestManualReconcile_AlreadyReconciledRejected() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)
	a := suite.leg("txn-a", "company-a", "company-b", "DOC-9", amount)
	b := suite.leg("txn-b", "company-b", "company-a", "DOC-9", amount)
	b.Reconciled = true

	suite.mockRepo.On("FindTransactionByID", ctx, "txn-a").Return(&a, nil).Once()
	suite.mockRepo.On("FindTransactionByID", ctx, "txn-b").Return(&b, nil).Once()

	err := suite.service.ManualReconcile(ctx, "txn-a", "txn-b", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyReconciled)
}

func (suite *ReconciliationServiceTestSuite) TestManualReconcile_TxnNotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindTransactionByID", ctx, "txn-a").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ManualReconcile(ctx, "txn-a", "txn-b", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
