package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/himanshudhami/InvoiceX-sub016/internal/apperrors"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	portsrepo "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/repositories"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntriesBySource(ctx context.Context, sourceType, sourceID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, sourceType, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) MarkEntryReversed(ctx context.Context, entryID string, reversingEntryID string, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, entryID, reversingEntryID, updatedByUserID, updatedAt)
	return args.Error(0)
}

// --- Mock ChartOfAccountLookup ---
type MockAccountLookup struct {
	mock.Mock
}

var _ portsrepo.ChartOfAccountLookup = (*MockAccountLookup)(nil)

func (m *MockAccountLookup) ResolveAccount(ctx context.Context, companyID, accountCode string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, companyID, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

// --- Test Suite Setup ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccounts    *MockAccountLookup
	service         portssvc.PostingSvcFacade
	companyID       string
	userID          string
	fixedNow        time.Time
	expenseAccount  domain.ChartOfAccount
	payableAccount  domain.ChartOfAccount
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccounts = new(MockAccountLookup)
	suite.fixedNow = time.Date(2024, time.July, 15, 10, 30, 0, 0, time.UTC)
	suite.service = services.NewPostingService(
		suite.mockJournalRepo,
		suite.mockAccounts,
		services.WithClock(func() time.Time { return suite.fixedNow }),
	)

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.expenseAccount = domain.ChartOfAccount{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		AccountCode: "5100",
		AccountName: "Travel Expenses",
		AccountType: domain.Expense,
		IsActive:    true,
	}
	suite.payableAccount = domain.ChartOfAccount{
		AccountID:   uuid.NewString(),
		CompanyID:   suite.companyID,
		AccountCode: "2200",
		AccountName: "Employee Reimbursements Payable",
		AccountType: domain.Liability,
		IsActive:    true,
	}
}

func (suite *PostingServiceTestSuite) newEvent(builder domain.LineBuilder) domain.SourceEvent {
	return domain.SourceEvent{
		SourceType:   "EXPENSE_REIMBURSEMENT",
		SourceID:     "exp-001",
		SourceNumber: "EXP/2024-25/00042",
		CompanyID:    suite.companyID,
		Date:         time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC),
		Description:  "Client visit travel claim",
		CreatedBy:    suite.userID,
		Lines:        builder,
	}
}

func (suite *PostingServiceTestSuite) balancedBuilder(amount decimal.Decimal) domain.LineBuilder {
	return func() []domain.LineSpec {
		return []domain.LineSpec{
			{AccountCode: suite.expenseAccount.AccountCode, Debit: amount},
			{AccountCode: suite.payableAccount.AccountCode, Credit: amount},
		}
	}
}

// --- Test Cases ---

func (suite *PostingServiceTestSuite) TestPostEvent_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(1180)
	event := suite.newEvent(suite.balancedBuilder(amount))

	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, "EXPENSE_REIMBURSEMENT-exp-001").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, "5100").Return(&suite.expenseAccount, nil).Once()
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, "2200").Return(&suite.payableAccount, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(domain.JournalEntry)
			lines := args.Get(2).([]domain.JournalLine)
			suite.Equal("2024-25", entry.FinancialYear)
			suite.Equal(4, entry.PeriodMonth) // July is month 4 of the April-start year
			suite.Equal(domain.Posted, entry.Status)
			suite.True(entry.TotalDebit.Equal(amount))
			suite.True(entry.TotalCredit.Equal(amount))
			suite.Len(lines, 2)
		}).
		Return(&domain.JournalEntry{EntryID: "saved", JournalNumber: "JV/2024-25/00001"}, nil).Once()

	entry, err := suite.service.PostEvent(ctx, event)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("JV/2024-25/00001", entry.JournalNumber)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccounts.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_ReplayReturnsExistingEntry() {
	ctx := context.Background()
	event := suite.newEvent(suite.balancedBuilder(decimal.NewFromInt(500)))
	existing := &domain.JournalEntry{EntryID: "existing-entry", IdempotencyKey: event.IdempotencyKey()}

	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, event.IdempotencyKey()).Return(existing, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, "existing-entry").Return([]domain.JournalLine{}, nil).Once()

	entry, err := suite.service.PostEvent(ctx, event)

	suite.Require().NoError(err)
	suite.Equal("existing-entry", entry.EntryID)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccounts.AssertNotCalled(suite.T(), "ResolveAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_DuplicateRaceReturnsWinner() {
	ctx := context.Background()
	event := suite.newEvent(suite.balancedBuilder(decimal.NewFromInt(500)))
	winner := &domain.JournalEntry{EntryID: "winner-entry"}

	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, event.IdempotencyKey()).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, mock.Anything).Return(&suite.expenseAccount, nil).Twice()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, event.IdempotencyKey()).Return(winner, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, "winner-entry").Return([]domain.JournalLine{}, nil).Once()

	entry, err := suite.service.PostEvent(ctx, event)

	suite.Require().NoError(err)
	suite.Equal("winner-entry", entry.EntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_AllLinesSkipped() {
	ctx := context.Background()
	event := suite.newEvent(suite.balancedBuilder(decimal.NewFromInt(100)))

	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, event.IdempotencyKey()).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Twice()

	_, err := suite.service.PostEvent(ctx, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoLinesGenerated)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_SkippedLegLeavesEntryUnbalanced() {
	ctx := context.Background()
	event := suite.newEvent(suite.balancedBuilder(decimal.NewFromInt(100)))

	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, event.IdempotencyKey()).
		Return(nil, apperrors.ErrNotFound).Once()
	// The debit leg resolves, the credit leg does not; the survivor alone
	// cannot balance.
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, "5100").Return(&suite.expenseAccount, nil).Once()
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, "2200").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostEvent(ctx, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_UnbalancedBuilderRejected() {
	ctx := context.Background()
	event := suite.newEvent(func() []domain.LineSpec {
		return []domain.LineSpec{
			{AccountCode: "5100", Debit: decimal.NewFromInt(100)},
			{AccountCode: "2200", Credit: decimal.NewFromInt(90)},
		}
	})

	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, event.IdempotencyKey()).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, "5100").Return(&suite.expenseAccount, nil).Once()
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, "2200").Return(&suite.payableAccount, nil).Once()

	_, err := suite.service.PostEvent(ctx, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
}

func (suite *PostingServiceTestSuite) TestPostEvent_WithinToleranceBalances() {
	ctx := context.Background()
	event := suite.newEvent(func() []domain.LineSpec {
		return []domain.LineSpec{
			{AccountCode: "5100", Debit: decimal.NewFromFloat(100.00)},
			{AccountCode: "2200", Credit: decimal.NewFromFloat(99.99)},
		}
	})

	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, event.IdempotencyKey()).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, "5100").Return(&suite.expenseAccount, nil).Once()
	suite.mockAccounts.On("ResolveAccount", ctx, suite.companyID, "2200").Return(&suite.payableAccount, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).
		Return(&domain.JournalEntry{EntryID: "saved"}, nil).Once()

	_, err := suite.service.PostEvent(ctx, event)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_InvalidLineSpecHardFails() {
	ctx := context.Background()
	event := suite.newEvent(func() []domain.LineSpec {
		return []domain.LineSpec{
			{AccountCode: "5100", Debit: decimal.NewFromInt(50), Credit: decimal.NewFromInt(50)},
			{AccountCode: "2200", Credit: decimal.NewFromInt(50)},
		}
	})

	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, event.IdempotencyKey()).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostEvent(ctx, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_MissingFieldsRejected() {
	ctx := context.Background()
	event := suite.newEvent(suite.balancedBuilder(decimal.NewFromInt(10)))
	event.SourceID = ""

	_, err := suite.service.PostEvent(ctx, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindEntryByIdempotencyKey", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestReverseEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	original := &domain.JournalEntry{
		EntryID:       entryID,
		CompanyID:     suite.companyID,
		JournalNumber: "JV/2024-25/00007",
		Status:        domain.Posted,
		TotalDebit:    decimal.NewFromInt(300),
		TotalCredit:   decimal.NewFromInt(300),
	}
	originalLines := []domain.JournalLine{
		{LineID: "l1", EntryID: entryID, AccountID: suite.expenseAccount.AccountID, Debit: decimal.NewFromInt(300), CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1)},
		{LineID: "l2", EntryID: entryID, AccountID: suite.payableAccount.AccountID, Credit: decimal.NewFromInt(300), CurrencyCode: "INR", ExchangeRate: decimal.NewFromInt(1)},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(originalLines, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			reversal := args.Get(1).(domain.JournalEntry)
			lines := args.Get(2).([]domain.JournalLine)
			suite.Equal(services.ReversalSourceType, reversal.SourceType)
			suite.Equal(fmt.Sprintf("REVERSAL-%s", entryID), reversal.IdempotencyKey)
			suite.Require().NotNil(reversal.OriginalEntryID)
			suite.Equal(entryID, *reversal.OriginalEntryID)
			suite.Equal(suite.fixedNow, reversal.JournalDate)
			suite.Require().Len(lines, 2)
			// Debits and credits swap sides
			suite.True(lines[0].Credit.Equal(decimal.NewFromInt(300)))
			suite.True(lines[0].Debit.IsZero())
			suite.True(lines[1].Debit.Equal(decimal.NewFromInt(300)))
		}).
		Return(&domain.JournalEntry{EntryID: "reversal-entry"}, nil).Once()
	suite.mockJournalRepo.On("MarkEntryReversed", ctx, entryID, "reversal-entry", suite.userID, suite.fixedNow).Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, entryID, suite.userID, "posted against wrong cost centre")

	suite.Require().NoError(err)
	suite.Equal("reversal-entry", reversal.EntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestReverseEntry_RetryAfterMarkFailureHealsOriginal() {
	ctx := context.Background()
	entryID := uuid.NewString()
	original := &domain.JournalEntry{
		EntryID:       entryID,
		CompanyID:     suite.companyID,
		JournalNumber: "JV/2024-25/00011",
		Status:        domain.Posted,
		TotalDebit:    decimal.NewFromInt(100),
		TotalCredit:   decimal.NewFromInt(100),
	}
	originalLines := []domain.JournalLine{
		{LineID: "l1", EntryID: entryID, AccountID: suite.expenseAccount.AccountID, Debit: decimal.NewFromInt(100)},
		{LineID: "l2", EntryID: entryID, AccountID: suite.payableAccount.AccountID, Credit: decimal.NewFromInt(100)},
	}
	existingReversal := &domain.JournalEntry{EntryID: "reversal-entry"}

	// Both attempts see the original still POSTED.
	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(original, nil).Twice()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(originalLines, nil).Twice()

	// Attempt 1: reversal persists but the status flip dies.
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).
		Return(existingReversal, nil).Once()
	suite.mockJournalRepo.On("MarkEntryReversed", ctx, entryID, "reversal-entry", suite.userID, suite.fixedNow).
		Return(assert.AnError).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, suite.userID, "wrong cost centre")
	suite.Require().Error(err)

	// Attempt 2: the insert collides on the deterministic key; the retry
	// must recover the existing reversal and re-run the status flip.
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, fmt.Sprintf("REVERSAL-%s", entryID)).
		Return(existingReversal, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, "reversal-entry").Return([]domain.JournalLine{}, nil).Once()
	suite.mockJournalRepo.On("MarkEntryReversed", ctx, entryID, "reversal-entry", suite.userID, suite.fixedNow).
		Return(nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, entryID, suite.userID, "wrong cost centre")

	suite.Require().NoError(err)
	suite.Equal("reversal-entry", reversal.EntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestReverseEntry_ReplayToleratesAlreadyMarkedOriginal() {
	ctx := context.Background()
	entryID := uuid.NewString()
	original := &domain.JournalEntry{
		EntryID: entryID,
		Status:  domain.Posted,
	}
	existingReversal := &domain.JournalEntry{EntryID: "reversal-entry"}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return([]domain.JournalLine{}, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockJournalRepo.On("FindEntryByIdempotencyKey", ctx, fmt.Sprintf("REVERSAL-%s", entryID)).
		Return(existingReversal, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, "reversal-entry").Return([]domain.JournalLine{}, nil).Once()
	// A concurrent retry flipped the status first; the conflict is benign.
	suite.mockJournalRepo.On("MarkEntryReversed", ctx, entryID, "reversal-entry", suite.userID, suite.fixedNow).
		Return(apperrors.ErrConflict).Once()

	reversal, err := suite.service.ReverseEntry(ctx, entryID, suite.userID, "wrong cost centre")

	suite.Require().NoError(err)
	suite.Equal("reversal-entry", reversal.EntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestReverseEntry_AlreadyReversedRejected() {
	ctx := context.Background()
	entryID := uuid.NewString()
	original := &domain.JournalEntry{EntryID: entryID, Status: domain.Reversed}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(original, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, suite.userID, "dup")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestReverseEntry_ReversalOfReversalRejected() {
	ctx := context.Background()
	entryID := uuid.NewString()
	sourceID := uuid.NewString()
	original := &domain.JournalEntry{
		EntryID:         entryID,
		Status:          domain.Posted,
		OriginalEntryID: &sourceID,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(original, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, suite.userID, "undo the undo")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PostingServiceTestSuite) TestReverseEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, suite.userID, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PostingServiceTestSuite) TestHasPosting() {
	ctx := context.Background()

	suite.mockJournalRepo.On("FindEntriesBySource", ctx, "EXPENSE_REIMBURSEMENT", "exp-1").
		Return([]domain.JournalEntry{{EntryID: "e1"}}, nil).Once()
	suite.mockJournalRepo.On("FindEntriesBySource", ctx, "EXPENSE_REIMBURSEMENT", "exp-2").
		Return([]domain.JournalEntry{}, nil).Once()

	posted, err := suite.service.HasPosting(ctx, "EXPENSE_REIMBURSEMENT", "exp-1")
	suite.Require().NoError(err)
	suite.True(posted)

	posted, err = suite.service.HasPosting(ctx, "EXPENSE_REIMBURSEMENT", "exp-2")
	suite.Require().NoError(err)
	suite.False(posted)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
