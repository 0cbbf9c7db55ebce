package services

import (
	"context"
	"errors"
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
	"github.com/himanshudhami/InvoiceX-sub016/internal/utils/accounting"
	"github.com/himanshudhami/InvoiceX-sub016/internal/utils/fiscal"
)

// DefaultCurrencyCode is the local currency for entries whose lines do not
// carry an explicit currency.
const DefaultCurrencyCode = "INR"

// ReversalSourceType tags journal entries created by ReverseEntry.
const ReversalSourceType = "REVERSAL"

// postingService builds, validates and persists balanced journal entries
// from source business events. It owns idempotency and reversal.
type postingService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accounts    portsrepo.ChartOfAccountLookup
	now         func() time.Time
	newID       func() string
}

// PostingOption overrides clock or ID generation, mainly for tests.
type PostingOption func(*postingService)

// WithClock substitutes the wall clock.
func WithClock(now func() time.Time) PostingOption {
	return func(s *postingService) { s.now = now }
}

// WithIDSource substitutes the unique ID generator.
func WithIDSource(newID func() string) PostingOption {
	return func(s *postingService) { s.newID = newID }
}

// NewPostingService creates a new LedgerPostingService.
func NewPostingService(journalRepo portsrepo.JournalRepositoryFacade, accounts portsrepo.ChartOfAccountLookup, opts ...PostingOption) portssvc.PostingSvcFacade {
	s := &postingService{
		journalRepo: journalRepo,
		accounts:    accounts,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure postingService implements the portssvc.PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// PostEvent turns a source business event into a persisted, balanced journal
// entry. Replays of the same (sourceType, sourceID) return the original entry
// unchanged, so concurrent or retried postings never double-post.
//
// Lines whose account code cannot be resolved are skipped with a warning and
// posting continues; the balance check runs over the surviving lines only, so
// a skipped one-sided leg surfaces as ErrUnbalanced rather than being plugged.
func (s *postingService) PostEvent(ctx context.Context, event domain.SourceEvent) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateSourceEvent(event); err != nil {
		return nil, err
	}

	key := event.IdempotencyKey()
	existing, err := s.findByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Info("Source event already posted, returning existing entry",
			slog.String("idempotency_key", key),
			slog.String("entry_id", existing.EntryID))
		return existing, nil
	}

	period := fiscal.ResolvePeriod(event.Date)
	now := s.now()
	entryID := s.newID()

	specs := event.Lines()
	lines := make([]domain.JournalLine, 0, len(specs))
	for _, spec := range specs {
		if err := accounting.ValidateLineSpec(spec); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}

		account, err := s.accounts.ResolveAccount(ctx, event.CompanyID, spec.AccountCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Soft-fail: a missing GL account must not block the source
				// flow; an unposted line is reconcilable later.
				logger.Warn("Skipping journal line, account code not resolved",
					slog.String("company_id", event.CompanyID),
					slog.String("account_code", spec.AccountCode),
					slog.String("source_type", event.SourceType),
					slog.String("source_id", event.SourceID))
				continue
			}
			logger.Error("Failed to resolve account for journal line", slog.String("account_code", spec.AccountCode), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to resolve account %s: %w", spec.AccountCode, err)
		}

		lines = append(lines, domain.JournalLine{
			LineID:        s.newID(),
			EntryID:       entryID,
			AccountID:     account.AccountID,
			Debit:         spec.Debit,
			Credit:        spec.Credit,
			Description:   spec.Description,
			CurrencyCode:  DefaultCurrencyCode,
			ExchangeRate:  decimal.NewFromInt(1),
			SubledgerType: spec.SubledgerType,
			SubledgerID:   spec.SubledgerID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     event.CreatedBy,
				LastUpdatedAt: now,
				LastUpdatedBy: event.CreatedBy,
			},
		})
	}

	if len(lines) == 0 {
		logger.Warn("No postable lines for source event",
			slog.String("source_type", event.SourceType),
			slog.String("source_id", event.SourceID),
			slog.Int("specs", len(specs)))
		return nil, apperrors.ErrNoLinesGenerated
	}

	totalDebit, totalCredit := accounting.SumLines(lines)
	if !accounting.IsBalanced(totalDebit, totalCredit) {
		// A calculation bug in the line builder, never silently corrected.
		logger.Error("Journal entry does not balance",
			slog.String("source_type", event.SourceType),
			slog.String("source_id", event.SourceID),
			slog.String("total_debit", totalDebit.String()),
			slog.String("total_credit", totalCredit.String()))
		return nil, fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrUnbalanced, totalDebit, totalCredit)
	}

	entry := domain.JournalEntry{
		EntryID:        entryID,
		CompanyID:      event.CompanyID,
		IdempotencyKey: key,
		JournalDate:    event.Date,
		FinancialYear:  period.FinancialYear,
		PeriodMonth:    period.PeriodMonth,
		EntryType:      domain.EntryTypeAuto,
		SourceType:     event.SourceType,
		SourceID:       event.SourceID,
		SourceNumber:   event.SourceNumber,
		Description:    event.Description,
		Narration:      event.Narration,
		Status:         domain.Posted,
		PostedAt:       now,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     event.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: event.CreatedBy,
		},
	}

	saved, err := s.journalRepo.SaveEntry(ctx, entry, lines)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent posting won the race; its entry is the posting of
			// record and we treat it as our success.
			winner, findErr := s.findByKey(ctx, key)
			if findErr != nil {
				return nil, findErr
			}
			if winner != nil {
				logger.Info("Concurrent posting won idempotency race", slog.String("idempotency_key", key), slog.String("entry_id", winner.EntryID))
				return winner, nil
			}
			return nil, err
		}
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("source_id", event.SourceID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry posted",
		slog.String("entry_id", saved.EntryID),
		slog.String("journal_number", saved.JournalNumber),
		slog.String("company_id", saved.CompanyID),
		slog.Int("lines", len(lines)))
	return saved, nil
}

// ReverseEntry creates a new balanced entry with every line's debit and
// credit swapped, dated at reversal time, and marks the original REVERSED.
// Reversals of reversals are rejected.
func (s *postingService) ReverseEntry(ctx context.Context, entryID string, reversedBy string, reason string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch entry for reversal", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: entry status is %s, expected POSTED", apperrors.ErrConflict, original.Status)
	}
	if original.IsReversal() {
		return nil, fmt.Errorf("%w: cannot reverse an entry that is already a reversal", apperrors.ErrConflict)
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for reversal", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}

	now := s.now()
	period := fiscal.ResolvePeriod(now)
	reversalID := s.newID()

	reversalLines := make([]domain.JournalLine, len(originalLines))
	for i, line := range originalLines {
		reversalLines[i] = domain.JournalLine{
			LineID:        s.newID(),
			EntryID:       reversalID,
			AccountID:     line.AccountID,
			Debit:         line.Credit,
			Credit:        line.Debit,
			Description:   line.Description,
			CurrencyCode:  line.CurrencyCode,
			ExchangeRate:  line.ExchangeRate,
			SubledgerType: line.SubledgerType,
			SubledgerID:   line.SubledgerID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     reversedBy,
				LastUpdatedAt: now,
				LastUpdatedBy: reversedBy,
			},
		}
	}

	reversal := domain.JournalEntry{
		EntryID:         reversalID,
		CompanyID:       original.CompanyID,
		IdempotencyKey:  fmt.Sprintf("%s-%s", ReversalSourceType, original.EntryID),
		JournalDate:     now,
		FinancialYear:   period.FinancialYear,
		PeriodMonth:     period.PeriodMonth,
		EntryType:       domain.EntryTypeAuto,
		SourceType:      ReversalSourceType,
		SourceID:        original.EntryID,
		SourceNumber:    original.JournalNumber,
		Description:     fmt.Sprintf("Reversal of %s", original.JournalNumber),
		Narration:       reason,
		Status:          domain.Posted,
		PostedAt:        now,
		TotalDebit:      original.TotalCredit,
		TotalCredit:     original.TotalDebit,
		OriginalEntryID: &original.EntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     reversedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: reversedBy,
		},
	}

	saved, err := s.journalRepo.SaveEntry(ctx, reversal, reversalLines)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// The reversal key is deterministic, so a replayed reversal
			// resolves to the entry created first. Reaching this branch
			// means the original is still POSTED: a prior attempt persisted
			// the reversal but died before the status flip, so the flip is
			// re-run here to heal the pair.
			existing, findErr := s.findByKey(ctx, reversal.IdempotencyKey)
			if findErr != nil {
				return nil, findErr
			}
			if existing == nil {
				return nil, err
			}
			if markErr := s.journalRepo.MarkEntryReversed(ctx, original.EntryID, existing.EntryID, reversedBy, now); markErr != nil && !errors.Is(markErr, apperrors.ErrConflict) {
				return nil, fmt.Errorf("failed to update original entry status: %w", markErr)
			}
			logger.Info("Replayed reversal healed original entry status",
				slog.String("entry_id", original.EntryID),
				slog.String("reversing_entry_id", existing.EntryID))
			return existing, nil
		}
		logger.Error("Failed to save reversal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save reversal entry: %w", err)
	}

	if err := s.journalRepo.MarkEntryReversed(ctx, original.EntryID, saved.EntryID, reversedBy, now); err != nil {
		logger.Error("Failed to mark original entry reversed",
			slog.String("entry_id", original.EntryID),
			slog.String("reversing_entry_id", saved.EntryID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update original entry status: %w", err)
	}

	logger.Info("Journal entry reversed",
		slog.String("entry_id", original.EntryID),
		slog.String("reversing_entry_id", saved.EntryID),
		slog.String("reversed_by", reversedBy))
	return saved, nil
}

// GetEntryByID retrieves an entry and its lines.
func (s *postingService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// GetBySource retrieves every entry posted for a source business event.
func (s *postingService) GetBySource(ctx context.Context, sourceType, sourceID string) ([]domain.JournalEntry, error) {
	return s.journalRepo.FindEntriesBySource(ctx, sourceType, sourceID)
}

// HasPosting reports whether a source business event has been journalized.
func (s *postingService) HasPosting(ctx context.Context, sourceType, sourceID string) (bool, error) {
	entries, err := s.journalRepo.FindEntriesBySource(ctx, sourceType, sourceID)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

// ListEntries retrieves a paginated list of a company's entries.
func (s *postingService) ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByCompany(ctx, companyID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	return &dto.ListEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// findByKey looks up the entry for an idempotency key, loading its lines.
// Returns (nil, nil) when no entry exists.
func (s *postingService) findByKey(ctx context.Context, key string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByIdempotencyKey(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up idempotency key %s: %w", key, err)
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entry.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entry.EntryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

func validateSourceEvent(event domain.SourceEvent) error {
	if event.SourceType == "" || event.SourceID == "" {
		return fmt.Errorf("%w: source type and source ID are required", apperrors.ErrValidation)
	}
	if event.CompanyID == "" {
		return fmt.Errorf("%w: company ID is required", apperrors.ErrValidation)
	}
	if event.Date.IsZero() {
		return fmt.Errorf("%w: event date is required", apperrors.ErrValidation)
	}
	if event.Lines == nil {
		return fmt.Errorf("%w: line builder is required", apperrors.ErrValidation)
	}
	return nil
}
