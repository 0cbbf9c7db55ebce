package services

import (
	"context"

	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
)

// PostingReaderSvc defines read operations over posted journal entries.
type PostingReaderSvc interface {
	// GetEntryByID retrieves an entry and its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// GetBySource retrieves every entry posted for a source business event.
	GetBySource(ctx context.Context, sourceType, sourceID string) ([]domain.JournalEntry, error)

	// HasPosting reports whether a source business event has been journalized.
	HasPosting(ctx context.Context, sourceType, sourceID string) (bool, error)

	// ListEntries retrieves a paginated list of a company's entries.
	ListEntries(ctx context.Context, companyID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// PostingWriterSvc defines the posting and reversal operations.
type PostingWriterSvc interface {
	// PostEvent builds, validates and persists a balanced journal entry for a
	// source event. Replays of an already-posted event return the existing
	// entry with no new financial impact.
	PostEvent(ctx context.Context, event domain.SourceEvent) (*domain.JournalEntry, error)

	// ReverseEntry creates a balanced reversal of a posted entry and marks the
	// original REVERSED.
	ReverseEntry(ctx context.Context, entryID string, reversedBy string, reason string) (*domain.JournalEntry, error)
}

// PostingSvcFacade combines posting read and write operations.
type PostingSvcFacade interface {
	PostingReaderSvc
	PostingWriterSvc
}

// ExpensePostingSvc journalizes approved expense reimbursements through the
// posting facade.
type ExpensePostingSvc interface {
	PostReimbursement(ctx context.Context, req dto.PostExpenseReimbursementRequest) (*domain.JournalEntry, error)
}
