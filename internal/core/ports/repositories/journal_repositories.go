package repositories

import (
	"context"
	"time"

	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entry data
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntryByIdempotencyKey retrieves the entry posted under the given key, if any.
	// Returns apperrors.ErrNotFound when no entry exists for the key.
	FindEntryByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.JournalEntry, error)

	// FindEntriesBySource retrieves all entries (originals and reversals) posted
	// for a source business event.
	FindEntriesBySource(ctx context.Context, sourceType, sourceID string) ([]domain.JournalEntry, error)

	// ListEntriesByCompany retrieves a paginated list of entries for a company
	// using token-based pagination.
	ListEntriesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entry data
type JournalEntryWriter interface {
	// SaveEntry persists an entry and its lines atomically, assigning the
	// journal number. Returns apperrors.ErrDuplicate when another entry already
	// holds the same idempotency key; that entry is then the posting of record.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) (*domain.JournalEntry, error)

	// MarkEntryReversed flips the original entry's status to REVERSED and links
	// it to the reversing entry.
	MarkEntryReversed(ctx context.Context, entryID string, reversingEntryID string, updatedByUserID string, updatedAt time.Time) error
}

// JournalLineReader defines read operations for journal line data
type JournalLineReader interface {
	// FindLinesByEntryID retrieves all lines belonging to a journal entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
	JournalLineReader
}
