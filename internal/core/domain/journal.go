package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// EntryType distinguishes manually keyed entries from auto-posted ones.
type EntryType string

const (
	EntryTypeManual EntryType = "MANUAL"
	EntryTypeAuto   EntryType = "AUTO"
)

// JournalEntry represents a single, balanced double-entry ledger posting.
// An entry is created atomically with its lines and is never mutated after
// posting except to attach a reversal link.
type JournalEntry struct {
	EntryID        string          `json:"entryID"`        // Primary Key (UUID)
	CompanyID      string          `json:"companyID"`      // Owning company
	JournalNumber  string          `json:"journalNumber"`  // Assigned on persist, e.g. JV/2024-25/42
	IdempotencyKey string          `json:"idempotencyKey"` // Derived from source type + source ID
	JournalDate    time.Time       `json:"journalDate"`    // Date the event occurred
	FinancialYear  string          `json:"financialYear"`  // "YYYY-YY", April start
	PeriodMonth    int             `json:"periodMonth"`    // 1..12, April = 1
	EntryType      EntryType       `json:"entryType"`
	SourceType     string          `json:"sourceType"`   // e.g. EXPENSE_REIMBURSEMENT
	SourceID       string          `json:"sourceID"`     // Identifier of the source business event
	SourceNumber   string          `json:"sourceNumber"` // Human-readable document number
	Description    string          `json:"description"`
	Narration      string          `json:"narration"` // Free-text audit trail
	Status         EntryStatus     `json:"status"`
	PostedAt       time.Time       `json:"postedAt"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`

	// Reversal linkage. OriginalEntryID is set on the reversing entry;
	// ReversingEntryID is set on the reversed original.
	OriginalEntryID  *string `json:"originalEntryID,omitempty"`
	ReversingEntryID *string `json:"reversingEntryID,omitempty"`

	Lines []JournalLine `json:"lines,omitempty"` // Often loaded separately
	AuditFields
}

// IsReversal reports whether this entry reverses another entry.
func (e *JournalEntry) IsReversal() bool {
	return e.OriginalEntryID != nil
}
