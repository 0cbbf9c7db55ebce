package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LineSpec is one (account code, debit xor credit) tuple emitted by a line
// builder. Account codes are resolved against the chart of accounts at
// posting time.
type LineSpec struct {
	AccountCode   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	Description   string
	SubledgerType string
	SubledgerID   string
}

// LineBuilder emits the line specs for a source event. Builders must be pure:
// all data they need has to be pre-fetched by the caller, no I/O inside.
type LineBuilder func() []LineSpec

// SourceEvent describes one business event to be turned into a journal entry.
// It is a closed tagged descriptor rather than a service subtype, which keeps
// the posting service free of domain knowledge; the domain-specific logic
// (expense categorization, GST lines, payable lines) lives in the builder.
type SourceEvent struct {
	SourceType   string // e.g. EXPENSE_REIMBURSEMENT, IC_INVOICE
	SourceID     string
	SourceNumber string
	CompanyID    string
	Date         time.Time
	Description  string
	Narration    string
	CreatedBy    string
	Lines        LineBuilder
}

// IdempotencyKey derives the deterministic key that guards this event
// against double posting.
func (e SourceEvent) IdempotencyKey() string {
	return fmt.Sprintf("%s-%s", e.SourceType, e.SourceID)
}
