package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry row.
type EntryStatus string

const (
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// JournalEntry is the storage model for journal_entries.
type JournalEntry struct {
	EntryID          string          `json:"entryID"`
	CompanyID        string          `json:"companyID"`
	JournalNumber    string          `json:"journalNumber"`
	IdempotencyKey   string          `json:"idempotencyKey"`
	JournalDate      time.Time       `json:"journalDate"`
	FinancialYear    string          `json:"financialYear"`
	PeriodMonth      int             `json:"periodMonth"`
	EntryType        string          `json:"entryType"`
	SourceType       string          `json:"sourceType"`
	SourceID         string          `json:"sourceID"`
	SourceNumber     string          `json:"sourceNumber"`
	Description      string          `json:"description"`
	Narration        string          `json:"narration"`
	Status           EntryStatus     `json:"status"`
	PostedAt         time.Time       `json:"postedAt"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	OriginalEntryID  *string         `json:"originalEntryID"`
	ReversingEntryID *string         `json:"reversingEntryID"`
	AuditFields
}

// JournalLine is the storage model for journal_lines.
type JournalLine struct {
	LineID        string          `json:"lineID"`
	EntryID       string          `json:"entryID"`
	AccountID     string          `json:"accountID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description"`
	CurrencyCode  string          `json:"currencyCode"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	SubledgerType string          `json:"subledgerType"`
	SubledgerID   string          `json:"subledgerID"`
	AuditFields
}
