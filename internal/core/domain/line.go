package domain

import "github.com/shopspring/decimal"

// JournalLine represents one leg of a journal entry, affecting one account.
// Exactly one of Debit/Credit is non-zero. Lines are owned exclusively by
// their entry and never shared.
type JournalLine struct {
	LineID       string          `json:"lineID"`  // Primary Key (UUID)
	EntryID      string          `json:"entryID"` // FK -> JournalEntry.entryID
	AccountID    string          `json:"accountID"`
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Description  string          `json:"description"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"` // Defaults to 1 for local currency

	// Optional subledger reference for drill-down, e.g. "employee"/emp-42.
	SubledgerType string `json:"subledgerType,omitempty"`
	SubledgerID   string `json:"subledgerID,omitempty"`

	AuditFields
}

// IsDebit reports whether the line is a debit leg.
func (l *JournalLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// Amount returns the non-zero side of the line.
func (l *JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}
