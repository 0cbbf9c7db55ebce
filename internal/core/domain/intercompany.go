package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntercompanyTxnType identifies the business event behind a leg.
type IntercompanyTxnType string

const (
	IntercompanyInvoice IntercompanyTxnType = "INVOICE"
	IntercompanyPayment IntercompanyTxnType = "PAYMENT"
)

// IntercompanyDirection is the position of a leg on its owner's books.
type IntercompanyDirection string

const (
	DirectionReceivable IntercompanyDirection = "RECEIVABLE"
	DirectionPayable    IntercompanyDirection = "PAYABLE"
)

// IntercompanyTransaction is one leg of a cross-company event. Legs are
// created in mirrored pairs and never deleted; after both legs of an event
// are recorded each holds the other's ID in CounterpartTxnID.
type IntercompanyTransaction struct {
	TxnID                 string                `json:"txnID"`     // Primary Key (UUID)
	CompanyID             string                `json:"companyID"` // Owning company's books
	CounterpartyCompanyID string                `json:"counterpartyCompanyID"`
	TxnDate               time.Time             `json:"txnDate"`
	FinancialYear         string                `json:"financialYear"`
	TxnType               IntercompanyTxnType   `json:"txnType"`
	Direction             IntercompanyDirection `json:"direction"`
	SourceDocType         string                `json:"sourceDocType"`
	SourceDocID           string                `json:"sourceDocID"`
	SourceDocNumber       string                `json:"sourceDocNumber"`
	Amount                decimal.Decimal       `json:"amount"`
	CurrencyCode          string                `json:"currencyCode"`
	AmountINR             *decimal.Decimal      `json:"amountINR,omitempty"` // Set only for INR-denominated legs

	// CounterpartTxnID links to the mirrored leg on the other company's books.
	// Nil until the second leg is persisted, or indefinitely for orphaned legs.
	CounterpartTxnID *string `json:"counterpartTxnID,omitempty"`

	Reconciled   bool       `json:"reconciled"`
	ReconciledBy string     `json:"reconciledBy,omitempty"`
	ReconciledAt *time.Time `json:"reconciledAt,omitempty"`

	AuditFields
}

// IsOrphaned reports whether the leg has no recorded counterpart.
func (t *IntercompanyTransaction) IsOrphaned() bool {
	return t.CounterpartTxnID == nil
}

// IntercompanyBalance is the materialized running net position from one
// company to another, updated incrementally on every posted leg rather
// than recomputed from scratch.
type IntercompanyBalance struct {
	FromCompanyID string          `json:"fromCompanyID"`
	ToCompanyID   string          `json:"toCompanyID"`
	Balance       decimal.Decimal `json:"balance"`
	LastTxnDate   time.Time       `json:"lastTxnDate"`
	TxnCount      int64           `json:"txnCount"`
}
