package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntercompanyTransaction is the storage model for intercompany_transactions.
type IntercompanyTransaction struct {
	TxnID                 string           `json:"txnID"`
	CompanyID             string           `json:"companyID"`
	CounterpartyCompanyID string           `json:"counterpartyCompanyID"`
	TxnDate               time.Time        `json:"txnDate"`
	FinancialYear         string           `json:"financialYear"`
	TxnType               string           `json:"txnType"`
	Direction             string           `json:"direction"`
	SourceDocType         string           `json:"sourceDocType"`
	SourceDocID           string           `json:"sourceDocID"`
	SourceDocNumber       string           `json:"sourceDocNumber"`
	Amount                decimal.Decimal  `json:"amount"`
	CurrencyCode          string           `json:"currencyCode"`
	AmountINR             *decimal.Decimal `json:"amountINR"`
	CounterpartTxnID      *string          `json:"counterpartTxnID"`
	Reconciled            bool             `json:"reconciled"`
	ReconciledBy          string           `json:"reconciledBy"`
	ReconciledAt          *time.Time       `json:"reconciledAt"`
	AuditFields
}

// IntercompanyBalance is the storage model for intercompany_balances.
type IntercompanyBalance struct {
	FromCompanyID string          `json:"fromCompanyID"`
	ToCompanyID   string          `json:"toCompanyID"`
	Balance       decimal.Decimal `json:"balance"`
	LastTxnDate   time.Time       `json:"lastTxnDate"`
	TxnCount      int64           `json:"txnCount"`
}
