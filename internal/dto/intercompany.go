package dto

import (
	"time"

	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordIntercompanyInvoiceRequest records an invoice raised by one group
// company on another.
type RecordIntercompanyInvoiceRequest struct {
	InvoiceID        string          `json:"invoiceID" binding:"required"`
	InvoicingCompany string          `json:"invoicingCompany" binding:"required"`
	CustomerCompany  string          `json:"customerCompany" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode     string          `json:"currencyCode"`
	InvoiceDate      time.Time       `json:"invoiceDate" binding:"required"`
	DocumentNumber   string          `json:"documentNumber" binding:"required"`
	RecordedBy       string          `json:"recordedBy"`
}

// RecordIntercompanyPaymentRequest records a payment made by one group
// company to another.
type RecordIntercompanyPaymentRequest struct {
	PaymentID        string          `json:"paymentID" binding:"required"`
	PayingCompany    string          `json:"payingCompany" binding:"required"`
	ReceivingCompany string          `json:"receivingCompany" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode     string          `json:"currencyCode"`
	PaymentDate      time.Time       `json:"paymentDate" binding:"required"`
	Reference        string          `json:"reference" binding:"required"`
	RecordedBy       string          `json:"recordedBy"`
}

// ManualReconcileRequest links two legs by hand.
type ManualReconcileRequest struct {
	TxnID            string `json:"txnID" binding:"required"`
	CounterpartTxnID string `json:"counterpartTxnID" binding:"required"`
	ReconciledBy     string `json:"reconciledBy" binding:"required"`
}

// IntercompanyTxnResponse is the wire form of one leg.
type IntercompanyTxnResponse struct {
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
	AmountINR             *decimal.Decimal `json:"amountINR,omitempty"`
	CounterpartTxnID      *string          `json:"counterpartTxnID,omitempty"`
	Reconciled            bool             `json:"reconciled"`
}

// MirrorPairResponse returns both legs of a recorded event.
type MirrorPairResponse struct {
	OwnLeg         IntercompanyTxnResponse `json:"ownLeg"`
	CounterpartLeg IntercompanyTxnResponse `json:"counterpartLeg"`
}

// BalanceResponse is the running position between two companies.
type BalanceResponse struct {
	FromCompanyID string          `json:"fromCompanyID"`
	ToCompanyID   string          `json:"toCompanyID"`
	Balance       decimal.Decimal `json:"balance"`
	LastTxnDate   time.Time       `json:"lastTxnDate"`
	TxnCount      int64           `json:"txnCount"`
}

// AutoReconcileResponse reports the matcher outcome.
type AutoReconcileResponse struct {
	Reconciled int `json:"reconciled"`
}

// ToIntercompanyTxnResponse converts a domain leg to its DTO.
func ToIntercompanyTxnResponse(txn *domain.IntercompanyTransaction) IntercompanyTxnResponse {
	return IntercompanyTxnResponse{
		TxnID:                 txn.TxnID,
		CompanyID:             txn.CompanyID,
		CounterpartyCompanyID: txn.CounterpartyCompanyID,
		TxnDate:               txn.TxnDate,
		FinancialYear:         txn.FinancialYear,
		TxnType:               string(txn.TxnType),
		Direction:             string(txn.Direction),
		SourceDocType:         txn.SourceDocType,
		SourceDocID:           txn.SourceDocID,
		SourceDocNumber:       txn.SourceDocNumber,
		Amount:                txn.Amount,
		CurrencyCode:          txn.CurrencyCode,
		AmountINR:             txn.AmountINR,
		CounterpartTxnID:      txn.CounterpartTxnID,
		Reconciled:            txn.Reconciled,
	}
}

// ToBalanceResponse converts a domain balance to its DTO.
func ToBalanceResponse(b *domain.IntercompanyBalance) BalanceResponse {
	return BalanceResponse{
		FromCompanyID: b.FromCompanyID,
		ToCompanyID:   b.ToCompanyID,
		Balance:       b.Balance,
		LastTxnDate:   b.LastTxnDate,
		TxnCount:      b.TxnCount,
	}
}
