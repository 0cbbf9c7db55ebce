package mapping

import (
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/himanshudhami/InvoiceX-sub016/internal/models"
)

// ToModelIntercompanyTxn converts a domain IntercompanyTransaction to its model
func ToModelIntercompanyTxn(d domain.IntercompanyTransaction) models.IntercompanyTransaction {
	return models.IntercompanyTransaction{
		TxnID:                 d.TxnID,
		CompanyID:             d.CompanyID,
		CounterpartyCompanyID: d.CounterpartyCompanyID,
		TxnDate:               d.TxnDate,
		FinancialYear:         d.FinancialYear,
		TxnType:               string(d.TxnType),
		Direction:             string(d.Direction),
		SourceDocType:         d.SourceDocType,
		SourceDocID:           d.SourceDocID,
		SourceDocNumber:       d.SourceDocNumber,
		Amount:                d.Amount,
		CurrencyCode:          d.CurrencyCode,
		AmountINR:             d.AmountINR,
		CounterpartTxnID:      d.CounterpartTxnID,
		Reconciled:            d.Reconciled,
		ReconciledBy:          d.ReconciledBy,
		ReconciledAt:          d.ReconciledAt,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIntercompanyTxn converts a model IntercompanyTransaction to its domain form
func ToDomainIntercompanyTxn(m models.IntercompanyTransaction) domain.IntercompanyTransaction {
	return domain.IntercompanyTransaction{
		TxnID:                 m.TxnID,
		CompanyID:             m.CompanyID,
		CounterpartyCompanyID: m.CounterpartyCompanyID,
		TxnDate:               m.TxnDate,
		FinancialYear:         m.FinancialYear,
		TxnType:               domain.IntercompanyTxnType(m.TxnType),
		Direction:             domain.IntercompanyDirection(m.Direction),
		SourceDocType:         m.SourceDocType,
		SourceDocID:           m.SourceDocID,
		SourceDocNumber:       m.SourceDocNumber,
		Amount:                m.Amount,
		CurrencyCode:          m.CurrencyCode,
		AmountINR:             m.AmountINR,
		CounterpartTxnID:      m.CounterpartTxnID,
		Reconciled:            m.Reconciled,
		ReconciledBy:          m.ReconciledBy,
		ReconciledAt:          m.ReconciledAt,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIntercompanyTxnSlice converts model slices to domain slices
func ToDomainIntercompanyTxnSlice(ms []models.IntercompanyTransaction) []domain.IntercompanyTransaction {
	ds := make([]domain.IntercompanyTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIntercompanyTxn(m)
	}
	return ds
}

// ToDomainIntercompanyBalance converts a model IntercompanyBalance to its domain form
func ToDomainIntercompanyBalance(m models.IntercompanyBalance) domain.IntercompanyBalance {
	return domain.IntercompanyBalance{
		FromCompanyID: m.FromCompanyID,
		ToCompanyID:   m.ToCompanyID,
		Balance:       m.Balance,
		LastTxnDate:   m.LastTxnDate,
		TxnCount:      m.TxnCount,
	}
}
