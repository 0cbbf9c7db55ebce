package mapping

import (
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/himanshudhami/InvoiceX-sub016/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          d.EntryID,
		CompanyID:        d.CompanyID,
		JournalNumber:    d.JournalNumber,
		IdempotencyKey:   d.IdempotencyKey,
		JournalDate:      d.JournalDate,
		FinancialYear:    d.FinancialYear,
		PeriodMonth:      d.PeriodMonth,
		EntryType:        string(d.EntryType),
		SourceType:       d.SourceType,
		SourceID:         d.SourceID,
		SourceNumber:     d.SourceNumber,
		Description:      d.Description,
		Narration:        d.Narration,
		Status:           models.EntryStatus(d.Status),
		PostedAt:         d.PostedAt,
		TotalDebit:       d.TotalDebit,
		TotalCredit:      d.TotalCredit,
		OriginalEntryID:  d.OriginalEntryID,
		ReversingEntryID: d.ReversingEntryID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:          m.EntryID,
		CompanyID:        m.CompanyID,
		JournalNumber:    m.JournalNumber,
		IdempotencyKey:   m.IdempotencyKey,
		JournalDate:      m.JournalDate,
		FinancialYear:    m.FinancialYear,
		PeriodMonth:      m.PeriodMonth,
		EntryType:        domain.EntryType(m.EntryType),
		SourceType:       m.SourceType,
		SourceID:         m.SourceID,
		SourceNumber:     m.SourceNumber,
		Description:      m.Description,
		Narration:        m.Narration,
		Status:           domain.EntryStatus(m.Status),
		PostedAt:         m.PostedAt,
		TotalDebit:       m.TotalDebit,
		TotalCredit:      m.TotalCredit,
		OriginalEntryID:  m.OriginalEntryID,
		ReversingEntryID: m.ReversingEntryID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:        d.LineID,
		EntryID:       d.EntryID,
		AccountID:     d.AccountID,
		Debit:         d.Debit,
		Credit:        d.Credit,
		Description:   d.Description,
		CurrencyCode:  d.CurrencyCode,
		ExchangeRate:  d.ExchangeRate,
		SubledgerType: d.SubledgerType,
		SubledgerID:   d.SubledgerID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:        m.LineID,
		EntryID:       m.EntryID,
		AccountID:     m.AccountID,
		Debit:         m.Debit,
		Credit:        m.Credit,
		Description:   m.Description,
		CurrencyCode:  m.CurrencyCode,
		ExchangeRate:  m.ExchangeRate,
		SubledgerType: m.SubledgerType,
		SubledgerID:   m.SubledgerID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of model JournalLines to domain JournalLines
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
