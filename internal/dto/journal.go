package dto

import (
	"time"

	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineResponse defines the data returned for one journal line.
type JournalLineResponse struct {
	LineID        string          `json:"lineID"`
	AccountID     string          `json:"accountID"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description"`
	CurrencyCode  string          `json:"currencyCode"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	SubledgerType string          `json:"subledgerType,omitempty"`
	SubledgerID   string          `json:"subledgerID,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID          string                `json:"entryID"`
	CompanyID        string                `json:"companyID"`
	JournalNumber    string                `json:"journalNumber"`
	JournalDate      time.Time             `json:"journalDate"`
	FinancialYear    string                `json:"financialYear"`
	PeriodMonth      int                   `json:"periodMonth"`
	EntryType        string                `json:"entryType"`
	SourceType       string                `json:"sourceType"`
	SourceID         string                `json:"sourceID"`
	SourceNumber     string                `json:"sourceNumber,omitempty"`
	Description      string                `json:"description"`
	Narration        string                `json:"narration,omitempty"`
	Status           string                `json:"status"`
	TotalDebit       decimal.Decimal       `json:"totalDebit"`
	TotalCredit      decimal.Decimal       `json:"totalCredit"`
	OriginalEntryID  *string               `json:"originalEntryID,omitempty"`
	ReversingEntryID *string               `json:"reversingEntryID,omitempty"`
	PostedAt         time.Time             `json:"postedAt"`
	Lines            []JournalLineResponse `json:"lines,omitempty"`
}

// ReverseEntryRequest carries the audit fields for a reversal.
type ReverseEntryRequest struct {
	Reason     string `json:"reason" binding:"required"`
	ReversedBy string `json:"reversedBy" binding:"required"`
}

// ListEntriesParams holds parameters for listing journal entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse is the paginated journal entry listing.
type ListEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:        line.LineID,
		AccountID:     line.AccountID,
		Debit:         line.Debit,
		Credit:        line.Credit,
		Description:   line.Description,
		CurrencyCode:  line.CurrencyCode,
		ExchangeRate:  line.ExchangeRate,
		SubledgerType: line.SubledgerType,
		SubledgerID:   line.SubledgerID,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:          entry.EntryID,
		CompanyID:        entry.CompanyID,
		JournalNumber:    entry.JournalNumber,
		JournalDate:      entry.JournalDate,
		FinancialYear:    entry.FinancialYear,
		PeriodMonth:      entry.PeriodMonth,
		EntryType:        string(entry.EntryType),
		SourceType:       entry.SourceType,
		SourceID:         entry.SourceID,
		SourceNumber:     entry.SourceNumber,
		Description:      entry.Description,
		Narration:        entry.Narration,
		Status:           string(entry.Status),
		TotalDebit:       entry.TotalDebit,
		TotalCredit:      entry.TotalCredit,
		OriginalEntryID:  entry.OriginalEntryID,
		ReversingEntryID: entry.ReversingEntryID,
		PostedAt:         entry.PostedAt,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(entry.Lines))
		for i := range entry.Lines {
			resp.Lines[i] = ToJournalLineResponse(&entry.Lines[i])
		}
	}
	return resp
}

// ToJournalEntryResponses converts a slice of entries to DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
