package dto

import (
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
)

// CreateAccountRequest defines the payload for adding a chart-of-accounts row.
type CreateAccountRequest struct {
	AccountCode string `json:"accountCode" binding:"required"`
	AccountName string `json:"accountName" binding:"required"`
	AccountType string `json:"accountType" binding:"required"`
	CreatedBy   string `json:"createdBy" binding:"required"`
}

// AccountResponse defines the data returned for a chart-of-accounts row.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	CompanyID   string `json:"companyID"`
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	AccountType string `json:"accountType"`
	IsActive    bool   `json:"isActive"`
}

// ToAccountResponse converts a domain.ChartOfAccount to its DTO.
func ToAccountResponse(account *domain.ChartOfAccount) AccountResponse {
	return AccountResponse{
		AccountID:   account.AccountID,
		CompanyID:   account.CompanyID,
		AccountCode: account.AccountCode,
		AccountName: account.AccountName,
		AccountType: string(account.AccountType),
		IsActive:    account.IsActive,
	}
}
