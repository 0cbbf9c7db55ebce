package mapping

import (
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/himanshudhami/InvoiceX-sub016/internal/models"
)

// ToModelChartOfAccount converts a domain ChartOfAccount to its model
func ToModelChartOfAccount(d domain.ChartOfAccount) models.ChartOfAccount {
	return models.ChartOfAccount{
		AccountID:   d.AccountID,
		CompanyID:   d.CompanyID,
		AccountCode: d.AccountCode,
		AccountName: d.AccountName,
		AccountType: models.AccountType(d.AccountType),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChartOfAccount converts a model ChartOfAccount to its domain form
func ToDomainChartOfAccount(m models.ChartOfAccount) domain.ChartOfAccount {
	return domain.ChartOfAccount{
		AccountID:   m.AccountID,
		CompanyID:   m.CompanyID,
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		AccountType: domain.AccountType(m.AccountType),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
