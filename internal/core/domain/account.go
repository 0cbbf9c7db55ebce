package domain

// AccountType classifies a chart-of-accounts entry.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// ChartOfAccount is a read-only reference entity owned by the accounts
// module. The posting core only ever resolves (companyID, accountCode)
// to an account ID through it.
type ChartOfAccount struct {
	AccountID   string      `json:"accountID"`
	CompanyID   string      `json:"companyID"`
	AccountCode string      `json:"accountCode"`
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}
