package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostExpenseReimbursementRequest asks the posting core to journalize an
// approved expense reimbursement. All figures must be pre-fetched by the
// caller; the line builder performs no I/O.
type PostExpenseReimbursementRequest struct {
	ExpenseID      string          `json:"expenseID"` // Taken from the URL path when posted over HTTP
	ExpenseNumber  string          `json:"expenseNumber"`
	CompanyID      string          `json:"companyID" binding:"required"`
	EmployeeID     string          `json:"employeeID" binding:"required"`
	ExpenseDate    time.Time       `json:"expenseDate" binding:"required"`
	Description    string          `json:"description"`
	GrossAmount    decimal.Decimal `json:"grossAmount" binding:"required"` // Tax-inclusive claim total
	GSTRate        decimal.Decimal `json:"gstRate"`
	SupplyType     string          `json:"supplyType"` // intra_state | inter_state | import | none
	ExpenseAccount string          `json:"expenseAccount" binding:"required"`
	PayableAccount string          `json:"payableAccount" binding:"required"`
	CGSTAccount    string          `json:"cgstAccount"`
	SGSTAccount    string          `json:"sgstAccount"`
	IGSTAccount    string          `json:"igstAccount"`
	PostedBy       string          `json:"postedBy"`
}
