package services

import (
	"context"
	"fmt"

	"github.com/himanshudhami/InvoiceX-sub016/internal/apperrors"
	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
	"github.com/himanshudhami/InvoiceX-sub016/internal/utils/gst"
)

// ExpenseSourceType tags journal entries posted for expense reimbursements.
const ExpenseSourceType = "EXPENSE_REIMBURSEMENT"

// expensePostingService journalizes approved expense reimbursements: expense
// and GST input-credit debits against an employee-reimbursement payable.
type expensePostingService struct {
	posting portssvc.PostingSvcFacade
}

// NewExpensePostingService creates a new expense posting service.
func NewExpensePostingService(posting portssvc.PostingSvcFacade) portssvc.ExpensePostingSvc {
	return &expensePostingService{posting: posting}
}

var _ portssvc.ExpensePostingSvc = (*expensePostingService)(nil)

// PostReimbursement builds the expense journal lines and posts them through
// the ledger posting service. The claim total is tax-inclusive; the GST split
// is carved out of it up front so the line builder itself stays pure.
func (s *expensePostingService) PostReimbursement(ctx context.Context, req dto.PostExpenseReimbursementRequest) (*domain.JournalEntry, error) {
	if !req.GrossAmount.IsPositive() {
		return nil, fmt.Errorf("%w: gross amount must be positive", apperrors.ErrValidation)
	}

	supply := gst.SupplyNone
	if req.SupplyType != "" {
		supply = gst.SupplyType(req.SupplyType)
	}
	split, err := gst.Calculate(req.GrossAmount, req.GSTRate, supply, gst.AmountInclusive)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	event := domain.SourceEvent{
		SourceType:   ExpenseSourceType,
		SourceID:     req.ExpenseID,
		SourceNumber: req.ExpenseNumber,
		CompanyID:    req.CompanyID,
		Date:         req.ExpenseDate,
		Description:  req.Description,
		Narration:    fmt.Sprintf("Expense reimbursement %s for employee %s", req.ExpenseNumber, req.EmployeeID),
		CreatedBy:    req.PostedBy,
		Lines:        expenseLineBuilder(req, split),
	}

	return s.posting.PostEvent(ctx, event)
}

// expenseLineBuilder captures the pre-computed figures so the returned
// builder does no I/O and no arithmetic of its own.
func expenseLineBuilder(req dto.PostExpenseReimbursementRequest, split gst.Split) domain.LineBuilder {
	return func() []domain.LineSpec {
		lines := []domain.LineSpec{
			{
				AccountCode: req.ExpenseAccount,
				Debit:       split.BaseAmount,
				Description: req.Description,
			},
		}
		if split.CGSTAmount.IsPositive() {
			lines = append(lines,
				domain.LineSpec{AccountCode: req.CGSTAccount, Debit: split.CGSTAmount, Description: "CGST input credit"},
				domain.LineSpec{AccountCode: req.SGSTAccount, Debit: split.SGSTAmount, Description: "SGST input credit"},
			)
		}
		if split.IGSTAmount.IsPositive() {
			lines = append(lines, domain.LineSpec{AccountCode: req.IGSTAccount, Debit: split.IGSTAmount, Description: "IGST input credit"})
		}
		lines = append(lines, domain.LineSpec{
			AccountCode:   req.PayableAccount,
			Credit:        req.GrossAmount,
			Description:   "Employee reimbursement payable",
			SubledgerType: "employee",
			SubledgerID:   req.EmployeeID,
		})
		return lines
	}
}
