package accounting

import (
	"fmt"

	"github.com/himanshudhami/InvoiceX-sub016/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum permitted difference between total debits
// and total credits of a journal entry, in currency units.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// SumLines totals the debit and credit sides of a set of journal lines.
func SumLines(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit, totalCredit
}

// IsBalanced reports whether debits and credits agree within tolerance.
func IsBalanced(totalDebit, totalCredit decimal.Decimal) bool {
	return totalDebit.Sub(totalCredit).Abs().LessThanOrEqual(BalanceTolerance)
}

// ValidateLineSpec checks the debit-xor-credit shape of a builder-emitted line.
func ValidateLineSpec(spec domain.LineSpec) error {
	if spec.Debit.IsNegative() || spec.Credit.IsNegative() {
		return fmt.Errorf("line for account %s has a negative amount", spec.AccountCode)
	}
	debitSet := spec.Debit.IsPositive()
	creditSet := spec.Credit.IsPositive()
	if debitSet == creditSet {
		return fmt.Errorf("line for account %s must set exactly one of debit or credit", spec.AccountCode)
	}
	return nil
}
