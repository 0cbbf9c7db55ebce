// Package fiscal maps calendar dates onto the Indian financial year, which
// runs from April 1 to March 31 and is labelled "YYYY-YY".
package fiscal

import (
	"fmt"
	"time"
)

// Period is the fiscal bucket a date falls into.
type Period struct {
	FinancialYear string // e.g. "2024-25"
	PeriodMonth   int    // 1..12, April = 1
}

// ResolvePeriod returns the financial year label and period month for a date.
func ResolvePeriod(date time.Time) Period {
	return Period{
		FinancialYear: YearLabel(date),
		PeriodMonth:   PeriodMonth(date),
	}
}

// YearLabel returns the "YYYY-YY" financial year label for a date.
// Months April onward belong to the year starting that April.
func YearLabel(date time.Time) string {
	startYear := date.Year()
	if date.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// PeriodMonth returns the 1-based month index within the financial year,
// so April = 1 and March = 12.
func PeriodMonth(date time.Time) int {
	m := int(date.Month())
	if m >= int(time.April) {
		return m - 3
	}
	return m + 9
}
