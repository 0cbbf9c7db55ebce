package fiscal_test

import (
	"testing"
	"time"

	"github.com/himanshudhami/InvoiceX-sub016/internal/utils/fiscal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod(t *testing.T) {
	testCases := []struct {
		name       string
		date       time.Time
		wantYear   string
		wantPeriod int
	}{
		{"start of financial year", date(2024, time.April, 1), "2024-25", 1},
		{"last day of financial year", date(2025, time.March, 31), "2024-25", 12},
		{"first day of next year", date(2025, time.April, 1), "2025-26", 1},
		{"mid year", date(2024, time.September, 15), "2024-25", 6},
		{"january falls in previous FY", date(2025, time.January, 10), "2024-25", 10},
		{"december", date(2024, time.December, 31), "2024-25", 9},
		{"century padding", date(2099, time.May, 1), "2099-00", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := fiscal.ResolvePeriod(tc.date)
			assert.Equal(t, tc.wantYear, got.FinancialYear)
			assert.Equal(t, tc.wantPeriod, got.PeriodMonth)
		})
	}
}
