package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"sales_ledger/internal/sales"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintReport(t *testing.T) {
	report := &sales.Report{
		Totals: sales.Totals{
			Completed: decimal.RequireFromString("130"),
			Cancelled: decimal.RequireFromString("50.5"),
		},
		Dates: &sales.DateSpan{
			Earliest:    sales.NewDate(2024, time.July, 1),
			Latest:      sales.NewDate(2024, time.July, 10),
			DaysBetween: 9,
		},
		Seller:  sales.SellerTotal{Seller: "Adriana Gomes", Total: decimal.RequireFromString("130")},
		Manager: sales.ManagerCount{Manager: "Elenice Mendes", Count: 2},
		Months:  sales.MonthsTotal{MonthA: time.July, MonthB: time.September, Total: decimal.RequireFromString("180")},
		DepartmentRanking: []sales.CountRank{
			{Key: "Moda", Count: 2},
			{Key: "Casa", Count: 1},
		},
		PaymentMethodRanking: []sales.CountRank{{Key: "Pix", Count: 3}},
		BestSellers: []sales.ValueRank{
			{Key: "Adriana Gomes", Total: decimal.RequireFromString("130")},
			{Key: "Caio Prado", Total: decimal.RequireFromString("75.5")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, report))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Total of completed sales: 130.00",
		"Total of cancelled sales: 50.50",
		"First sale date: 2024-07-01",
		"Days between first and last sale: 9",
		"Total of sales by seller Adriana Gomes: 130.00",
		"Sales by manager Elenice Mendes: 2",
		"Total of sales in July and September: 180.00",
		"Sales by department: {Moda=2, Casa=1}",
		"Sales by payment method: {Pix=3}",
		"Best sellers: {Adriana Gomes=130.00, Caio Prado=75.50}",
	}, lines)
}

func TestPrintReport_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, &sales.Report{Months: sales.MonthsTotal{MonthA: time.July, MonthB: time.July}}))

	out := buf.String()
	assert.Contains(t, out, "Total of completed sales: 0.00")
	assert.Contains(t, out, "First sale date: none, the ledger is empty")
	assert.Contains(t, out, "Best sellers: {}")
}
