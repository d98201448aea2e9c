package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sales_ledger/internal/sales"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// printReport writes the battery one line per query, in the order the
// queries are usually read.
func printReport(w io.Writer, r *sales.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Total of completed sales: %s\n", money(r.Totals.Completed))
	fmt.Fprintf(bw, "Total of cancelled sales: %s\n", money(r.Totals.Cancelled))
	if r.Dates != nil {
		fmt.Fprintf(bw, "First sale date: %s\n", r.Dates.Earliest)
		fmt.Fprintf(bw, "Days between first and last sale: %d\n", r.Dates.DaysBetween)
	} else {
		fmt.Fprintln(bw, "First sale date: none, the ledger is empty")
		fmt.Fprintln(bw, "Days between first and last sale: none, the ledger is empty")
	}
	fmt.Fprintf(bw, "Total of sales by seller %s: %s\n", r.Seller.Seller, money(r.Seller.Total))
	fmt.Fprintf(bw, "Sales by manager %s: %d\n", r.Manager.Manager, r.Manager.Count)
	fmt.Fprintf(bw, "Total of sales in %s and %s: %s\n", r.Months.MonthA, r.Months.MonthB, money(r.Months.Total))
	fmt.Fprintf(bw, "Sales by department: %s\n", countRanking(r.DepartmentRanking))
	fmt.Fprintf(bw, "Sales by payment method: %s\n", countRanking(r.PaymentMethodRanking))
	fmt.Fprintf(bw, "Best sellers: %s\n", valueRanking(r.BestSellers))

	return bw.Flush()
}

func countRanking(ranking []sales.CountRank) string {
	parts := make([]string, 0, len(ranking))
	for _, e := range ranking {
		parts = append(parts, fmt.Sprintf("%s=%d", e.Key, e.Count))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func valueRanking(ranking []sales.ValueRank) string {
	parts := make([]string, 0, len(ranking))
	for _, e := range ranking {
		parts = append(parts, fmt.Sprintf("%s=%s", e.Key, money(e.Total)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
