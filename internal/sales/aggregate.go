package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// BestSellersLimit is how many sellers BestSellers keeps.
const BestSellersLimit = 3

func sumWhere(ledger []Sale, keep func(Sale) bool) decimal.Decimal {
	total := decimal.Zero
	for _, s := range ledger {
		if keep(s) {
			total = total.Add(s.Value)
		}
	}
	return total
}

// TotalCompletedSales sums the value of completed sales.
func TotalCompletedSales(ledger []Sale) decimal.Decimal {
	return sumWhere(ledger, Sale.IsCompleted)
}

// TotalCancelledSales sums the value of cancelled sales.
func TotalCancelledSales(ledger []Sale) decimal.Decimal {
	return sumWhere(ledger, Sale.IsCancelled)
}

// TotalOtherStatusSales sums sales that are neither completed nor cancelled.
func TotalOtherStatusSales(ledger []Sale) decimal.Decimal {
	return sumWhere(ledger, func(s Sale) bool {
		return !s.IsCompleted() && !s.IsCancelled()
	})
}

// TotalSales sums every sale in the ledger.
func TotalSales(ledger []Sale) decimal.Decimal {
	return sumWhere(ledger, func(Sale) bool { return true })
}

// EarliestSaleDate returns the first sale date in calendar order.
func EarliestSaleDate(ledger []Sale) (Date, error) {
	first, _, err := saleDateSpan(ledger)
	return first, err
}

// LatestSaleDate returns the last sale date in calendar order.
func LatestSaleDate(ledger []Sale) (Date, error) {
	_, last, err := saleDateSpan(ledger)
	return last, err
}

// DaysBetweenFirstAndLast counts the days from the first sale date up to,
// but not including, the last one.
func DaysBetweenFirstAndLast(ledger []Sale) (int, error) {
	first, last, err := saleDateSpan(ledger)
	if err != nil {
		return 0, err
	}
	return first.DaysUntil(last), nil
}

func saleDateSpan(ledger []Sale) (Date, Date, error) {
	if len(ledger) == 0 {
		return Date{}, Date{}, ErrEmptyLedger
	}

	first, last := ledger[0].SaleDate, ledger[0].SaleDate
	for _, s := range ledger[1:] {
		if s.SaleDate.Before(first) {
			first = s.SaleDate
		}
		if s.SaleDate.After(last) {
			last = s.SaleDate
		}
	}
	return first, last, nil
}

// TotalSalesBySeller sums the sales of the seller with exactly this name.
func TotalSalesBySeller(ledger []Sale, seller string) decimal.Decimal {
	return sumWhere(ledger, func(s Sale) bool { return s.Seller == seller })
}

// CountSalesByManager counts the sales of the manager with exactly this name.
func CountSalesByManager(ledger []Sale, manager string) int {
	count := 0
	for _, s := range ledger {
		if s.Manager == manager {
			count++
		}
	}
	return count
}

// TotalSalesByMonths sums sales made in month a or month b of any year.
// The two months are a union, not a range: July and September leave August out.
func TotalSalesByMonths(ledger []Sale, a, b time.Month) decimal.Decimal {
	return sumWhere(ledger, func(s Sale) bool {
		m := s.SaleDate.Month()
		return m == a || m == b
	})
}

// RankingByDepartment counts sales per department, most sales first.
func RankingByDepartment(ledger []Sale) []CountRank {
	return rankByCount(ledger, func(s Sale) string { return s.Department })
}

// RankingByPaymentMethod counts sales per payment method, most sales first.
func RankingByPaymentMethod(ledger []Sale) []CountRank {
	return rankByCount(ledger, func(s Sale) string { return s.PaymentMethod })
}

// BestSellers returns the BestSellersLimit sellers with the highest sales value.
func BestSellers(ledger []Sale) []ValueRank {
	return TopSellers(ledger, BestSellersLimit)
}

// TopSellers returns the n sellers with the highest sales value.
// n <= 0 returns every seller.
func TopSellers(ledger []Sale, n int) []ValueRank {
	ranking := rankByValue(ledger, func(s Sale) string { return s.Seller })
	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}
