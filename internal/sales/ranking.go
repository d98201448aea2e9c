package sales

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CountRank is a ranking entry measured by number of sales.
type CountRank struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ValueRank is a ranking entry measured by summed sales value.
type ValueRank struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// group folds the ledger into one accumulator per key. Keys are returned in
// the order they were first seen so ties stay deterministic.
func group[M any](ledger []Sale, key func(Sale) string, add func(M, Sale) M) ([]string, map[string]M) {
	order := make([]string, 0)
	acc := make(map[string]M)
	for _, s := range ledger {
		k := key(s)
		cur, seen := acc[k]
		if !seen {
			order = append(order, k)
		}
		acc[k] = add(cur, s)
	}
	return order, acc
}

func rankByCount(ledger []Sale, key func(Sale) string) []CountRank {
	order, counts := group(ledger, key, func(n int, _ Sale) int { return n + 1 })

	ranking := make([]CountRank, 0, len(order))
	for _, k := range order {
		ranking = append(ranking, CountRank{Key: k, Count: counts[k]})
	}
	slices.SortStableFunc(ranking, func(a, b CountRank) int {
		return b.Count - a.Count
	})
	return ranking
}

func rankByValue(ledger []Sale, key func(Sale) string) []ValueRank {
	order, totals := group(ledger, key, func(t decimal.Decimal, s Sale) decimal.Decimal { return t.Add(s.Value) })

	ranking := make([]ValueRank, 0, len(order))
	for _, k := range order {
		ranking = append(ranking, ValueRank{Key: k, Total: totals[k]})
	}
	slices.SortStableFunc(ranking, func(a, b ValueRank) int {
		return b.Total.Cmp(a.Total)
	})
	return ranking
}
