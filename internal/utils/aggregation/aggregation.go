package aggregation

import (
	"sort"
	"time"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Dated is any record that carries the instant used for bucketing.
type Dated interface {
	When() time.Time
}

// FilterByMonth keeps the records whose date falls inside the month named by
// monthKey. A malformed key yields an empty result, not an error.
func FilterByMonth[T Dated](records []T, monthKey string) []T {
	start, end, err := MonthBounds(monthKey)
	if err != nil {
		return []T{}
	}
	return FilterByDateRange(records, start, end)
}

// FilterByDateRange keeps the records whose date falls between start and end,
// bounds inclusive.
func FilterByDateRange[T Dated](records []T, start, end time.Time) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		d := r.When()
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Summarize reduces transactions to total income, total expenses and their
// balance. Empty input is a valid all-zero summary.
func Summarize(transactions []domain.Transaction) domain.MonthlySummary {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	for _, txn := range transactions {
		switch txn.Type {
		case domain.TypeIncome:
			totalIncome = totalIncome.Add(txn.AmountConverted)
		case domain.TypeExpense:
			totalExpenses = totalExpenses.Add(txn.AmountConverted)
		}
	}
	return domain.MonthlySummary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome.Sub(totalExpenses),
	}
}

// SortByRecency orders transactions newest first, breaking same-date ties by
// creation time, newest first. The sort is stable, so records equal on both
// keys keep their input order. The input slice is not mutated.
func SortByRecency(transactions []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(transactions))
	copy(out, transactions)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// TotalAssets sums the amounts of all assets.
func TotalAssets(assets []domain.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.Amount)
	}
	return total
}

// TopExpenseCategories groups transactions by category, sums their converted
// amounts, and returns the n largest groups. Groups whose category no longer
// exists, and groups that sum to zero, are dropped. The sort is stable:
// equal totals keep the order in which their category first appeared.
func TopExpenseCategories(transactions []domain.Transaction, categories []domain.Category, n int) []domain.CategoryTotal {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, txn := range transactions {
		if txn.CategoryID == "" {
			continue
		}
		if _, seen := totals[txn.CategoryID]; !seen {
			order = append(order, txn.CategoryID)
		}
		totals[txn.CategoryID] = totals[txn.CategoryID].Add(txn.AmountConverted)
	}

	return rankCategoryTotals(order, totals, byID, n)
}

// TopAssetCategories is the asset-side counterpart of TopExpenseCategories,
// summing asset amounts per asset category.
func TopAssetCategories(assets []domain.Asset, categories []domain.AssetCategory, n int) []domain.AssetCategoryTotal {
	byID := make(map[string]domain.AssetCategory, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, a := range assets {
		if a.CategoryID == "" {
			continue
		}
		if _, seen := totals[a.CategoryID]; !seen {
			order = append(order, a.CategoryID)
		}
		totals[a.CategoryID] = totals[a.CategoryID].Add(a.Amount)
	}

	out := make([]domain.AssetCategoryTotal, 0, len(order))
	for _, id := range order {
		cat, ok := byID[id]
		if !ok || !totals[id].IsPositive() {
			continue
		}
		out = append(out, domain.AssetCategoryTotal{Category: cat, Total: totals[id]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func rankCategoryTotals(order []string, totals map[string]decimal.Decimal, byID map[string]domain.Category, n int) []domain.CategoryTotal {
	out := make([]domain.CategoryTotal, 0, len(order))
	for _, id := range order {
		cat, ok := byID[id]
		if !ok || !totals[id].IsPositive() {
			continue
		}
		out = append(out, domain.CategoryTotal{Category: cat, Total: totals[id]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// MonthlyTotals buckets transactions by month key and returns the per-month
// converted-amount totals in chronological order.
func MonthlyTotals(transactions []domain.Transaction) []domain.MonthTotal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		key := MonthKey(txn.Date)
		totals[key] = totals[key].Add(txn.AmountConverted)
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]domain.MonthTotal, len(keys))
	for i, key := range keys {
		out[i] = domain.MonthTotal{MonthKey: key, Total: totals[key]}
	}
	return out
}

// Mean returns the arithmetic mean of a decimal series, zero for an empty one.
func Mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values))))
}
