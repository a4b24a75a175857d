package analysis

import (
	"sort"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	shareWarnPct      = decimal.NewFromInt(40)
	shareRecommendPct = decimal.NewFromInt(25)
)

// AnalyzeCategorySpending looks at the five largest spending categories and
// flags the dominant ones: above 40% of total expenses is a warning, above
// 25% a recommendation to review. A zero expense total yields zero shares
// rather than an error.
func AnalyzeCategorySpending(categoryTotals []domain.CategoryTotal, totalExpenses decimal.Decimal) domain.CategoryAnalysis {
	if len(categoryTotals) == 0 {
		return domain.CategoryAnalysis{
			TopCategories:   []domain.CategoryTotal{},
			Warnings:        []domain.CategoryShare{},
			Recommendations: []domain.CategoryShare{},
		}
	}

	sorted := make([]domain.CategoryTotal, len(categoryTotals))
	copy(sorted, categoryTotals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total.GreaterThan(sorted[j].Total)
	})

	top := sorted
	if len(top) > 5 {
		top = top[:5]
	}

	warnings := []domain.CategoryShare{}
	recommendations := []domain.CategoryShare{}
	for _, item := range top {
		percentage := decimal.Zero
		if totalExpenses.IsPositive() {
			percentage = item.Total.Div(totalExpenses).Mul(hundred)
		}
		pct := percentage.StringFixed(1)
		switch {
		case percentage.GreaterThan(shareWarnPct):
			warnings = append(warnings, domain.CategoryShare{
				Category:   item.Category.Name,
				Percentage: percentage.Round(1),
				Message:    item.Category.Name + " accounts for " + pct + "% of total expenses - this is very high",
			})
		case percentage.GreaterThan(shareRecommendPct):
			recommendations = append(recommendations, domain.CategoryShare{
				Category:   item.Category.Name,
				Percentage: percentage.Round(1),
				Message:    "Consider reviewing " + item.Category.Name + " spending (" + pct + "% of total)",
			})
		}
	}

	return domain.CategoryAnalysis{
		TopCategories:   top,
		Warnings:        warnings,
		Recommendations: recommendations,
		TotalCategories: len(categoryTotals),
	}
}
