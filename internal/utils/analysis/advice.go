package analysis

import (
	"sort"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/fintrackr/personal_finance_app/internal/utils"
	"github.com/shopspring/decimal"
)

// AdviceInput is everything the advice rules look at: the current-month
// aggregates plus the already-computed trend and category analyses.
// CurrencyCode and Locale only shape the money strings in the messages.
type AdviceInput struct {
	TotalAssets         decimal.Decimal
	MonthlyIncome       decimal.Decimal
	MonthlyExpenses     decimal.Decimal
	MonthlyBalance      decimal.Decimal
	SavingsRate         decimal.Decimal // percent
	EmergencyFundMonths decimal.Decimal
	SpendingTrend       domain.TrendAnalysis
	CategoryAnalysis    domain.CategoryAnalysis
	YearToDateAverage   decimal.Decimal
	CurrencyCode        string
	Locale              string
}

var (
	three         = decimal.NewFromInt(3)
	tenPct        = decimal.NewFromInt(10)
	twentyPct     = decimal.NewFromInt(20)
	aboveAvgRatio = decimal.NewFromFloat(1.1)
)

// GenerateAdvice runs every advice rule over the input and returns the
// resulting items ordered by ascending priority (1 surfaces first). The sort
// is stable so items sharing a priority keep rule order. Rules fire
// independently; overlapping advice is intentional and never suppressed.
func GenerateAdvice(in AdviceInput) []domain.Advice {
	var advice []domain.Advice
	money := func(amount decimal.Decimal) string {
		return utils.FormatCurrency(amount, in.CurrencyCode, in.Locale)
	}

	// Savings rate.
	switch {
	case in.SavingsRate.IsNegative():
		advice = append(advice, domain.Advice{
			Type:     domain.AdviceCritical,
			Priority: 1,
			Title:    "Spending Exceeds Income",
			Message:  "You're spending " + money(in.MonthlyBalance.Abs()) + " more than you earn. Consider reducing expenses or increasing income.",
			Action:   "Review your expenses and identify areas to cut back",
		})
	case in.SavingsRate.LessThan(tenPct):
		advice = append(advice, domain.Advice{
			Type:     domain.AdviceWarning,
			Priority: 2,
			Title:    "Low Savings Rate",
			Message:  "Your savings rate is " + in.SavingsRate.StringFixed(1) + "%. Aim for at least 20% for better financial security.",
			Action:   "Try to save at least 20% of your income each month",
		})
	case in.SavingsRate.GreaterThanOrEqual(twentyPct):
		advice = append(advice, domain.Advice{
			Type:     domain.AdvicePositive,
			Priority: 5,
			Title:    "Excellent Savings Rate",
			Message:  "Great job! You're saving " + in.SavingsRate.StringFixed(1) + "% of your income. Keep it up!",
			Action:   "Consider investing your savings for long-term growth",
		})
	}

	// Emergency fund.
	if in.EmergencyFundMonths.LessThan(three) {
		message := "Your emergency fund covers " + in.EmergencyFundMonths.StringFixed(1) + " months. Aim for 3-6 months."
		if in.EmergencyFundMonths.IsZero() {
			message = "You don't have an emergency fund. Aim for 3-6 months of expenses."
		}
		shortfall := in.MonthlyExpenses.Mul(three.Sub(in.EmergencyFundMonths))
		advice = append(advice, domain.Advice{
			Type:     domain.AdviceWarning,
			Priority: 2,
			Title:    "Build Emergency Fund",
			Message:  message,
			Action:   "Save " + money(shortfall) + " more to reach 3 months coverage",
		})
	} else if in.EmergencyFundMonths.GreaterThanOrEqual(emergencyTier1) {
		advice = append(advice, domain.Advice{
			Type:     domain.AdvicePositive,
			Priority: 5,
			Title:    "Strong Emergency Fund",
			Message:  "Your emergency fund covers " + in.EmergencyFundMonths.StringFixed(1) + " months - excellent!",
			Action:   "Consider investing excess funds beyond 6 months",
		})
	}

	// Spending trend.
	switch in.SpendingTrend.Trend {
	case domain.TrendIncreasing, domain.TrendSlightlyIncreasing:
		advice = append(advice, domain.Advice{
			Type:     domain.AdviceWarning,
			Priority: 3,
			Title:    "Spending Trend Alert",
			Message:  in.SpendingTrend.Message,
			Action:   "Review your recent expenses and identify what's driving the increase",
		})
	case domain.TrendDecreasing, domain.TrendSlightlyDecreasing:
		advice = append(advice, domain.Advice{
			Type:     domain.AdvicePositive,
			Priority: 4,
			Title:    "Spending Improvement",
			Message:  in.SpendingTrend.Message,
			Action:   "Continue monitoring and maintain this positive trend",
		})
	}

	// High-share categories, one item per warning.
	for _, warning := range in.CategoryAnalysis.Warnings {
		advice = append(advice, domain.Advice{
			Type:     domain.AdviceWarning,
			Priority: 3,
			Title:    "High Category Spending",
			Message:  warning.Message,
			Action:   "Review " + warning.Category + " expenses and look for ways to reduce",
		})
	}

	// Expense ratio.
	if in.MonthlyIncome.IsPositive() {
		expenseRatio := in.MonthlyExpenses.Div(in.MonthlyIncome)
		if expenseRatio.GreaterThan(ratioNinety) {
			advice = append(advice, domain.Advice{
				Type:     domain.AdviceWarning,
				Priority: 2,
				Title:    "High Expense Ratio",
				Message:  "You're spending " + expenseRatio.Mul(hundred).StringFixed(1) + "% of your income. Try to keep it below 80%.",
				Action:   "Identify non-essential expenses you can reduce",
			})
		}
	}

	// Asset base.
	if in.TotalAssets.IsPositive() && in.MonthlyIncome.IsPositive() {
		assetRatio := in.TotalAssets.Div(in.MonthlyIncome.Mul(twelve))
		if assetRatio.LessThan(ratioHalf) {
			advice = append(advice, domain.Advice{
				Type:     domain.AdviceInfo,
				Priority: 4,
				Title:    "Build Your Assets",
				Message:  "Consider diversifying your assets and building long-term wealth.",
				Action:   "Explore investment options that match your risk tolerance",
			})
		}
	}

	// Spending against the year-to-date average.
	if in.YearToDateAverage.IsPositive() && in.MonthlyExpenses.GreaterThan(in.YearToDateAverage.Mul(aboveAvgRatio)) {
		percentAbove := in.MonthlyExpenses.Div(in.YearToDateAverage).Sub(ratioOne).Mul(hundred)
		advice = append(advice, domain.Advice{
			Type:     domain.AdviceWarning,
			Priority: 3,
			Title:    "Above Average Spending",
			Message:  "This month's expenses are " + percentAbove.StringFixed(1) + "% above your year-to-date average.",
			Action:   "Review this month's expenses compared to your average",
		})
	}

	sort.SliceStable(advice, func(i, j int) bool {
		return advice[i].Priority < advice[j].Priority
	})
	return advice
}
