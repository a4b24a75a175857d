// Package analysis is the trend and advice engine: it classifies spending
// direction across months, scores financial health from weighted factors,
// and synthesizes a prioritized advice list. Like the aggregation package it
// is pure and stateless; callers feed it aggregates and keep the outputs.
package analysis

import (
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	trendStrongPct = decimal.NewFromInt(15)
	trendSlightPct = decimal.NewFromInt(5)
)

// ClassifyTrend compares the first and second half of a chronological series
// of monthly totals. Fewer than two points cannot show direction and report
// insufficient data. Change above 15% is a strong move, above 5% a slight
// one, symmetric for decreases; anything inside ±5% is stable.
func ClassifyTrend(monthlyTotals []decimal.Decimal) domain.TrendAnalysis {
	if len(monthlyTotals) < 2 {
		return domain.TrendAnalysis{
			Trend:         domain.TrendInsufficientData,
			Direction:     domain.DirectionStable,
			ChangePercent: decimal.Zero,
			Message:       "Need more data to analyze trends",
		}
	}

	mid := len(monthlyTotals) / 2
	firstAvg := mean(monthlyTotals[:mid])
	secondAvg := mean(monthlyTotals[mid:])

	changePercent := decimal.Zero
	if firstAvg.IsPositive() {
		changePercent = secondAvg.Sub(firstAvg).Div(firstAvg).Mul(hundred)
	}

	result := domain.TrendAnalysis{
		Trend:         domain.TrendStable,
		Direction:     domain.DirectionStable,
		ChangePercent: changePercent.Round(1),
		Message:       "Spending is relatively stable",
		FirstHalfAvg:  firstAvg,
		SecondHalfAvg: secondAvg,
	}

	pct := changePercent.StringFixed(1)
	absPct := changePercent.Abs().StringFixed(1)
	switch {
	case changePercent.GreaterThan(trendStrongPct):
		result.Trend = domain.TrendIncreasing
		result.Direction = domain.DirectionUp
		result.Message = "Expenses increased by " + pct + "% - consider reviewing spending habits"
	case changePercent.GreaterThan(trendSlightPct):
		result.Trend = domain.TrendSlightlyIncreasing
		result.Direction = domain.DirectionUp
		result.Message = "Expenses increased by " + pct + "% - monitor closely"
	case changePercent.LessThan(trendStrongPct.Neg()):
		result.Trend = domain.TrendDecreasing
		result.Direction = domain.DirectionDown
		result.Message = "Expenses decreased by " + absPct + "% - great job!"
	case changePercent.LessThan(trendSlightPct.Neg()):
		result.Trend = domain.TrendSlightlyDecreasing
		result.Direction = domain.DirectionDown
		result.Message = "Expenses decreased by " + absPct + "% - good progress"
	}
	return result
}

func mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values))))
}
