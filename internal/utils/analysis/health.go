package analysis

import (
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// HealthInput carries the current-month aggregates the health score is
// derived from. SavingsRate and EmergencyFundMonths are precomputed because
// the advice engine consumes the same numbers.
type HealthInput struct {
	TotalAssets         decimal.Decimal
	MonthlyIncome       decimal.Decimal
	MonthlyExpenses     decimal.Decimal
	SavingsRate         decimal.Decimal // percent
	EmergencyFundMonths decimal.Decimal
}

var (
	twelve = decimal.NewFromInt(12)

	ratioHalf      = decimal.NewFromFloat(0.5)
	ratioSeventy   = decimal.NewFromFloat(0.7)
	ratioNinety    = decimal.NewFromFloat(0.9)
	ratioOne       = decimal.NewFromInt(1)
	ratioTwo       = decimal.NewFromInt(2)
	savingsTier1   = decimal.NewFromInt(20)
	savingsTier2   = decimal.NewFromInt(15)
	savingsTier3   = decimal.NewFromInt(10)
	savingsTier4   = decimal.NewFromInt(5)
	emergencyTier1 = decimal.NewFromInt(6)
	emergencyTier2 = decimal.NewFromInt(3)
	emergencyTier3 = decimal.NewFromInt(1)
)

// HealthScore computes the 0-100 financial health score from four weighted
// factors: savings rate (30), emergency fund (25), expense-to-income ratio
// (25) and asset-to-annual-income ratio (20). A factor that evaluates to
// zero still appears in the breakdown with an explanatory status; a factor
// whose inputs make it meaningless (no income, no assets) is omitted.
func HealthScore(in HealthInput) domain.HealthReport {
	score := 0
	var factors []domain.HealthFactor

	// Savings rate, 0-30 points.
	switch {
	case in.SavingsRate.GreaterThanOrEqual(savingsTier1):
		score += 30
		factors = append(factors, domain.HealthFactor{Name: "savingsRate", Score: 30, Status: domain.StatusExcellent, Message: "Excellent savings rate!"})
	case in.SavingsRate.GreaterThanOrEqual(savingsTier2):
		score += 25
		factors = append(factors, domain.HealthFactor{Name: "savingsRate", Score: 25, Status: domain.StatusGood, Message: "Good savings rate"})
	case in.SavingsRate.GreaterThanOrEqual(savingsTier3):
		score += 20
		factors = append(factors, domain.HealthFactor{Name: "savingsRate", Score: 20, Status: domain.StatusFair, Message: "Moderate savings rate"})
	case in.SavingsRate.GreaterThanOrEqual(savingsTier4):
		score += 10
		factors = append(factors, domain.HealthFactor{Name: "savingsRate", Score: 10, Status: domain.StatusNeedsImprovement, Message: "Low savings rate"})
	case in.SavingsRate.IsPositive():
		score += 5
		factors = append(factors, domain.HealthFactor{Name: "savingsRate", Score: 5, Status: domain.StatusPoor, Message: "Very low savings rate"})
	default:
		factors = append(factors, domain.HealthFactor{Name: "savingsRate", Score: 0, Status: domain.StatusCritical, Message: "No savings - spending exceeds income"})
	}

	// Emergency fund coverage, 0-25 points.
	switch {
	case in.EmergencyFundMonths.GreaterThanOrEqual(emergencyTier1):
		score += 25
		factors = append(factors, domain.HealthFactor{Name: "emergencyFund", Score: 25, Status: domain.StatusExcellent, Message: "Strong emergency fund"})
	case in.EmergencyFundMonths.GreaterThanOrEqual(emergencyTier2):
		score += 20
		factors = append(factors, domain.HealthFactor{Name: "emergencyFund", Score: 20, Status: domain.StatusGood, Message: "Adequate emergency fund"})
	case in.EmergencyFundMonths.GreaterThanOrEqual(emergencyTier3):
		score += 10
		factors = append(factors, domain.HealthFactor{Name: "emergencyFund", Score: 10, Status: domain.StatusFair, Message: "Limited emergency fund"})
	default:
		factors = append(factors, domain.HealthFactor{Name: "emergencyFund", Score: 0, Status: domain.StatusPoor, Message: "No emergency fund"})
	}

	// Expense-to-income ratio, 0-25 points. Meaningless without income.
	if in.MonthlyIncome.IsPositive() {
		expenseRatio := in.MonthlyExpenses.Div(in.MonthlyIncome)
		switch {
		case expenseRatio.LessThanOrEqual(ratioHalf):
			score += 25
			factors = append(factors, domain.HealthFactor{Name: "expenseRatio", Score: 25, Status: domain.StatusExcellent, Message: "Low expense ratio"})
		case expenseRatio.LessThanOrEqual(ratioSeventy):
			score += 20
			factors = append(factors, domain.HealthFactor{Name: "expenseRatio", Score: 20, Status: domain.StatusGood, Message: "Reasonable expense ratio"})
		case expenseRatio.LessThanOrEqual(ratioNinety):
			score += 10
			factors = append(factors, domain.HealthFactor{Name: "expenseRatio", Score: 10, Status: domain.StatusFair, Message: "High expense ratio"})
		case expenseRatio.LessThan(ratioOne):
			score += 5
			factors = append(factors, domain.HealthFactor{Name: "expenseRatio", Score: 5, Status: domain.StatusNeedsImprovement, Message: "Very high expense ratio"})
		default:
			factors = append(factors, domain.HealthFactor{Name: "expenseRatio", Score: 0, Status: domain.StatusCritical, Message: "Spending exceeds income"})
		}
	}

	// Asset base relative to annual income, 0-20 points.
	if in.TotalAssets.IsPositive() && in.MonthlyIncome.IsPositive() {
		assetRatio := in.TotalAssets.Div(in.MonthlyIncome.Mul(twelve))
		switch {
		case assetRatio.GreaterThanOrEqual(ratioTwo):
			score += 20
			factors = append(factors, domain.HealthFactor{Name: "assetGrowth", Score: 20, Status: domain.StatusExcellent, Message: "Strong asset base"})
		case assetRatio.GreaterThanOrEqual(ratioOne):
			score += 15
			factors = append(factors, domain.HealthFactor{Name: "assetGrowth", Score: 15, Status: domain.StatusGood, Message: "Good asset accumulation"})
		case assetRatio.GreaterThanOrEqual(ratioHalf):
			score += 10
			factors = append(factors, domain.HealthFactor{Name: "assetGrowth", Score: 10, Status: domain.StatusFair, Message: "Moderate asset base"})
		default:
			score += 5
			factors = append(factors, domain.HealthFactor{Name: "assetGrowth", Score: 5, Status: domain.StatusNeedsImprovement, Message: "Limited assets"})
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	status := domain.StatusExcellent
	switch {
	case score < 40:
		status = domain.StatusCritical
	case score < 60:
		status = domain.StatusPoor
	case score < 75:
		status = domain.StatusFair
	case score < 90:
		status = domain.StatusGood
	}

	return domain.HealthReport{
		Score:    score,
		Status:   status,
		Factors:  factors,
		MaxScore: 100,
	}
}

// EmergencyFundMonths converts total assets into months of expense runway,
// zero when there are no expenses to cover.
func EmergencyFundMonths(totalAssets, monthlyExpenses decimal.Decimal) decimal.Decimal {
	if !monthlyExpenses.IsPositive() {
		return decimal.Zero
	}
	return totalAssets.Div(monthlyExpenses)
}

// SavingsRate is the monthly balance as a percentage of income, zero without
// income.
func SavingsRate(monthlyBalance, monthlyIncome decimal.Decimal) decimal.Decimal {
	if !monthlyIncome.IsPositive() {
		return decimal.Zero
	}
	return monthlyBalance.Div(monthlyIncome).Mul(hundred)
}
