package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

func adviceTitles(advice []domain.Advice) []string {
	titles := make([]string, len(advice))
	for i, a := range advice {
		titles[i] = a.Title
	}
	return titles
}

func TestGenerateAdvice_Overspending(t *testing.T) {
	advice := GenerateAdvice(AdviceInput{
		MonthlyIncome:   decimal.NewFromInt(3000),
		MonthlyExpenses: decimal.NewFromInt(3500),
		MonthlyBalance:  decimal.NewFromInt(-500),
		SavingsRate:     decimal.RequireFromString("-16.7"),
	})

	require.NotEmpty(t, advice)
	top := advice[0]
	assert.Equal(t, domain.AdviceCritical, top.Type)
	assert.Equal(t, 1, top.Priority)
	assert.Equal(t, "Spending Exceeds Income", top.Title)
	assert.Equal(t, "You're spending $500.00 more than you earn. Consider reducing expenses or increasing income.", top.Message)

	// The empty emergency fund also fires.
	assert.Contains(t, adviceTitles(advice), "Build Emergency Fund")
}

func TestGenerateAdvice_LowSavingsRate(t *testing.T) {
	advice := GenerateAdvice(AdviceInput{
		MonthlyIncome:       decimal.NewFromInt(10000),
		MonthlyExpenses:     decimal.NewFromInt(9500),
		MonthlyBalance:      decimal.NewFromInt(500),
		SavingsRate:         decimal.NewFromInt(5),
		EmergencyFundMonths: decimal.NewFromInt(4),
	})

	titles := adviceTitles(advice)
	assert.Contains(t, titles, "Low Savings Rate")
	assert.Contains(t, titles, "High Expense Ratio", "95% of income spent")
	assert.NotContains(t, titles, "Build Emergency Fund")

	for _, a := range advice {
		if a.Title == "Low Savings Rate" {
			assert.Equal(t, domain.AdviceWarning, a.Type)
			assert.Equal(t, "Your savings rate is 5.0%. Aim for at least 20% for better financial security.", a.Message)
		}
	}
}

func TestGenerateAdvice_HealthyFinances(t *testing.T) {
	advice := GenerateAdvice(AdviceInput{
		TotalAssets:         decimal.NewFromInt(300000),
		MonthlyIncome:       decimal.NewFromInt(10000),
		MonthlyExpenses:     decimal.NewFromInt(6000),
		MonthlyBalance:      decimal.NewFromInt(4000),
		SavingsRate:         decimal.NewFromInt(40),
		EmergencyFundMonths: decimal.NewFromInt(50),
	})

	titles := adviceTitles(advice)
	assert.Equal(t, []string{"Excellent Savings Rate", "Strong Emergency Fund"}, titles)
	for _, a := range advice {
		assert.Equal(t, domain.AdvicePositive, a.Type)
		assert.Equal(t, 5, a.Priority)
	}
}

func TestGenerateAdvice_EmergencyFundShortfall(t *testing.T) {
	advice := GenerateAdvice(AdviceInput{
		MonthlyIncome:       decimal.NewFromInt(5000),
		MonthlyExpenses:     decimal.NewFromInt(4000),
		MonthlyBalance:      decimal.NewFromInt(1000),
		SavingsRate:         decimal.NewFromInt(20),
		EmergencyFundMonths: decimal.NewFromInt(1),
	})

	var found bool
	for _, a := range advice {
		if a.Title == "Build Emergency Fund" {
			found = true
			assert.Equal(t, "Your emergency fund covers 1.0 months. Aim for 3-6 months.", a.Message)
			// Two more months of 4000 in expenses to reach coverage.
			assert.Equal(t, "Save $8,000.00 more to reach 3 months coverage", a.Action)
		}
	}
	assert.True(t, found)
}

func TestGenerateAdvice_TrendAndCategoryRules(t *testing.T) {
	advice := GenerateAdvice(AdviceInput{
		MonthlyIncome:       decimal.NewFromInt(10000),
		MonthlyExpenses:     decimal.NewFromInt(7000),
		MonthlyBalance:      decimal.NewFromInt(3000),
		SavingsRate:         decimal.NewFromInt(30),
		EmergencyFundMonths: decimal.NewFromInt(4),
		SpendingTrend: domain.TrendAnalysis{
			Trend:   domain.TrendIncreasing,
			Message: "Expenses increased by 22.0% - consider reviewing spending habits",
		},
		CategoryAnalysis: domain.CategoryAnalysis{
			Warnings: []domain.CategoryShare{
				{Category: "Housing", Message: "Housing accounts for 45.0% of total expenses - this is very high"},
			},
		},
	})

	titles := adviceTitles(advice)
	assert.Contains(t, titles, "Spending Trend Alert")
	assert.Contains(t, titles, "High Category Spending")

	// Priority ordering is ascending and stable.
	for i := 1; i < len(advice); i++ {
		assert.LessOrEqual(t, advice[i-1].Priority, advice[i].Priority)
	}
}

func TestGenerateAdvice_AboveAverageSpending(t *testing.T) {
	advice := GenerateAdvice(AdviceInput{
		MonthlyIncome:       decimal.NewFromInt(10000),
		MonthlyExpenses:     decimal.NewFromInt(6000),
		MonthlyBalance:      decimal.NewFromInt(4000),
		SavingsRate:         decimal.NewFromInt(40),
		EmergencyFundMonths: decimal.NewFromInt(6),
		YearToDateAverage:   decimal.NewFromInt(5000),
	})

	var found bool
	for _, a := range advice {
		if a.Title == "Above Average Spending" {
			found = true
			assert.Equal(t, "This month's expenses are 20.0% above your year-to-date average.", a.Message)
			assert.Equal(t, domain.AdviceWarning, a.Type)
		}
	}
	assert.True(t, found, "6000 is 20% above the 5000 average, past the 10% margin")
}

func TestGenerateAdvice_WithinAverageMarginStaysQuiet(t *testing.T) {
	advice := GenerateAdvice(AdviceInput{
		MonthlyIncome:       decimal.NewFromInt(10000),
		MonthlyExpenses:     decimal.NewFromInt(5400),
		MonthlyBalance:      decimal.NewFromInt(4600),
		SavingsRate:         decimal.NewFromInt(46),
		EmergencyFundMonths: decimal.NewFromInt(6),
		YearToDateAverage:   decimal.NewFromInt(5000),
	})

	assert.NotContains(t, adviceTitles(advice), "Above Average Spending",
		"8% above average is inside the 10% margin")
}

func TestGenerateAdvice_BuildAssets(t *testing.T) {
	advice := GenerateAdvice(AdviceInput{
		TotalAssets:         decimal.NewFromInt(10000), // well under half an annual income
		MonthlyIncome:       decimal.NewFromInt(10000),
		MonthlyExpenses:     decimal.NewFromInt(7000),
		MonthlyBalance:      decimal.NewFromInt(3000),
		SavingsRate:         decimal.NewFromInt(30),
		EmergencyFundMonths: decimal.NewFromInt(4),
	})

	var found bool
	for _, a := range advice {
		if a.Title == "Build Your Assets" {
			found = true
			assert.Equal(t, domain.AdviceInfo, a.Type)
			assert.Equal(t, 4, a.Priority)
		}
	}
	assert.True(t, found)
}
