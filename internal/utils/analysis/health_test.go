package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

func factorByName(t *testing.T, factors []domain.HealthFactor, name string) domain.HealthFactor {
	t.Helper()
	for _, f := range factors {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("factor %q not found", name)
	return domain.HealthFactor{}
}

func TestHealthScore_MaxedOut(t *testing.T) {
	// 30% savings, a year of runway, expenses at half of income and assets
	// worth more than two annual incomes: every factor tops out.
	report := HealthScore(HealthInput{
		TotalAssets:         decimal.NewFromInt(250000),
		MonthlyIncome:       decimal.NewFromInt(10000),
		MonthlyExpenses:     decimal.NewFromInt(5000),
		SavingsRate:         decimal.NewFromInt(50),
		EmergencyFundMonths: decimal.NewFromInt(50),
	})

	assert.Equal(t, 100, report.Score)
	assert.Equal(t, domain.StatusExcellent, report.Status)
	assert.Equal(t, 100, report.MaxScore)
	require.Len(t, report.Factors, 4)
	assert.Equal(t, 30, factorByName(t, report.Factors, "savingsRate").Score)
	assert.Equal(t, 25, factorByName(t, report.Factors, "emergencyFund").Score)
	assert.Equal(t, 25, factorByName(t, report.Factors, "expenseRatio").Score)
	assert.Equal(t, 20, factorByName(t, report.Factors, "assetGrowth").Score)
}

func TestHealthScore_AllZero(t *testing.T) {
	report := HealthScore(HealthInput{})

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, domain.StatusCritical, report.Status)

	// Savings and emergency fund always appear in the breakdown; the two
	// ratio factors are omitted because there is no income and no assets.
	require.Len(t, report.Factors, 2)
	savings := factorByName(t, report.Factors, "savingsRate")
	assert.Equal(t, domain.StatusCritical, savings.Status)
	assert.Equal(t, "No savings - spending exceeds income", savings.Message)
	emergency := factorByName(t, report.Factors, "emergencyFund")
	assert.Equal(t, domain.StatusPoor, emergency.Status)
}

func TestHealthScore_MiddleTiers(t *testing.T) {
	// 12% savings (20 pts), 4 months runway (20 pts), 80% expense ratio
	// (10 pts), assets at one annual income (15 pts) = 65, "fair".
	report := HealthScore(HealthInput{
		TotalAssets:         decimal.NewFromInt(120000),
		MonthlyIncome:       decimal.NewFromInt(10000),
		MonthlyExpenses:     decimal.NewFromInt(8000),
		SavingsRate:         decimal.NewFromInt(12),
		EmergencyFundMonths: decimal.NewFromInt(4),
	})

	assert.Equal(t, 65, report.Score)
	assert.Equal(t, domain.StatusFair, report.Status)
	assert.Equal(t, 20, factorByName(t, report.Factors, "savingsRate").Score)
	assert.Equal(t, 20, factorByName(t, report.Factors, "emergencyFund").Score)
	assert.Equal(t, 10, factorByName(t, report.Factors, "expenseRatio").Score)
	assert.Equal(t, 15, factorByName(t, report.Factors, "assetGrowth").Score)
}

func TestEmergencyFundMonths(t *testing.T) {
	months := EmergencyFundMonths(decimal.NewFromInt(15000), decimal.NewFromInt(5000))
	assert.True(t, months.Equal(decimal.NewFromInt(3)))

	assert.True(t, EmergencyFundMonths(decimal.NewFromInt(15000), decimal.Zero).IsZero())
	assert.True(t, EmergencyFundMonths(decimal.Zero, decimal.NewFromInt(100)).IsZero())
}

func TestSavingsRate(t *testing.T) {
	rate := SavingsRate(decimal.NewFromInt(2500), decimal.NewFromInt(10000))
	assert.True(t, rate.Equal(decimal.NewFromInt(25)))

	assert.True(t, SavingsRate(decimal.NewFromInt(100), decimal.Zero).IsZero())

	negative := SavingsRate(decimal.NewFromInt(-500), decimal.NewFromInt(10000))
	assert.True(t, negative.Equal(decimal.NewFromInt(-5)))
}
