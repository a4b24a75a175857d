package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

func catTotal(name string, total int64) domain.CategoryTotal {
	return domain.CategoryTotal{
		Category: domain.Category{ID: "cat-" + name, Name: name, Type: domain.TypeExpense},
		Total:    decimal.NewFromInt(total),
	}
}

func TestAnalyzeCategorySpending_Empty(t *testing.T) {
	result := AnalyzeCategorySpending(nil, decimal.NewFromInt(1000))
	assert.Empty(t, result.TopCategories)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Recommendations)
	assert.Zero(t, result.TotalCategories)
}

func TestAnalyzeCategorySpending_WarningAndRecommendation(t *testing.T) {
	totals := []domain.CategoryTotal{
		catTotal("Food", 300),    // 30% -> recommendation
		catTotal("Housing", 450), // 45% -> warning
		catTotal("Fun", 100),     // 10% -> neither
	}

	result := AnalyzeCategorySpending(totals, decimal.NewFromInt(1000))

	require.Len(t, result.TopCategories, 3)
	assert.Equal(t, "Housing", result.TopCategories[0].Category.Name, "sorted largest first")
	assert.Equal(t, 3, result.TotalCategories)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Housing", result.Warnings[0].Category)
	assert.True(t, result.Warnings[0].Percentage.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, "Housing accounts for 45.0% of total expenses - this is very high", result.Warnings[0].Message)

	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Food", result.Recommendations[0].Category)
	assert.Equal(t, "Consider reviewing Food spending (30.0% of total)", result.Recommendations[0].Message)
}

func TestAnalyzeCategorySpending_ExactThresholdsDoNotFire(t *testing.T) {
	totals := []domain.CategoryTotal{
		catTotal("Forty", 400),      // exactly 40% is not "above 40%"
		catTotal("TwentyFive", 250), // exactly 25% is not "above 25%"
	}

	result := AnalyzeCategorySpending(totals, decimal.NewFromInt(1000))
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Recommendations, 1, "40% still clears the 25% recommendation bar")
	assert.Equal(t, "Forty", result.Recommendations[0].Category)
}

func TestAnalyzeCategorySpending_TopFiveCap(t *testing.T) {
	totals := []domain.CategoryTotal{
		catTotal("A", 700),
		catTotal("B", 600),
		catTotal("C", 500),
		catTotal("D", 400),
		catTotal("E", 300),
		catTotal("F", 200),
		catTotal("G", 100),
	}

	result := AnalyzeCategorySpending(totals, decimal.NewFromInt(2800))
	assert.Len(t, result.TopCategories, 5)
	assert.Equal(t, 7, result.TotalCategories)
	assert.Equal(t, "A", result.TopCategories[0].Category.Name)
	assert.Equal(t, "E", result.TopCategories[4].Category.Name)
}

func TestAnalyzeCategorySpending_ZeroTotalExpenses(t *testing.T) {
	totals := []domain.CategoryTotal{catTotal("Food", 500)}

	result := AnalyzeCategorySpending(totals, decimal.Zero)
	assert.Len(t, result.TopCategories, 1)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Recommendations)
}
