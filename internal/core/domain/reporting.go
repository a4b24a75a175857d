package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary is the income/expense/balance roll-up for one month of
// transactions. An empty month yields all zeroes, never an error.
type MonthlySummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// CategoryTotal pairs a category with the summed converted amount of the
// records referencing it.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// AssetCategoryTotal pairs an asset category with the summed asset amounts.
type AssetCategoryTotal struct {
	Category AssetCategory   `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthTotal is one point of a per-month expense series, keyed by "YYYY-MM".
type MonthTotal struct {
	MonthKey string          `json:"monthKey"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardSnapshot is the derived, request-scoped home view-model. It is
// recomputed on demand and never persisted.
type DashboardSnapshot struct {
	TotalAssets        decimal.Decimal      `json:"totalAssets"`
	TotalAssetsDelta   *decimal.Decimal     `json:"totalAssetsDelta"` // nil without a prior snapshot
	TopAssetCategories []AssetCategoryTotal `json:"topAssetCategories"`
	CurrentMonth       MonthlySummary       `json:"currentMonth"`
	YearToDateAverage  decimal.Decimal      `json:"yearToDateAverage"`
	RecentMonths       []MonthTotal         `json:"recentMonths"` // newest first, at most 3
}

// MonthlyReport is the balance-sheet view for a single month.
type MonthlyReport struct {
	MonthKey      string          `json:"monthKey"`
	Summary       MonthlySummary  `json:"summary"`
	Transactions  []Transaction   `json:"transactions"` // recency-sorted
	TopCategories []CategoryTotal `json:"topCategories"`
}
