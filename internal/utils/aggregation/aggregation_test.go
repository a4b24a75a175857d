package aggregation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

func txn(id string, txnType domain.TransactionType, amount string, date time.Time) domain.Transaction {
	return domain.Transaction{
		ID:              id,
		Type:            txnType,
		AmountOriginal:  decimal.RequireFromString(amount),
		AmountConverted: decimal.RequireFromString(amount),
		CurrencyCode:    "USD",
		CategoryID:      "cat-" + id,
		Date:            date,
	}
}

func TestFilterByMonth(t *testing.T) {
	jan := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)
	feb := time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)
	janLastInstant := time.Date(2025, 1, 31, 23, 59, 59, 999_000_000, time.Local)

	transactions := []domain.Transaction{
		txn("a", domain.TypeExpense, "10", jan),
		txn("b", domain.TypeExpense, "20", feb),
		txn("c", domain.TypeExpense, "30", janLastInstant),
	}

	filtered := FilterByMonth(transactions, "2025-01")
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].ID)
	assert.Equal(t, "c", filtered[1].ID, "last instant of the month is inclusive")

	// Filtering an already-filtered month changes nothing.
	assert.Equal(t, filtered, FilterByMonth(filtered, "2025-01"))
}

func TestFilterByMonth_MalformedKey(t *testing.T) {
	transactions := []domain.Transaction{
		txn("a", domain.TypeExpense, "10", time.Now()),
	}

	assert.Empty(t, FilterByMonth(transactions, "not-a-month"))
	assert.Empty(t, FilterByMonth(transactions, "2025-13"))
	assert.Empty(t, FilterByMonth(transactions, ""))
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds("2025-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 2, 28, 23, 59, 59, 999_000_000, time.Local), end)

	_, _, err = MonthBounds("bogus")
	assert.Error(t, err)
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-03", MonthKey(time.Date(2025, 3, 31, 23, 30, 0, 0, time.Local)))
	assert.Equal(t, "2024-12", MonthKey(time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local)))
}

func TestMonthDisplayName(t *testing.T) {
	assert.Equal(t, "January 2025", MonthDisplayName("2025-01"))
	assert.Equal(t, "garbage", MonthDisplayName("garbage"), "unparseable keys pass through")
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	summary := Summarize([]domain.Transaction{
		txn("a", domain.TypeIncome, "1000", now),
		txn("b", domain.TypeIncome, "250.50", now),
		txn("c", domain.TypeExpense, "400", now),
	})

	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("1250.50")))
	assert.True(t, summary.TotalExpenses.Equal(decimal.RequireFromString("400")))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("850.50")))
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpenses.IsZero())
	assert.True(t, summary.Balance.IsZero())
}

func TestSortByRecency(t *testing.T) {
	day := time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local)
	earlier := txn("old", domain.TypeExpense, "1", day.AddDate(0, 0, -3))
	newer := txn("new", domain.TypeExpense, "1", day)

	// Same date, different creation instants.
	tieOld := txn("tie-old", domain.TypeExpense, "1", day)
	tieOld.CreatedAt = day.Add(1 * time.Hour)
	tieNew := txn("tie-new", domain.TypeExpense, "1", day)
	tieNew.CreatedAt = day.Add(2 * time.Hour)

	input := []domain.Transaction{earlier, tieOld, newer, tieNew}
	sorted := SortByRecency(input)

	require.Len(t, sorted, 4)
	assert.Equal(t, "tie-new", sorted[0].ID)
	assert.Equal(t, "tie-old", sorted[1].ID)
	assert.Equal(t, "new", sorted[2].ID, "zero CreatedAt sorts after real creation times on the same date")
	assert.Equal(t, "old", sorted[3].ID)

	// Input order must be untouched.
	assert.Equal(t, "old", input[0].ID)
}

func TestTotalAssets(t *testing.T) {
	assets := []domain.Asset{
		{ID: "a1", Amount: decimal.RequireFromString("100.25")},
		{ID: "a2", Amount: decimal.RequireFromString("899.75")},
	}
	assert.True(t, TotalAssets(assets).Equal(decimal.NewFromInt(1000)))
	assert.True(t, TotalAssets(nil).IsZero())
}

func TestTopExpenseCategories(t *testing.T) {
	now := time.Now()
	categories := []domain.Category{
		{ID: "food", Name: "Food", Type: domain.TypeExpense},
		{ID: "rent", Name: "Rent", Type: domain.TypeExpense},
		{ID: "fun", Name: "Fun", Type: domain.TypeExpense},
	}
	transactions := []domain.Transaction{
		{ID: "1", CategoryID: "food", AmountConverted: decimal.NewFromInt(50), Date: now},
		{ID: "2", CategoryID: "rent", AmountConverted: decimal.NewFromInt(900), Date: now},
		{ID: "3", CategoryID: "food", AmountConverted: decimal.NewFromInt(30), Date: now},
		{ID: "4", CategoryID: "fun", AmountConverted: decimal.NewFromInt(20), Date: now},
		{ID: "5", CategoryID: "deleted-cat", AmountConverted: decimal.NewFromInt(999), Date: now},
	}

	top := TopExpenseCategories(transactions, categories, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Rent", top[0].Category.Name)
	assert.True(t, top[0].Total.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "Food", top[1].Category.Name)
	assert.True(t, top[1].Total.Equal(decimal.NewFromInt(80)))

	// n = -1 means no cap; the orphaned category stays dropped.
	all := TopExpenseCategories(transactions, categories, -1)
	assert.Len(t, all, 3)
}

func TestTopExpenseCategories_DropsZeroTotals(t *testing.T) {
	categories := []domain.Category{{ID: "food", Name: "Food"}}
	transactions := []domain.Transaction{
		{ID: "1", CategoryID: "food", AmountConverted: decimal.Zero},
	}
	assert.Empty(t, TopExpenseCategories(transactions, categories, 5))
}

func TestTopAssetCategories(t *testing.T) {
	categories := []domain.AssetCategory{
		{ID: "savings", Name: "Savings"},
		{ID: "stocks", Name: "Stocks"},
	}
	assets := []domain.Asset{
		{ID: "a", CategoryID: "stocks", Amount: decimal.NewFromInt(5000)},
		{ID: "b", CategoryID: "savings", Amount: decimal.NewFromInt(12000)},
		{ID: "c", CategoryID: "stocks", Amount: decimal.NewFromInt(1000)},
	}

	top := TopAssetCategories(assets, categories, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "Savings", top[0].Category.Name)
	assert.True(t, top[0].Total.Equal(decimal.NewFromInt(12000)))
}

func TestMonthlyTotals_Chronological(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "1", AmountConverted: decimal.NewFromInt(300), Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.Local)},
		{ID: "2", AmountConverted: decimal.NewFromInt(100), Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.Local)},
		{ID: "3", AmountConverted: decimal.NewFromInt(50), Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local)},
		{ID: "4", AmountConverted: decimal.NewFromInt(200), Date: time.Date(2025, 2, 14, 0, 0, 0, 0, time.Local)},
	}

	totals := MonthlyTotals(transactions)
	require.Len(t, totals, 3)
	assert.Equal(t, "2025-01", totals[0].MonthKey)
	assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "2025-02", totals[1].MonthKey)
	assert.Equal(t, "2025-03", totals[2].MonthKey)
}

func TestMean(t *testing.T) {
	values := []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(200),
		decimal.NewFromInt(600),
	}
	assert.True(t, Mean(values).Equal(decimal.NewFromInt(300)))
	assert.True(t, Mean(nil).IsZero())
}

func TestParseAmountInput(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1234.56", "1234.56"},
		{"$1,234.56", "1234.56"},
		{"1234.567", "1234.56"}, // truncated, not rounded
		{"1234.999", "1234.99"},
		{"12.", "12"},
		{".5", "0.5"},
		{"abc", "0"},
		{"", "0"},
		{"$", "0"},
		{"1.2.3", "1.23"}, // second dot ignored
		{"00.10", "0.1"},
	}
	for _, tc := range cases {
		got := ParseAmountInput(tc.input)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"ParseAmountInput(%q) = %s, want %s", tc.input, got, tc.want)
	}
}

func TestValidateTransaction(t *testing.T) {
	valid := txn("ok", domain.TypeExpense, "10", time.Now())
	assert.Empty(t, ValidateTransaction(valid))

	invalid := domain.Transaction{Type: "transfer"}
	errs := ValidateTransaction(invalid)
	assert.Contains(t, errs, "Amount must be greater than 0")
	assert.Contains(t, errs, "Category is required")
	assert.Contains(t, errs, "Date is required")
	assert.Contains(t, errs, "Type must be either income or expense")
}

func TestValidateExpense(t *testing.T) {
	valid := domain.Expense{
		AmountOriginal: decimal.NewFromInt(5),
		CategoryID:     "cat-food",
		Date:           time.Now(),
	}
	assert.Empty(t, ValidateExpense(valid))

	errs := ValidateExpense(domain.Expense{})
	assert.Len(t, errs, 3)
}

func TestValidateAsset(t *testing.T) {
	valid := domain.Asset{
		Name:       "Savings Account",
		Amount:     decimal.NewFromInt(1000),
		CategoryID: "asset-cat",
	}
	assert.Empty(t, ValidateAsset(valid))

	errs := ValidateAsset(domain.Asset{Amount: decimal.NewFromInt(-1)})
	assert.Contains(t, errs, "Name is required")
	assert.Contains(t, errs, "Amount must be greater than 0")
	assert.Contains(t, errs, "Category is required")
}
