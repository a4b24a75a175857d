package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

// Starter reference data inserted into an empty store so the app is usable
// before the user creates their own categories and accounts. Daily-subtype
// categories feed the expense tracker; the rest are balance-sheet buckets.
var seedCategories = []domain.Category{
	{ID: "cat-salary", Name: "Salary", Type: domain.TypeIncome, Icon: "briefcase", Color: "#28a745"},
	{ID: "cat-part-time", Name: "Part Time", Type: domain.TypeIncome, Icon: "time", Color: "#17a2b8"},
	{ID: "cat-investment", Name: "Investment", Type: domain.TypeIncome, Icon: "trending-up", Color: "#ffc107"},

	{ID: "cat-mpf", Name: "MPF", Type: domain.TypeExpense, Icon: "shield-checkmark", Color: "#007bff"},
	{ID: "cat-insurance", Name: "Insurance", Type: domain.TypeExpense, Icon: "umbrella", Color: "#17a2b8"},
	{ID: "cat-tax", Name: "Tax", Type: domain.TypeExpense, Icon: "document-text", Color: "#dc3545"},
	{ID: "cat-housing", Name: "Housing", Type: domain.TypeExpense, Icon: "home", Color: "#6f42c1"},
	{ID: "cat-water", Name: "Water", Type: domain.TypeExpense, Icon: "water", Color: "#007bff"},
	{ID: "cat-electricity", Name: "Electricity", Type: domain.TypeExpense, Icon: "flash", Color: "#ffc107"},
	{ID: "cat-towngas", Name: "Towngas", Type: domain.TypeExpense, Icon: "flame", Color: "#fd7e14"},
	{ID: "cat-mobile-network", Name: "Mobile Network", Type: domain.TypeExpense, Icon: "phone-portrait", Color: "#28a745"},
	{ID: "cat-broadband", Name: "Broadband", Type: domain.TypeExpense, Icon: "wifi", Color: "#6c757d"},
	{ID: "cat-family", Name: "Family", Type: domain.TypeExpense, Icon: "people", Color: "#e83e8c"},
	{ID: "cat-personal-expenses", Name: "Personal Expenses", Type: domain.TypeExpense, Icon: "person", Color: "#6c757d"},

	{ID: "cat-food", Name: "Food", Type: domain.TypeExpense, Subtype: domain.SubtypeDaily, Icon: "restaurant", Color: "#dc3545"},
	{ID: "cat-transport", Name: "Transport", Type: domain.TypeExpense, Subtype: domain.SubtypeDaily, Icon: "car", Color: "#fd7e14"},
	{ID: "cat-shopping", Name: "Shopping", Type: domain.TypeExpense, Subtype: domain.SubtypeDaily, Icon: "bag", Color: "#6c757d"},
	{ID: "cat-entertainment", Name: "Entertainment", Type: domain.TypeExpense, Subtype: domain.SubtypeDaily, Icon: "game-controller", Color: "#e83e8c"},
}

var seedAccounts = []domain.Account{
	{ID: "acc-cash", Name: "Cash", Type: domain.AccountCash},
	{ID: "acc-bank", Name: "Bank", Type: domain.AccountBank},
	{ID: "acc-card", Name: "Credit Card", Type: domain.AccountCard},
}

var seedAssetCategories = []domain.AssetCategory{
	// Real estate and property
	{ID: "cat-primary-residence", Name: "Primary Residence", Icon: "home", Color: "#28a745"},
	{ID: "cat-rental-property", Name: "Rental Property", Icon: "business", Color: "#17a2b8"},
	{ID: "cat-vacation-home", Name: "Vacation Home", Icon: "umbrella", Color: "#20c997"},
	{ID: "cat-land", Name: "Land", Icon: "leaf", Color: "#28a745"},

	// Financial assets
	{ID: "cat-savings-account", Name: "Savings Account", Icon: "library", Color: "#007bff"},
	{ID: "cat-checking-account", Name: "Checking Account", Icon: "card", Color: "#6c757d"},
	{ID: "cat-money-market", Name: "Money Market", Icon: "trending-up", Color: "#007bff"},
	{ID: "cat-certificate-deposit", Name: "Certificate of Deposit", Icon: "document-text", Color: "#007bff"},

	// Investments
	{ID: "cat-stocks", Name: "Stocks", Icon: "trending-up", Color: "#ffc107"},
	{ID: "cat-bonds", Name: "Bonds", Icon: "shield-checkmark", Color: "#28a745"},
	{ID: "cat-mutual-funds", Name: "Mutual Funds", Icon: "bar-chart", Color: "#ffc107"},
	{ID: "cat-etf", Name: "ETF", Icon: "analytics", Color: "#ffc107"},
	{ID: "cat-crypto", Name: "Cryptocurrency", Icon: "logo-bitcoin", Color: "#fd7e14"},
	{ID: "cat-retirement-401k", Name: "401(k)", Icon: "time", Color: "#6f42c1"},
	{ID: "cat-retirement-ira", Name: "IRA", Icon: "time", Color: "#6f42c1"},
	{ID: "cat-pension", Name: "Pension", Icon: "time", Color: "#6f42c1"},

	// Physical assets
	{ID: "cat-vehicle", Name: "Vehicle", Icon: "car", Color: "#6c757d"},
	{ID: "cat-boat", Name: "Boat", Icon: "boat", Color: "#17a2b8"},
	{ID: "cat-aircraft", Name: "Aircraft", Icon: "airplane", Color: "#17a2b8"},
	{ID: "cat-motorcycle", Name: "Motorcycle", Icon: "bicycle", Color: "#6c757d"},

	// Collectibles and valuables
	{ID: "cat-jewelry", Name: "Jewelry", Icon: "diamond", Color: "#e83e8c"},
	{ID: "cat-art", Name: "Art & Antiques", Icon: "color-palette", Color: "#e83e8c"},
	{ID: "cat-collectibles", Name: "Collectibles", Icon: "gift", Color: "#e83e8c"},
	{ID: "cat-precious-metals", Name: "Precious Metals", Icon: "diamond", Color: "#ffc107"},
	{ID: "cat-watches", Name: "Watches", Icon: "time", Color: "#6c757d"},

	// Business and professional
	{ID: "cat-business-equipment", Name: "Business Equipment", Icon: "desktop", Color: "#6f42c1"},
	{ID: "cat-intellectual-property", Name: "Intellectual Property", Icon: "bulb", Color: "#6f42c1"},
	{ID: "cat-business-ownership", Name: "Business Ownership", Icon: "business", Color: "#6f42c1"},
	{ID: "cat-franchise", Name: "Franchise", Icon: "storefront", Color: "#6f42c1"},

	// Insurance and annuities
	{ID: "cat-life-insurance", Name: "Life Insurance", Icon: "heart", Color: "#dc3545"},
	{ID: "cat-annuity", Name: "Annuity", Icon: "calendar", Color: "#dc3545"},
	{ID: "cat-long-term-care", Name: "Long-term Care", Icon: "medical", Color: "#dc3545"},

	// Other
	{ID: "cat-loans-receivable", Name: "Loans Receivable", Icon: "cash", Color: "#28a745"},
	{ID: "cat-other", Name: "Other", Icon: "ellipsis-horizontal", Color: "#6c757d"},
}

// Seed inserts the starter categories, accounts and asset categories into
// any of those tables that are still empty. Existing user data is never
// touched. Sample assets and transactions are intentionally not seeded.
func Seed(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "categories")
	if err != nil {
		return err
	}
	if empty {
		for _, cat := range seedCategories {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO categories (id, name, type, subtype, icon, color) VALUES (?, ?, ?, ?, ?, ?);`,
				cat.ID, cat.Name, string(cat.Type), string(cat.Subtype), cat.Icon, cat.Color,
			); err != nil {
				return fmt.Errorf("seed category %s: %w", cat.ID, err)
			}
		}
	}

	empty, err = tableEmpty(ctx, db, "accounts")
	if err != nil {
		return err
	}
	if empty {
		for _, acc := range seedAccounts {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO accounts (id, name, type) VALUES (?, ?, ?);`,
				acc.ID, acc.Name, string(acc.Type),
			); err != nil {
				return fmt.Errorf("seed account %s: %w", acc.ID, err)
			}
		}
	}

	empty, err = tableEmpty(ctx, db, "asset_categories")
	if err != nil {
		return err
	}
	if empty {
		for _, cat := range seedAssetCategories {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO asset_categories (id, name, icon, color) VALUES (?, ?, ?, ?);`,
				cat.ID, cat.Name, cat.Icon, cat.Color,
			); err != nil {
				return fmt.Errorf("seed asset category %s: %w", cat.ID, err)
			}
		}
	}

	return nil
}

func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+`;`).Scan(&count); err != nil {
		return false, fmt.Errorf("count rows in %s: %w", table, err)
	}
	return count == 0, nil
}
