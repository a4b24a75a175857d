package aggregation

import (
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

// ValidateTransaction returns the list of human-readable problems that make
// a transaction unfit to persist. Validation is an explicit pre-persistence
// step; the reducers themselves never reject records.
func ValidateTransaction(txn domain.Transaction) []string {
	var errs []string
	if !txn.AmountOriginal.IsPositive() {
		errs = append(errs, "Amount must be greater than 0")
	}
	if txn.CategoryID == "" {
		errs = append(errs, "Category is required")
	}
	if txn.Date.IsZero() {
		errs = append(errs, "Date is required")
	}
	if txn.Type != domain.TypeIncome && txn.Type != domain.TypeExpense {
		errs = append(errs, "Type must be either income or expense")
	}
	return errs
}

// ValidateExpense validates a daily expense entry. The type check is dropped
// since expenses are always of the expense kind.
func ValidateExpense(exp domain.Expense) []string {
	var errs []string
	if !exp.AmountOriginal.IsPositive() {
		errs = append(errs, "Amount must be greater than 0")
	}
	if exp.CategoryID == "" {
		errs = append(errs, "Category is required")
	}
	if exp.Date.IsZero() {
		errs = append(errs, "Date is required")
	}
	return errs
}

// ValidateAsset validates an asset before persistence.
func ValidateAsset(asset domain.Asset) []string {
	var errs []string
	if asset.Name == "" {
		errs = append(errs, "Name is required")
	}
	if !asset.Amount.IsPositive() {
		errs = append(errs, "Amount must be greater than 0")
	}
	if asset.CategoryID == "" {
		errs = append(errs, "Category is required")
	}
	return errs
}
