package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a daily expense-tracking entry. It is structurally identical to
// an expense Transaction but lives in its own collection and may only
// reference categories with the daily subtype.
type Expense struct {
	ID              string           `json:"id"` // Primary Key (UUID)
	AmountOriginal  decimal.Decimal  `json:"amountOriginal"`
	CurrencyCode    string           `json:"currencyCode"`
	AmountConverted decimal.Decimal  `json:"amountConverted"`
	FXRateToBase    *decimal.Decimal `json:"fxRateToBase"`
	CategoryID      string           `json:"categoryId"` // FK -> Category.ID (subtype daily)
	AccountID       string           `json:"accountId"`
	Note            string           `json:"note"`
	Date            time.Time        `json:"date"`
	AttachmentURIs  []string         `json:"attachmentUris"`
	AuditFields
}

// When returns the instant used for month bucketing and range filters.
func (e Expense) When() time.Time { return e.Date }

// AsTransaction converts the expense into the transaction shape so the
// aggregation reducers only need a single input type.
func (e Expense) AsTransaction() Transaction {
	return Transaction{
		ID:              e.ID,
		Type:            TypeExpense,
		AmountOriginal:  e.AmountOriginal,
		CurrencyCode:    e.CurrencyCode,
		AmountConverted: e.AmountConverted,
		FXRateToBase:    e.FXRateToBase,
		CategoryID:      e.CategoryID,
		AccountID:       e.AccountID,
		Note:            e.Note,
		Date:            e.Date,
		AttachmentURIs:  e.AttachmentURIs,
		AuditFields:     e.AuditFields,
	}
}

// ExpensesAsTransactions converts a whole expense collection.
func ExpensesAsTransactions(expenses []Expense) []Transaction {
	out := make([]Transaction, len(expenses))
	for i, e := range expenses {
		out[i] = e.AsTransaction()
	}
	return out
}
