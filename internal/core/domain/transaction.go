package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from the balance.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is a formal balance-sheet entry.
// AmountOriginal is what the user typed in CurrencyCode; AmountConverted is the
// same value in the base currency and is what every aggregation sums.
type Transaction struct {
	ID              string           `json:"id"` // Primary Key (UUID)
	Type            TransactionType  `json:"type"`
	AmountOriginal  decimal.Decimal  `json:"amountOriginal"`
	CurrencyCode    string           `json:"currencyCode"`
	AmountConverted decimal.Decimal  `json:"amountConverted"`
	FXRateToBase    *decimal.Decimal `json:"fxRateToBase"` // nil when entered in the base currency
	CategoryID      string           `json:"categoryId"`   // FK -> Category.ID
	AccountID       string           `json:"accountId"`    // FK -> Account.ID, empty = none
	Note            string           `json:"note"`
	Date            time.Time        `json:"date"` // month-bucketing key
	AttachmentURIs  []string         `json:"attachmentUris"`
	AuditFields
}

// When returns the instant used for month bucketing and range filters.
func (t Transaction) When() time.Time { return t.Date }
