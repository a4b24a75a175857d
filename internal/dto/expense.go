package dto

import (
	"time"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to create a daily expense
// entry. Same amount-as-text convention as transactions.
type CreateExpenseRequest struct {
	Amount         string           `json:"amount" binding:"required"`
	CurrencyCode   string           `json:"currencyCode"`
	FXRateToBase   *decimal.Decimal `json:"fxRateToBase"`
	CategoryID     string           `json:"categoryId" binding:"required"`
	AccountID      string           `json:"accountId"`
	Note           string           `json:"note"`
	Date           time.Time        `json:"date" binding:"required"`
	AttachmentURIs []string         `json:"attachmentUris"`
}

// UpdateExpenseRequest carries the fields that may change on an expense.
type UpdateExpenseRequest struct {
	Amount         *string          `json:"amount"`
	CurrencyCode   *string          `json:"currencyCode"`
	FXRateToBase   *decimal.Decimal `json:"fxRateToBase"`
	CategoryID     *string          `json:"categoryId"`
	AccountID      *string          `json:"accountId"`
	Note           *string          `json:"note"`
	Date           *time.Time       `json:"date"`
	AttachmentURIs *[]string        `json:"attachmentUris"`
}

// ExpenseResponse mirrors domain.Expense for API output.
type ExpenseResponse struct {
	ID              string           `json:"id"`
	AmountOriginal  decimal.Decimal  `json:"amountOriginal"`
	CurrencyCode    string           `json:"currencyCode"`
	AmountConverted decimal.Decimal  `json:"amountConverted"`
	FXRateToBase    *decimal.Decimal `json:"fxRateToBase"`
	CategoryID      string           `json:"categoryId"`
	AccountID       string           `json:"accountId,omitempty"`
	Note            string           `json:"note,omitempty"`
	Date            time.Time        `json:"date"`
	AttachmentURIs  []string         `json:"attachmentUris"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(exp *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:              exp.ID,
		AmountOriginal:  exp.AmountOriginal,
		CurrencyCode:    exp.CurrencyCode,
		AmountConverted: exp.AmountConverted,
		FXRateToBase:    exp.FXRateToBase,
		CategoryID:      exp.CategoryID,
		AccountID:       exp.AccountID,
		Note:            exp.Note,
		Date:            exp.Date,
		AttachmentURIs:  exp.AttachmentURIs,
		CreatedAt:       exp.CreatedAt,
		UpdatedAt:       exp.UpdatedAt,
	}
}

// ToListExpenseResponse converts a slice of expenses.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
