package dto

import (
	"time"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a balance-sheet
// entry. Amount is free-form text exactly as typed ("$1,234.56"); the
// service normalizes it, so partial input never fails binding.
type CreateTransactionRequest struct {
	Type           string           `json:"type" binding:"required,oneof=income expense"`
	Amount         string           `json:"amount" binding:"required"`
	CurrencyCode   string           `json:"currencyCode"` // defaults to the base currency
	FXRateToBase   *decimal.Decimal `json:"fxRateToBase"` // nil when already in base currency
	CategoryID     string           `json:"categoryId" binding:"required"`
	AccountID      string           `json:"accountId"`
	Note           string           `json:"note"`
	Date           time.Time        `json:"date" binding:"required"`
	AttachmentURIs []string         `json:"attachmentUris"`
}

// UpdateTransactionRequest carries the fields that may change on an existing
// entry. Pointers distinguish "not provided" from zero values.
type UpdateTransactionRequest struct {
	Type           *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Amount         *string          `json:"amount"`
	CurrencyCode   *string          `json:"currencyCode"`
	FXRateToBase   *decimal.Decimal `json:"fxRateToBase"`
	CategoryID     *string          `json:"categoryId"`
	AccountID      *string          `json:"accountId"`
	Note           *string          `json:"note"`
	Date           *time.Time       `json:"date"`
	AttachmentURIs *[]string        `json:"attachmentUris"`
}

// TransactionResponse mirrors domain.Transaction for API output.
type TransactionResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
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

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.ID,
		Type:            string(txn.Type),
		AmountOriginal:  txn.AmountOriginal,
		CurrencyCode:    txn.CurrencyCode,
		AmountConverted: txn.AmountConverted,
		FXRateToBase:    txn.FXRateToBase,
		CategoryID:      txn.CategoryID,
		AccountID:       txn.AccountID,
		Note:            txn.Note,
		Date:            txn.Date,
		AttachmentURIs:  txn.AttachmentURIs,
		CreatedAt:       txn.CreatedAt,
		UpdatedAt:       txn.UpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
