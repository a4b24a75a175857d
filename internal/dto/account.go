package dto

import (
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create an account.
type CreateAccountRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=cash bank card"`
}

// AccountResponse mirrors domain.Account for API output.
type AccountResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:   acc.ID,
		Name: acc.Name,
		Type: string(acc.Type),
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
