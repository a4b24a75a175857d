package services

import (
	"context"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/fintrackr/personal_finance_app/internal/dto"
)

// CategorySvc defines operations for expense/income category management.
type CategorySvc interface {
	// CreateCategory persists a new category, refusing names already in use.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a specific category by its unique identifier.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category unless records still reference it.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// AccountSvc defines operations for payment account management. Accounts
// are a small reference set, so only create/read are exposed.
type AccountSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
