// Package repositories declares the record-store contracts the services
// depend on. The store owns every collection; the engines only ever read
// copies obtained through these interfaces.
package repositories

import (
	"context"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

// CategoryRepository persists transaction/expense categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	// DeleteCategory removes the row; callers are expected to have run the
	// in-use guard first, the schema's RESTRICT constraint is the backstop.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// AssetCategoryRepository persists the asset-scoped category set.
type AssetCategoryRepository interface {
	SaveAssetCategory(ctx context.Context, category domain.AssetCategory) error
	FindAssetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error)
	ListAssetCategories(ctx context.Context) ([]domain.AssetCategory, error)
	UpdateAssetCategory(ctx context.Context, category domain.AssetCategory) error
	DeleteAssetCategory(ctx context.Context, categoryID string) error
}
