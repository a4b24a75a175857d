package dto

import (
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=income expense"`
	Subtype string `json:"subtype" binding:"omitempty,oneof=daily"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}

// UpdateCategoryRequest carries the fields that may change on a category.
// Type is immutable once records reference the category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// CategoryResponse mirrors domain.Category for API output.
type CategoryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Subtype string `json:"subtype,omitempty"`
	Icon    string `json:"icon"`
	Color   string `json:"color"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:      cat.ID,
		Name:    cat.Name,
		Type:    string(cat.Type),
		Subtype: string(cat.Subtype),
		Icon:    cat.Icon,
		Color:   cat.Color,
	}
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

// CreateAssetCategoryRequest defines the data for an asset-scoped category.
type CreateAssetCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// UpdateAssetCategoryRequest carries the mutable asset-category fields.
type UpdateAssetCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// AssetCategoryResponse mirrors domain.AssetCategory for API output.
type AssetCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ToAssetCategoryResponse converts a domain.AssetCategory to its DTO.
func ToAssetCategoryResponse(cat *domain.AssetCategory) AssetCategoryResponse {
	return AssetCategoryResponse{
		ID:    cat.ID,
		Name:  cat.Name,
		Icon:  cat.Icon,
		Color: cat.Color,
	}
}

// ToListAssetCategoryResponse converts a slice of asset categories.
func ToListAssetCategoryResponse(categories []domain.AssetCategory) []AssetCategoryResponse {
	res := make([]AssetCategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToAssetCategoryResponse(&categories[i])
	}
	return res
}
