package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/fintrackr/personal_finance_app/internal/dto"
)

// AssetReaderSvc defines read operations for asset data
type AssetReaderSvc interface {
	// GetAssetByID retrieves a specific asset by its unique identifier.
	GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// ListAssets retrieves all assets.
	ListAssets(ctx context.Context) ([]domain.Asset, error)

	// TotalAssets sums the converted value of every asset.
	TotalAssets(ctx context.Context) (decimal.Decimal, error)
}

// AssetWriterSvc defines write operations for asset data
type AssetWriterSvc interface {
	// CreateAsset persists a new asset.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)

	// UpdateAsset updates an existing asset's details.
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error)

	// DeleteAsset removes an asset.
	DeleteAsset(ctx context.Context, assetID string) error

	// DuplicateAsset copies an existing asset into a new record.
	DuplicateAsset(ctx context.Context, assetID string) (*domain.Asset, error)
}

// AssetCategorySvc defines operations for asset category management.
type AssetCategorySvc interface {
	// CreateAssetCategory persists a new asset category, refusing names already in use.
	CreateAssetCategory(ctx context.Context, req dto.CreateAssetCategoryRequest) (*domain.AssetCategory, error)

	// GetAssetCategoryByID retrieves a specific asset category by its unique identifier.
	GetAssetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error)

	// ListAssetCategories retrieves all asset categories.
	ListAssetCategories(ctx context.Context) ([]domain.AssetCategory, error)

	// UpdateAssetCategory updates an existing asset category's details.
	UpdateAssetCategory(ctx context.Context, categoryID string, req dto.UpdateAssetCategoryRequest) (*domain.AssetCategory, error)

	// DeleteAssetCategory removes an asset category unless assets still reference it.
	DeleteAssetCategory(ctx context.Context, categoryID string) error
}

// AssetSvc combines all asset-related service interfaces
type AssetSvc interface {
	AssetReaderSvc
	AssetWriterSvc
	AssetCategorySvc
}
