package repositories

import (
	"context"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

// AssetRepository persists tracked assets.
type AssetRepository interface {
	SaveAsset(ctx context.Context, asset domain.Asset) error
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	UpdateAsset(ctx context.Context, asset domain.Asset) error
	DeleteAsset(ctx context.Context, assetID string) error
	CountAssetsByCategory(ctx context.Context, categoryID string) (int, error)
}

// AccountRepository persists the accounts transactions may reference.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
