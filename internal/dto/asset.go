package dto

import (
	"time"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to create an asset.
type CreateAssetRequest struct {
	Name       string `json:"name" binding:"required"`
	Amount     string `json:"amount" binding:"required"` // free-form text, normalized server-side
	CategoryID string `json:"categoryId" binding:"required"`
	Note       string `json:"note"`
}

// UpdateAssetRequest carries the fields that may change on an asset.
type UpdateAssetRequest struct {
	Name       *string `json:"name"`
	Amount     *string `json:"amount"`
	CategoryID *string `json:"categoryId"`
	Note       *string `json:"note"`
}

// AssetResponse mirrors domain.Asset for API output.
type AssetResponse struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Amount               decimal.Decimal  `json:"amount"`
	CategoryID           string           `json:"categoryId"`
	Note                 string           `json:"note,omitempty"`
	LastUpdatedDate      *time.Time       `json:"lastUpdatedDate,omitempty"`
	CurrentUpdatedDate   *time.Time       `json:"currentUpdatedDate,omitempty"`
	LastTotalAssetsValue *decimal.Decimal `json:"lastTotalAssetsValue,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

// ToAssetResponse converts a domain.Asset to its response DTO.
func ToAssetResponse(asset *domain.Asset) AssetResponse {
	return AssetResponse{
		ID:                   asset.ID,
		Name:                 asset.Name,
		Amount:               asset.Amount,
		CategoryID:           asset.CategoryID,
		Note:                 asset.Note,
		LastUpdatedDate:      asset.LastUpdatedDate,
		CurrentUpdatedDate:   asset.CurrentUpdatedDate,
		LastTotalAssetsValue: asset.LastTotalAssetsValue,
		CreatedAt:            asset.CreatedAt,
		UpdatedAt:            asset.UpdatedAt,
	}
}

// ToListAssetResponse converts a slice of assets.
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}

// TotalAssetsResponse is the roll-up returned by the assets total endpoint.
type TotalAssetsResponse struct {
	TotalAssets decimal.Decimal `json:"totalAssets"`
}
