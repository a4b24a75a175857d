package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fintrackr/personal_finance_app/internal/apperrors"
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintrackr/personal_finance_app/internal/core/ports/repositories"
)

type assetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new repository for asset data.
func NewAssetRepository(db *sql.DB) portsrepo.AssetRepository {
	return &assetRepository{db: db}
}

const assetColumns = `id, name, amount, category_id, note, last_updated_date, current_updated_date, last_total_assets_value, created_at, updated_at`

func (r *assetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		asset.Amount.String(),
		asset.CategoryID,
		asset.Note,
		encodeTimePtr(asset.LastUpdatedDate),
		encodeTimePtr(asset.CurrentUpdatedDate),
		encodeDecimalPtr(asset.LastTotalAssetsValue),
		encodeTime(asset.CreatedAt),
		encodeTime(asset.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save asset %s: %w", asset.ID, err)
	}
	return nil
}

func (r *assetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = ?;`
	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	return asset, nil
}

func (r *assetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY name;`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, *asset)
	}
	return assets, rows.Err()
}

func (r *assetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		UPDATE assets
		SET name = ?, amount = ?, category_id = ?, note = ?,
		    last_updated_date = ?, current_updated_date = ?, last_total_assets_value = ?,
		    updated_at = ?
		WHERE id = ?;
	`
	res, err := r.db.ExecContext(ctx, query,
		asset.Name,
		asset.Amount.String(),
		asset.CategoryID,
		asset.Note,
		encodeTimePtr(asset.LastUpdatedDate),
		encodeTimePtr(asset.CurrentUpdatedDate),
		encodeDecimalPtr(asset.LastTotalAssetsValue),
		encodeTime(asset.UpdatedAt),
		asset.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.ID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("asset %s: %w", asset.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *assetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("asset %s: %w", assetID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *assetRepository) CountAssetsByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets WHERE category_id = ?;`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assets for category %s: %w", categoryID, err)
	}
	return count, nil
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var (
		asset          domain.Asset
		amount         string
		lastUpdated    *string
		currentUpdated *string
		lastTotal      *string
		createdAt      string
		updatedAt      string
	)
	err := row.Scan(
		&asset.ID,
		&asset.Name,
		&amount,
		&asset.CategoryID,
		&asset.Note,
		&lastUpdated,
		&currentUpdated,
		&lastTotal,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if asset.Amount, err = decodeDecimal(amount); err != nil {
		return nil, err
	}
	if asset.LastUpdatedDate, err = decodeTimePtr(lastUpdated); err != nil {
		return nil, err
	}
	if asset.CurrentUpdatedDate, err = decodeTimePtr(currentUpdated); err != nil {
		return nil, err
	}
	if asset.LastTotalAssetsValue, err = decodeDecimalPtr(lastTotal); err != nil {
		return nil, err
	}
	if asset.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if asset.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &asset, nil
}
