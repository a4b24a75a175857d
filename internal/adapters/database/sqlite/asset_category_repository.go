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

type assetCategoryRepository struct {
	db *sql.DB
}

// NewAssetCategoryRepository creates a new repository for asset-category data.
func NewAssetCategoryRepository(db *sql.DB) portsrepo.AssetCategoryRepository {
	return &assetCategoryRepository{db: db}
}

func (r *assetCategoryRepository) SaveAssetCategory(ctx context.Context, category domain.AssetCategory) error {
	query := `
		INSERT INTO asset_categories (id, name, icon, color)
		VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.Icon, category.Color)
	if err != nil {
		return fmt.Errorf("failed to save asset category %s: %w", category.ID, err)
	}
	return nil
}

func (r *assetCategoryRepository) FindAssetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error) {
	query := `
		SELECT id, name, icon, color
		FROM asset_categories
		WHERE id = ?;
	`
	var cat domain.AssetCategory
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset category %s: %w", categoryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find asset category %s: %w", categoryID, err)
	}
	return &cat, nil
}

func (r *assetCategoryRepository) ListAssetCategories(ctx context.Context) ([]domain.AssetCategory, error) {
	query := `
		SELECT id, name, icon, color
		FROM asset_categories
		ORDER BY name;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.AssetCategory
	for rows.Next() {
		var cat domain.AssetCategory
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Color); err != nil {
			return nil, fmt.Errorf("failed to scan asset category: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *assetCategoryRepository) UpdateAssetCategory(ctx context.Context, category domain.AssetCategory) error {
	query := `
		UPDATE asset_categories
		SET name = ?, icon = ?, color = ?
		WHERE id = ?;
	`
	res, err := r.db.ExecContext(ctx, query, category.Name, category.Icon, category.Color, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update asset category %s: %w", category.ID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("asset category %s: %w", category.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *assetCategoryRepository) DeleteAssetCategory(ctx context.Context, categoryID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM asset_categories WHERE id = ?;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete asset category %s: %w", categoryID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("asset category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	return nil
}
