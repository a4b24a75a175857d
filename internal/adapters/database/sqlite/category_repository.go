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

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new repository for category data.
func NewCategoryRepository(db *sql.DB) portsrepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (id, name, type, subtype, icon, color)
		VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		category.ID,
		category.Name,
		string(category.Type),
		string(category.Subtype),
		category.Icon,
		category.Color,
	)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", category.ID, err)
	}
	return nil
}

func (r *categoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT id, name, type, subtype, icon, color
		FROM categories
		WHERE id = ?;
	`
	var cat domain.Category
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(
		&cat.ID,
		&cat.Name,
		&cat.Type,
		&cat.Subtype,
		&cat.Icon,
		&cat.Color,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	return &cat, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, type, subtype, icon, color
		FROM categories
		ORDER BY name;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Type, &cat.Subtype, &cat.Icon, &cat.Color); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories
		SET name = ?, subtype = ?, icon = ?, color = ?
		WHERE id = ?;
	`
	res, err := r.db.ExecContext(ctx, query,
		category.Name,
		string(category.Subtype),
		category.Icon,
		category.Color,
		category.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.ID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("category %s: %w", category.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	return nil
}
