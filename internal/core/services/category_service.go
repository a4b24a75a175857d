package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/fintrackr/personal_finance_app/internal/apperrors"
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintrackr/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/dto"
)

// categoryService implements the CategorySvc interface
type categoryService struct {
	BaseService
	categoryRepo    portsrepo.CategoryRepository
	transactionRepo portsrepo.TransactionRepository
	expenseRepo     portsrepo.ExpenseRepository
}

// CategoryServiceOption is a functional option for configuring the category service
type CategoryServiceOption func(*categoryService)

// WithCategoryReferenceCounters wires the repositories consulted by the
// delete guard. Without them deletion relies on the store's FK constraints.
func WithCategoryReferenceCounters(txnRepo portsrepo.TransactionRepository, expRepo portsrepo.ExpenseRepository) CategoryServiceOption {
	return func(s *categoryService) {
		s.transactionRepo = txnRepo
		s.expenseRepo = expRepo
	}
}

// NewCategoryService creates a new category service with the provided options
func NewCategoryService(repo portsrepo.CategoryRepository, options ...CategoryServiceOption) portssvc.CategorySvc {
	svc := &categoryService{
		categoryRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

// CreateCategory persists a new category. Names are unique per type,
// compared case-insensitively.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := s.checkNameFree(ctx, req.Name, domain.TransactionType(req.Type), ""); err != nil {
		return nil, err
	}

	category := domain.Category{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(req.Name),
		Type:    domain.TransactionType(req.Type),
		Subtype: domain.CategorySubtype(req.Subtype),
		Icon:    req.Icon,
		Color:   req.Color,
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.ID))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.ID), slog.String("name", category.Name))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && !strings.EqualFold(*req.Name, category.Name) {
		if err := s.checkNameFree(ctx, *req.Name, category.Type, categoryID); err != nil {
			return nil, err
		}
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category unless transactions or expenses still
// reference it.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	if s.transactionRepo != nil {
		count, err := s.transactionRepo.CountTransactionsByCategory(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("failed to count transactions for category: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %d transactions still use this category", apperrors.ErrInUse, count)
		}
	}
	if s.expenseRepo != nil {
		count, err := s.expenseRepo.CountExpensesByCategory(ctx, categoryID)
		if err != nil {
			return fmt.Errorf("failed to count expenses for category: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %d expenses still use this category", apperrors.ErrInUse, count)
		}
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}

func (s *categoryService) checkNameFree(ctx context.Context, name string, catType domain.TransactionType, excludeID string) error {
	existing, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range existing {
		if c.ID == excludeID || c.Type != catType {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name)) {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, c.Name)
		}
	}
	return nil
}
