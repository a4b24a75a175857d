package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackr/personal_finance_app/internal/apperrors"
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintrackr/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/dto"
	"github.com/fintrackr/personal_finance_app/internal/utils/aggregation"
)

// assetService implements the AssetSvc interface
type assetService struct {
	BaseService
	assetRepo         portsrepo.AssetRepository
	assetCategoryRepo portsrepo.AssetCategoryRepository
}

// NewAssetService creates a new asset service
func NewAssetService(repo portsrepo.AssetRepository, categoryRepo portsrepo.AssetCategoryRepository) portssvc.AssetSvc {
	return &assetService{
		assetRepo:         repo,
		assetCategoryRepo: categoryRepo,
	}
}

var _ portssvc.AssetSvc = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	now := time.Now()
	asset := domain.Asset{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Amount:     aggregation.ParseAmountInput(req.Amount),
		CategoryID: req.CategoryID,
		Note:       req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.validate(ctx, asset); err != nil {
		return nil, err
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset", slog.String("asset_id", asset.ID))
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}

	s.LogInfo(ctx, "Asset created", slog.String("asset_id", asset.ID), slog.String("name", asset.Name))
	return &asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	return s.assetRepo.FindAssetByID(ctx, assetID)
}

func (s *assetService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets")
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, nil
}

// TotalAssets sums every asset's amount.
func (s *assetService) TotalAssets(ctx context.Context) (decimal.Decimal, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets for total")
		return decimal.Zero, fmt.Errorf("failed to list assets: %w", err)
	}
	return aggregation.TotalAssets(assets), nil
}

// UpdateAsset applies the changed fields. When the amount moves it also
// records a snapshot of the pre-update total so the dashboard can report a
// period-over-period delta.
func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		newAmount := aggregation.ParseAmountInput(*req.Amount)
		if !newAmount.Equal(asset.Amount) {
			if assets, listErr := s.assetRepo.ListAssets(ctx); listErr == nil {
				previousTotal := aggregation.TotalAssets(assets)
				now := time.Now()
				asset.LastUpdatedDate = asset.CurrentUpdatedDate
				asset.CurrentUpdatedDate = &now
				asset.LastTotalAssetsValue = &previousTotal
			}
			asset.Amount = newAmount
		}
	}
	if req.Name != nil {
		asset.Name = strings.TrimSpace(*req.Name)
	}
	if req.CategoryID != nil {
		asset.CategoryID = *req.CategoryID
	}
	if req.Note != nil {
		asset.Note = *req.Note
	}
	asset.UpdatedAt = time.Now()

	if err := s.validate(ctx, *asset); err != nil {
		return nil, err
	}

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to update asset", slog.String("asset_id", assetID))
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	return asset, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID string) error {
	if _, err := s.assetRepo.FindAssetByID(ctx, assetID); err != nil {
		return err
	}
	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		s.LogError(ctx, err, "Failed to delete asset", slog.String("asset_id", assetID))
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	s.LogInfo(ctx, "Asset deleted", slog.String("asset_id", assetID))
	return nil
}

// DuplicateAsset copies an existing asset into a new record. Snapshot fields
// are not carried over; the copy starts a fresh history.
func (s *assetService) DuplicateAsset(ctx context.Context, assetID string) (*domain.Asset, error) {
	source, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	duplicate := domain.Asset{
		ID:         uuid.NewString(),
		Name:       source.Name + " (copy)",
		Amount:     source.Amount,
		CategoryID: source.CategoryID,
		Note:       source.Note,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, duplicate); err != nil {
		s.LogError(ctx, err, "Failed to duplicate asset", slog.String("source_id", assetID))
		return nil, fmt.Errorf("failed to duplicate asset: %w", err)
	}

	s.LogInfo(ctx, "Asset duplicated", slog.String("source_id", assetID), slog.String("asset_id", duplicate.ID))
	return &duplicate, nil
}

func (s *assetService) CreateAssetCategory(ctx context.Context, req dto.CreateAssetCategoryRequest) (*domain.AssetCategory, error) {
	if err := s.checkCategoryNameFree(ctx, req.Name, ""); err != nil {
		return nil, err
	}

	category := domain.AssetCategory{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Icon:  req.Icon,
		Color: req.Color,
	}

	if err := s.assetCategoryRepo.SaveAssetCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save asset category", slog.String("category_id", category.ID))
		return nil, fmt.Errorf("failed to save asset category: %w", err)
	}

	s.LogInfo(ctx, "Asset category created", slog.String("category_id", category.ID), slog.String("name", category.Name))
	return &category, nil
}

func (s *assetService) GetAssetCategoryByID(ctx context.Context, categoryID string) (*domain.AssetCategory, error) {
	return s.assetCategoryRepo.FindAssetCategoryByID(ctx, categoryID)
}

func (s *assetService) ListAssetCategories(ctx context.Context) ([]domain.AssetCategory, error) {
	categories, err := s.assetCategoryRepo.ListAssetCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list asset categories")
		return nil, fmt.Errorf("failed to list asset categories: %w", err)
	}
	if categories == nil {
		categories = []domain.AssetCategory{}
	}
	return categories, nil
}

func (s *assetService) UpdateAssetCategory(ctx context.Context, categoryID string, req dto.UpdateAssetCategoryRequest) (*domain.AssetCategory, error) {
	category, err := s.assetCategoryRepo.FindAssetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && !strings.EqualFold(*req.Name, category.Name) {
		if err := s.checkCategoryNameFree(ctx, *req.Name, categoryID); err != nil {
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

	if err := s.assetCategoryRepo.UpdateAssetCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update asset category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update asset category: %w", err)
	}
	return category, nil
}

// DeleteAssetCategory removes an asset category unless assets still
// reference it.
func (s *assetService) DeleteAssetCategory(ctx context.Context, categoryID string) error {
	if _, err := s.assetCategoryRepo.FindAssetCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	count, err := s.assetRepo.CountAssetsByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to count assets for category: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d assets still use this category", apperrors.ErrInUse, count)
	}

	if err := s.assetCategoryRepo.DeleteAssetCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete asset category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete asset category: %w", err)
	}
	s.LogInfo(ctx, "Asset category deleted", slog.String("category_id", categoryID))
	return nil
}

func (s *assetService) validate(ctx context.Context, asset domain.Asset) error {
	if problems := aggregation.ValidateAsset(asset); len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	if _, err := s.assetCategoryRepo.FindAssetCategoryByID(ctx, asset.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: asset category %s does not exist", apperrors.ErrValidation, asset.CategoryID)
		}
		return fmt.Errorf("failed to look up asset category: %w", err)
	}
	return nil
}

func (s *assetService) checkCategoryNameFree(ctx context.Context, name, excludeID string) error {
	existing, err := s.assetCategoryRepo.ListAssetCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list asset categories: %w", err)
	}
	for _, c := range existing {
		if c.ID == excludeID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name)) {
			return fmt.Errorf("%w: asset category %q already exists", apperrors.ErrDuplicate, c.Name)
		}
	}
	return nil
}
