package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackr/personal_finance_app/internal/apperrors"
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/core/services"
)

type AssetServiceTestSuite struct {
	suite.Suite
	mockAssetRepo    *MockAssetRepository
	mockCategoryRepo *MockAssetCategoryRepository
	service          portssvc.AssetSvc
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockAssetRepo = new(MockAssetRepository)
	suite.mockCategoryRepo = new(MockAssetCategoryRepository)
	suite.service = services.NewAssetService(suite.mockAssetRepo, suite.mockCategoryRepo)
}

func (suite *AssetServiceTestSuite) TestDeleteAssetCategory_InUse() {
	ctx := context.Background()
	category := &domain.AssetCategory{ID: "cat-stocks", Name: "Stocks"}

	suite.mockCategoryRepo.On("FindAssetCategoryByID", ctx, "cat-stocks").Return(category, nil).Once()
	suite.mockAssetRepo.On("CountAssetsByCategory", ctx, "cat-stocks").Return(2, nil).Once()

	err := suite.service.DeleteAssetCategory(ctx, "cat-stocks")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInUse)
	suite.Contains(err.Error(), "2 assets")

	suite.mockCategoryRepo.AssertExpectations(suite.T())
	suite.mockAssetRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteAssetCategory", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestDeleteAssetCategory_Success() {
	ctx := context.Background()
	category := &domain.AssetCategory{ID: "cat-bonds", Name: "Bonds"}

	suite.mockCategoryRepo.On("FindAssetCategoryByID", ctx, "cat-bonds").Return(category, nil).Once()
	suite.mockAssetRepo.On("CountAssetsByCategory", ctx, "cat-bonds").Return(0, nil).Once()
	suite.mockCategoryRepo.On("DeleteAssetCategory", ctx, "cat-bonds").Return(nil).Once()

	err := suite.service.DeleteAssetCategory(ctx, "cat-bonds")

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestDeleteAssetCategory_NotFound() {
	ctx := context.Background()

	suite.mockCategoryRepo.On("FindAssetCategoryByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAssetCategory(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "CountAssetsByCategory", mock.Anything, mock.Anything)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteAssetCategory", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestTotalAssets() {
	ctx := context.Background()
	assets := []domain.Asset{
		{ID: "a1", Name: "Savings", Amount: decimal.NewFromInt(20000), CategoryID: "cat-savings-account"},
		{ID: "a2", Name: "Stocks", Amount: decimal.NewFromInt(10000), CategoryID: "cat-stocks"},
	}

	suite.mockAssetRepo.On("ListAssets", ctx).Return(assets, nil).Once()

	total, err := suite.service.TotalAssets(ctx)

	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.NewFromInt(30000)))
	suite.mockAssetRepo.AssertExpectations(suite.T())
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
