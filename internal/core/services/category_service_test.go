package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackr/personal_finance_app/internal/apperrors"
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/core/services"
	"github.com/fintrackr/personal_finance_app/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockCategoryRepository
	mockTxnRepo *MockTransactionRepository
	mockExpRepo *MockExpenseRepository
	service     portssvc.CategorySvc
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockExpRepo = new(MockExpenseRepository)
	suite.service = services.NewCategoryService(suite.mockRepo,
		services.WithCategoryReferenceCounters(suite.mockTxnRepo, suite.mockExpRepo))
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateCategoryRequest{
		Name: "Groceries",
		Type: "expense",
		Icon: "ShoppingCart",
	}

	suite.mockRepo.On("ListCategories", ctx).Return([]domain.Category{}, nil).Once()
	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	created, err := suite.service.CreateCategory(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ID)
	suite.Equal("Groceries", created.Name)
	suite.Equal(domain.TypeExpense, created.Type)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	ctx := context.Background()
	existing := []domain.Category{
		{ID: uuid.NewString(), Name: "Groceries", Type: domain.TypeExpense},
	}

	suite.mockRepo.On("ListCategories", ctx).Return(existing, nil).Once()

	// Case differs but names match case-insensitively.
	created, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name: "gRoCeRiEs",
		Type: "expense",
	})

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_SameNameDifferentType() {
	ctx := context.Background()
	existing := []domain.Category{
		{ID: uuid.NewString(), Name: "Investment", Type: domain.TypeExpense},
	}

	suite.mockRepo.On("ListCategories", ctx).Return(existing, nil).Once()
	suite.mockRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	// Uniqueness is per type, so an income category may reuse the name.
	created, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name: "Investment",
		Type: "income",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.TypeIncome, created.Type)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_RenameToTakenName() {
	ctx := context.Background()
	testID := uuid.NewString()
	original := &domain.Category{ID: testID, Name: "Fun", Type: domain.TypeExpense}
	existing := []domain.Category{
		*original,
		{ID: uuid.NewString(), Name: "Food", Type: domain.TypeExpense},
	}

	newName := "Food"
	suite.mockRepo.On("FindCategoryByID", ctx, testID).Return(original, nil).Once()
	suite.mockRepo.On("ListCategories", ctx).Return(existing, nil).Once()

	updated, err := suite.service.UpdateCategory(ctx, testID, dto.UpdateCategoryRequest{Name: &newName})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_InUseByTransactions() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindCategoryByID", ctx, testID).Return(&domain.Category{ID: testID, Name: "Rent"}, nil).Once()
	suite.mockTxnRepo.On("CountTransactionsByCategory", ctx, testID).Return(4, nil).Once()

	err := suite.service.DeleteCategory(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInUse)
	suite.Contains(err.Error(), "4 transactions")

	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
	suite.mockExpRepo.AssertNotCalled(suite.T(), "CountExpensesByCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_InUseByExpenses() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindCategoryByID", ctx, testID).Return(&domain.Category{ID: testID, Name: "Food"}, nil).Once()
	suite.mockTxnRepo.On("CountTransactionsByCategory", ctx, testID).Return(0, nil).Once()
	suite.mockExpRepo.On("CountExpensesByCategory", ctx, testID).Return(2, nil).Once()

	err := suite.service.DeleteCategory(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInUse)

	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindCategoryByID", ctx, testID).Return(&domain.Category{ID: testID, Name: "Old"}, nil).Once()
	suite.mockTxnRepo.On("CountTransactionsByCategory", ctx, testID).Return(0, nil).Once()
	suite.mockExpRepo.On("CountExpensesByCategory", ctx, testID).Return(0, nil).Once()
	suite.mockRepo.On("DeleteCategory", ctx, testID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, testID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockExpRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindCategoryByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestListCategories_NilBecomesEmpty() {
	ctx := context.Background()
	var none []domain.Category

	suite.mockRepo.On("ListCategories", ctx).Return(none, nil).Once()

	categories, err := suite.service.ListCategories(ctx)

	suite.Require().NoError(err)
	suite.NotNil(categories)
	suite.Empty(categories)
}

func (suite *CategoryServiceTestSuite) TestListCategories_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListCategories", ctx).Return(nil, assert.AnError).Once()

	categories, err := suite.service.ListCategories(ctx)

	suite.Require().Error(err)
	suite.Nil(categories)
	suite.ErrorIs(err, assert.AnError)
}

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
