package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackr/personal_finance_app/internal/apperrors"
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintrackr/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/dto"
	"github.com/fintrackr/personal_finance_app/internal/utils/aggregation"
)

// expenseService implements the ExpenseSvc interface
type expenseService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepository
	categoryRepo portsrepo.CategoryRepository
	baseCurrency string
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseBaseCurrency overrides the default base currency.
func WithExpenseBaseCurrency(code string) ExpenseServiceOption {
	return func(s *expenseService) {
		if code != "" {
			s.baseCurrency = code
		}
	}
}

// NewExpenseService creates a new expense service with the provided options
func NewExpenseService(repo portsrepo.ExpenseRepository, categoryRepo portsrepo.CategoryRepository, options ...ExpenseServiceOption) portssvc.ExpenseSvc {
	svc := &expenseService{
		expenseRepo:  repo,
		categoryRepo: categoryRepo,
		baseCurrency: "USD",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExpenseSvc = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	now := time.Now()
	amount := aggregation.ParseAmountInput(req.Amount)
	currency := req.CurrencyCode
	if currency == "" {
		currency = s.baseCurrency
	}

	expense := domain.Expense{
		ID:              uuid.NewString(),
		AmountOriginal:  amount,
		CurrencyCode:    currency,
		AmountConverted: convertToBase(amount, req.FXRateToBase),
		FXRateToBase:    req.FXRateToBase,
		CategoryID:      req.CategoryID,
		AccountID:       req.AccountID,
		Note:            req.Note,
		Date:            req.Date,
		AttachmentURIs:  req.AttachmentURIs,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.validate(ctx, expense); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ID))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

// ListExpenses returns expenses newest first. A non-positive limit means no
// limit.
func (s *expenseService) ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return paginate(sortExpensesByRecency(expenses), limit, offset), nil
}

func (s *expenseService) ListExpensesByMonth(ctx context.Context, monthKey string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("month", monthKey))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return sortExpensesByRecency(aggregation.FilterByMonth(expenses, monthKey)), nil
}

func (s *expenseService) ListExpensesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByDateRange(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses by date range")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return sortExpensesByRecency(expenses), nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		expense.AmountOriginal = aggregation.ParseAmountInput(*req.Amount)
	}
	if req.CurrencyCode != nil {
		expense.CurrencyCode = *req.CurrencyCode
	}
	if req.FXRateToBase != nil {
		expense.FXRateToBase = req.FXRateToBase
	}
	if req.CategoryID != nil {
		expense.CategoryID = *req.CategoryID
	}
	if req.AccountID != nil {
		expense.AccountID = *req.AccountID
	}
	if req.Note != nil {
		expense.Note = *req.Note
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.AttachmentURIs != nil {
		expense.AttachmentURIs = *req.AttachmentURIs
	}
	expense.AmountConverted = convertToBase(expense.AmountOriginal, expense.FXRateToBase)
	expense.UpdatedAt = time.Now()

	if err := s.validate(ctx, *expense); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if _, err := s.expenseRepo.FindExpenseByID(ctx, expenseID); err != nil {
		return err
	}
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// DuplicateExpense copies an existing expense into a new record dated now,
// reusing everything but the identifiers and timestamps.
func (s *expenseService) DuplicateExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	source, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	duplicate := *source
	duplicate.ID = uuid.NewString()
	duplicate.Date = now
	duplicate.CreatedAt = now
	duplicate.UpdatedAt = now

	if err := s.expenseRepo.SaveExpense(ctx, duplicate); err != nil {
		s.LogError(ctx, err, "Failed to duplicate expense", slog.String("source_id", expenseID))
		return nil, fmt.Errorf("failed to duplicate expense: %w", err)
	}

	s.LogInfo(ctx, "Expense duplicated", slog.String("source_id", expenseID), slog.String("expense_id", duplicate.ID))
	return &duplicate, nil
}

// validate runs the field checks and verifies the referenced category exists
// with the daily subtype.
func (s *expenseService) validate(ctx context.Context, expense domain.Expense) error {
	if problems := aggregation.ValidateExpense(expense); len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, expense.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, expense.CategoryID)
		}
		return fmt.Errorf("failed to look up category: %w", err)
	}
	if category.Subtype != domain.SubtypeDaily {
		return fmt.Errorf("%w: category %q is not a daily expense category", apperrors.ErrValidation, category.Name)
	}
	return nil
}

// sortExpensesByRecency orders expenses newest first through the shared
// transaction reducer.
func sortExpensesByRecency(expenses []domain.Expense) []domain.Expense {
	byID := make(map[string]domain.Expense, len(expenses))
	for _, e := range expenses {
		byID[e.ID] = e
	}
	sorted := aggregation.SortByRecency(domain.ExpensesAsTransactions(expenses))
	out := make([]domain.Expense, len(sorted))
	for i, txn := range sorted {
		out[i] = byID[txn.ID]
	}
	return out
}
