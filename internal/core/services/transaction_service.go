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

// transactionService implements the TransactionSvc interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CategoryRepository
	baseCurrency    string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionBaseCurrency overrides the default base currency.
func WithTransactionBaseCurrency(code string) TransactionServiceOption {
	return func(s *transactionService) {
		if code != "" {
			s.baseCurrency = code
		}
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepository, categoryRepo portsrepo.CategoryRepository, options ...TransactionServiceOption) portssvc.TransactionSvc {
	svc := &transactionService{
		transactionRepo: repo,
		categoryRepo:    categoryRepo,
		baseCurrency:    "USD",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

// CreateTransaction normalizes the typed amount, converts it to the base
// currency and persists the entry after validation.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := time.Now()
	amount := aggregation.ParseAmountInput(req.Amount)
	currency := req.CurrencyCode
	if currency == "" {
		currency = s.baseCurrency
	}

	txn := domain.Transaction{
		ID:              uuid.NewString(),
		Type:            domain.TransactionType(req.Type),
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

	if err := s.validate(ctx, txn); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.ID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.ID), slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions returns transactions newest first. A non-positive limit
// means no limit.
func (s *transactionService) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return paginate(aggregation.SortByRecency(txns), limit, offset), nil
}

func (s *transactionService) ListTransactionsByMonth(ctx context.Context, monthKey string) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("month", monthKey))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return aggregation.SortByRecency(aggregation.FilterByMonth(txns, monthKey)), nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Amount != nil {
		txn.AmountOriginal = aggregation.ParseAmountInput(*req.Amount)
	}
	if req.CurrencyCode != nil {
		txn.CurrencyCode = *req.CurrencyCode
	}
	if req.FXRateToBase != nil {
		txn.FXRateToBase = req.FXRateToBase
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.AccountID != nil {
		txn.AccountID = *req.AccountID
	}
	if req.Note != nil {
		txn.Note = *req.Note
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.AttachmentURIs != nil {
		txn.AttachmentURIs = *req.AttachmentURIs
	}
	txn.AmountConverted = convertToBase(txn.AmountOriginal, txn.FXRateToBase)
	txn.UpdatedAt = time.Now()

	if err := s.validate(ctx, *txn); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if _, err := s.transactionRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// validate runs the field checks and verifies the referenced category exists
// and matches the entry's type.
func (s *transactionService) validate(ctx context.Context, txn domain.Transaction) error {
	if problems := aggregation.ValidateTransaction(txn); len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, txn.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, txn.CategoryID)
		}
		return fmt.Errorf("failed to look up category: %w", err)
	}
	if category.Type != txn.Type {
		return fmt.Errorf("%w: category %q is a %s category", apperrors.ErrValidation, category.Name, category.Type)
	}
	return nil
}

// convertToBase applies the capture-time FX rate, or passes the amount
// through when none is set.
func convertToBase(amount decimal.Decimal, rate *decimal.Decimal) decimal.Decimal {
	if rate == nil {
		return amount
	}
	return amount.Mul(*rate)
}

// paginate slices a sorted result set. Non-positive limit means everything
// from offset onward.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	if offset > 0 {
		items = items[offset:]
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
