package repositories

import (
	"context"
	"time"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

// TransactionRepository persists formal balance-sheet transactions.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error)
	// ListTransactions returns the full collection; the reporting layer does
	// its own month filtering in memory.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, txnID string) error
	CountTransactionsByCategory(ctx context.Context, categoryID string) (int, error)
}

// ExpenseRepository persists daily expense entries.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	// ListExpensesByDateRange is the store-side equivalent of the in-memory
	// date-range filter, bounds inclusive.
	ListExpensesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
	CountExpensesByCategory(ctx context.Context, categoryID string) (int, error)
}
