package services

import (
	"context"
	"time"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	"github.com/fintrackr/personal_finance_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its unique identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions sorted newest first.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)

	// ListTransactionsByMonth retrieves the transactions dated within the given month key.
	ListTransactionsByMonth(ctx context.Context, monthKey string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction updates an existing transaction's details.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvc combines all transaction-related service interfaces
type TransactionSvc interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// ExpenseReaderSvc defines read operations for expense records
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense by its unique identifier.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses sorted newest first.
	ListExpenses(ctx context.Context, limit int, offset int) ([]domain.Expense, error)

	// ListExpensesByMonth retrieves the expenses dated within the given month key.
	ListExpensesByMonth(ctx context.Context, monthKey string) ([]domain.Expense, error)

	// ListExpensesByDateRange retrieves the expenses dated between start and
	// end, bounds inclusive.
	ListExpensesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense records
type ExpenseWriterSvc interface {
	// CreateExpense persists a new expense.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense updates an existing expense's details.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error

	// DuplicateExpense copies an existing expense into a new record dated now.
	DuplicateExpense(ctx context.Context, expenseID string) (*domain.Expense, error)
}

// ExpenseSvc combines all expense-related service interfaces
type ExpenseSvc interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
