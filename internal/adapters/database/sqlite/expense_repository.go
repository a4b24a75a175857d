package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fintrackr/personal_finance_app/internal/apperrors"
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintrackr/personal_finance_app/internal/core/ports/repositories"
)

type expenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new repository for daily expense data.
func NewExpenseRepository(db *sql.DB) portsrepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

const expenseColumns = `id, amount_original, currency_code, amount_converted, fx_rate_to_base, category_id, account_id, note, date, attachment_uris, created_at, updated_at`

func (r *expenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		expense.ID,
		expense.AmountOriginal.String(),
		expense.CurrencyCode,
		expense.AmountConverted.String(),
		encodeDecimalPtr(expense.FXRateToBase),
		expense.CategoryID,
		nullableString(expense.AccountID),
		expense.Note,
		encodeTime(expense.Date),
		encodeStringSlice(expense.AttachmentURIs),
		encodeTime(expense.CreatedAt),
		encodeTime(expense.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", expense.ID, err)
	}
	return nil
}

func (r *expenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = ?;`
	expense, err := scanExpense(r.db.QueryRowContext(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (r *expenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses;`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()
	return collectExpenses(rows)
}

func (r *expenseRepository) ListExpensesByDateRange(ctx context.Context, start, end time.Time) ([]domain.Expense, error) {
	// Stored dates are fixed-width UTC strings, so lexicographic
	// comparison matches time order at every precision.
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE date >= ? AND date <= ?;`
	rows, err := r.db.QueryContext(ctx, query, encodeTime(start), encodeTime(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by date range: %w", err)
	}
	defer rows.Close()
	return collectExpenses(rows)
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET amount_original = ?, currency_code = ?, amount_converted = ?,
		    fx_rate_to_base = ?, category_id = ?, account_id = ?, note = ?, date = ?,
		    attachment_uris = ?, updated_at = ?
		WHERE id = ?;
	`
	res, err := r.db.ExecContext(ctx, query,
		expense.AmountOriginal.String(),
		expense.CurrencyCode,
		expense.AmountConverted.String(),
		encodeDecimalPtr(expense.FXRateToBase),
		expense.CategoryID,
		nullableString(expense.AccountID),
		expense.Note,
		encodeTime(expense.Date),
		encodeStringSlice(expense.AttachmentURIs),
		encodeTime(expense.UpdatedAt),
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("expense %s: %w", expense.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *expenseRepository) CountExpensesByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses WHERE category_id = ?;`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses for category %s: %w", categoryID, err)
	}
	return count, nil
}

func collectExpenses(rows *sql.Rows) ([]domain.Expense, error) {
	var expenses []domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	return expenses, rows.Err()
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var (
		expense     domain.Expense
		amountOrig  string
		amountConv  string
		fxRate      *string
		accountID   *string
		date        string
		attachments string
		createdAt   string
		updatedAt   string
	)
	err := row.Scan(
		&expense.ID,
		&amountOrig,
		&expense.CurrencyCode,
		&amountConv,
		&fxRate,
		&expense.CategoryID,
		&accountID,
		&expense.Note,
		&date,
		&attachments,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if expense.AmountOriginal, err = decodeDecimal(amountOrig); err != nil {
		return nil, err
	}
	if expense.AmountConverted, err = decodeDecimal(amountConv); err != nil {
		return nil, err
	}
	if expense.FXRateToBase, err = decodeDecimalPtr(fxRate); err != nil {
		return nil, err
	}
	expense.AccountID = stringOrEmpty(accountID)
	if expense.Date, err = decodeTime(date); err != nil {
		return nil, err
	}
	if expense.AttachmentURIs, err = decodeStringSlice(attachments); err != nil {
		return nil, err
	}
	if expense.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if expense.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &expense, nil
}
