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

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(db *sql.DB) portsrepo.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, type, amount_original, currency_code, amount_converted, fx_rate_to_base, category_id, account_id, note, date, attachment_uris, created_at, updated_at`

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		txn.ID,
		string(txn.Type),
		txn.AmountOriginal.String(),
		txn.CurrencyCode,
		txn.AmountConverted.String(),
		encodeDecimalPtr(txn.FXRateToBase),
		txn.CategoryID,
		nullableString(txn.AccountID),
		txn.Note,
		encodeTime(txn.Date),
		encodeStringSlice(txn.AttachmentURIs),
		encodeTime(txn.CreatedAt),
		encodeTime(txn.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
	}
	return nil
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?;`
	txn, err := scanTransaction(r.db.QueryRowContext(ctx, query, txnID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", txnID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", txnID, err)
	}
	return txn, nil
}

func (r *transactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions;`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET type = ?, amount_original = ?, currency_code = ?, amount_converted = ?,
		    fx_rate_to_base = ?, category_id = ?, account_id = ?, note = ?, date = ?,
		    attachment_uris = ?, updated_at = ?
		WHERE id = ?;
	`
	res, err := r.db.ExecContext(ctx, query,
		string(txn.Type),
		txn.AmountOriginal.String(),
		txn.CurrencyCode,
		txn.AmountConverted.String(),
		encodeDecimalPtr(txn.FXRateToBase),
		txn.CategoryID,
		nullableString(txn.AccountID),
		txn.Note,
		encodeTime(txn.Date),
		encodeStringSlice(txn.AttachmentURIs),
		encodeTime(txn.UpdatedAt),
		txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("transaction %s: %w", txn.ID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, txnID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?;`, txnID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", txnID, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("transaction %s: %w", txnID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *transactionRepository) CountTransactionsByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE category_id = ?;`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions for category %s: %w", categoryID, err)
	}
	return count, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		txn          domain.Transaction
		amountOrig   string
		amountConv   string
		fxRate       *string
		accountID    *string
		date         string
		attachments  string
		createdAt    string
		updatedAt    string
	)
	err := row.Scan(
		&txn.ID,
		&txn.Type,
		&amountOrig,
		&txn.CurrencyCode,
		&amountConv,
		&fxRate,
		&txn.CategoryID,
		&accountID,
		&txn.Note,
		&date,
		&attachments,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if txn.AmountOriginal, err = decodeDecimal(amountOrig); err != nil {
		return nil, err
	}
	if txn.AmountConverted, err = decodeDecimal(amountConv); err != nil {
		return nil, err
	}
	if txn.FXRateToBase, err = decodeDecimalPtr(fxRate); err != nil {
		return nil, err
	}
	txn.AccountID = stringOrEmpty(accountID)
	if txn.Date, err = decodeTime(date); err != nil {
		return nil, err
	}
	if txn.AttachmentURIs, err = decodeStringSlice(attachments); err != nil {
		return nil, err
	}
	if txn.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if txn.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &txn, nil
}
