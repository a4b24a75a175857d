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

type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(db *sql.DB) portsrepo.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `INSERT INTO accounts (id, name, type) VALUES (?, ?, ?);`
	_, err := r.db.ExecContext(ctx, query, account.ID, account.Name, string(account.Type))
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", account.ID, err)
	}
	return nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT id, name, type FROM accounts WHERE id = ?;`
	var acc domain.Account
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&acc.ID, &acc.Name, &acc.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return &acc, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT id, name, type FROM accounts ORDER BY name;`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Type); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}
