package sqlite

import (
	"database/sql"

	portsrepo "github.com/fintrackr/personal_finance_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every SQLite-backed repository onto one shared
// database handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:      NewCategoryRepository(db),
		AssetCategoryRepo: NewAssetCategoryRepository(db),
		TransactionRepo:   NewTransactionRepository(db),
		ExpenseRepo:       NewExpenseRepository(db),
		AssetRepo:         NewAssetRepository(db),
		AccountRepo:       NewAccountRepository(db),
	}
}
