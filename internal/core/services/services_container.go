package services

import (
	portsrepo "github.com/fintrackr/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Category = NewCategoryService(
		repos.CategoryRepo,
		WithCategoryReferenceCounters(repos.TransactionRepo, repos.ExpenseRepo),
	)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.CategoryRepo,
		WithTransactionBaseCurrency(cfg.BaseCurrency),
	)
	container.Expense = NewExpenseService(
		repos.ExpenseRepo,
		repos.CategoryRepo,
		WithExpenseBaseCurrency(cfg.BaseCurrency),
	)
	container.Asset = NewAssetService(repos.AssetRepo, repos.AssetCategoryRepo)
	container.Reporting = NewReportingService(repos)
	container.Analysis = NewAnalysisService(
		repos,
		WithAnalysisCurrency(cfg.BaseCurrency, cfg.DisplayLocale),
	)

	return container
}
