package repositories

// RepositoryProvider bundles every repository the service container needs.
type RepositoryProvider struct {
	CategoryRepo      CategoryRepository
	AssetCategoryRepo AssetCategoryRepository
	TransactionRepo   TransactionRepository
	ExpenseRepo       ExpenseRepository
	AssetRepo         AssetRepository
	AccountRepo       AccountRepository
}
