// Package services declares the service facades the handlers depend on.
package services

// ServiceContainer holds instances of all the application services and is
// the single dependency handed to route registration.
type ServiceContainer struct {
	Category    CategorySvc
	Account     AccountSvc
	Transaction TransactionSvc
	Expense     ExpenseSvc
	Asset       AssetSvc
	Reporting   ReportingSvc
	Analysis    AnalysisSvc
}
