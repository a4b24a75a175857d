package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
	portsrepo "github.com/fintrackr/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/utils/aggregation"
)

const (
	topAssetCategoryCount  = 3
	topReportCategoryCount = 5
	recentMonthCount       = 3
)

// reportingService implements the ReportingSvc interface. Reports are
// derived on demand from the raw collections and never persisted.
type reportingService struct {
	BaseService
	transactionRepo   portsrepo.TransactionRepository
	expenseRepo       portsrepo.ExpenseRepository
	assetRepo         portsrepo.AssetRepository
	categoryRepo      portsrepo.CategoryRepository
	assetCategoryRepo portsrepo.AssetCategoryRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repos portsrepo.RepositoryProvider) portssvc.ReportingSvc {
	return &reportingService{
		transactionRepo:   repos.TransactionRepo,
		expenseRepo:       repos.ExpenseRepo,
		assetRepo:         repos.AssetRepo,
		categoryRepo:      repos.CategoryRepo,
		assetCategoryRepo: repos.AssetCategoryRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// Dashboard assembles the home view-model: total assets with optional delta,
// top asset categories, the current month's summary, the year-to-date
// average monthly expense and the most recent months' expense totals.
func (s *reportingService) Dashboard(ctx context.Context) (*domain.DashboardSnapshot, error) {
	now := time.Now()

	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets for dashboard")
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	assetCategories, err := s.assetCategoryRepo.ListAssetCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list asset categories for dashboard")
		return nil, fmt.Errorf("failed to list asset categories: %w", err)
	}
	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for dashboard")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totalAssets := aggregation.TotalAssets(assets)
	currentMonth := aggregation.Summarize(aggregation.FilterByMonth(transactions, aggregation.MonthKey(now)))

	ytdAverage, recentMonths, err := s.expenseHistory(ctx, now)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSnapshot{
		TotalAssets:        totalAssets,
		TotalAssetsDelta:   assetsDelta(assets, totalAssets),
		TopAssetCategories: aggregation.TopAssetCategories(assets, assetCategories, topAssetCategoryCount),
		CurrentMonth:       currentMonth,
		YearToDateAverage:  ytdAverage,
		RecentMonths:       recentMonths,
	}, nil
}

// MonthlyReport builds the balance-sheet view for one month: the summary,
// the month's transactions newest first and its top expense categories.
func (s *reportingService) MonthlyReport(ctx context.Context, monthKey string) (*domain.MonthlyReport, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for monthly report")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories for monthly report")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	monthTxns := aggregation.FilterByMonth(transactions, monthKey)
	expenseTxns := make([]domain.Transaction, 0, len(monthTxns))
	for _, txn := range monthTxns {
		if txn.Type == domain.TypeExpense {
			expenseTxns = append(expenseTxns, txn)
		}
	}

	return &domain.MonthlyReport{
		MonthKey:      monthKey,
		Summary:       aggregation.Summarize(monthTxns),
		Transactions:  aggregation.SortByRecency(monthTxns),
		TopCategories: aggregation.TopExpenseCategories(expenseTxns, categories, topReportCategoryCount),
	}, nil
}

// expenseHistory derives the year-to-date average monthly expense and the
// most recent months' totals from the daily expense collection.
func (s *reportingService) expenseHistory(ctx context.Context, now time.Time) (decimal.Decimal, []domain.MonthTotal, error) {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	expenses, err := s.expenseRepo.ListExpensesByDateRange(ctx, yearStart, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for dashboard")
		return decimal.Zero, nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	monthly := aggregation.MonthlyTotals(domain.ExpensesAsTransactions(expenses))

	totals := make([]decimal.Decimal, len(monthly))
	for i, m := range monthly {
		totals[i] = m.Total
	}
	average := aggregation.Mean(totals)

	// Newest first, at most the last few months.
	recent := make([]domain.MonthTotal, 0, recentMonthCount)
	for i := len(monthly) - 1; i >= 0 && len(recent) < recentMonthCount; i-- {
		recent = append(recent, monthly[i])
	}
	return average, recent, nil
}

// assetsDelta compares the current total against the newest recorded
// snapshot, nil when no asset carries one.
func assetsDelta(assets []domain.Asset, totalAssets decimal.Decimal) *decimal.Decimal {
	var newest *domain.Asset
	for i := range assets {
		a := &assets[i]
		if a.CurrentUpdatedDate == nil || a.LastTotalAssetsValue == nil {
			continue
		}
		if newest == nil || a.CurrentUpdatedDate.After(*newest.CurrentUpdatedDate) {
			newest = a
		}
	}
	if newest == nil {
		return nil
	}
	delta := totalAssets.Sub(*newest.LastTotalAssetsValue)
	return &delta
}
