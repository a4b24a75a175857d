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
	"github.com/fintrackr/personal_finance_app/internal/utils/analysis"
)

// analysisService implements the AnalysisSvc interface. Every report is
// computed from scratch per call; nothing is cached or persisted.
type analysisService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	expenseRepo     portsrepo.ExpenseRepository
	assetRepo       portsrepo.AssetRepository
	categoryRepo    portsrepo.CategoryRepository
	baseCurrency    string
	locale          string
}

// AnalysisServiceOption is a functional option for configuring the analysis service
type AnalysisServiceOption func(*analysisService)

// WithAnalysisCurrency sets the currency code and locale used to render
// money strings inside advice messages.
func WithAnalysisCurrency(code, locale string) AnalysisServiceOption {
	return func(s *analysisService) {
		if code != "" {
			s.baseCurrency = code
		}
		if locale != "" {
			s.locale = locale
		}
	}
}

// NewAnalysisService creates a new analysis service with the provided options
func NewAnalysisService(repos portsrepo.RepositoryProvider, options ...AnalysisServiceOption) portssvc.AnalysisSvc {
	svc := &analysisService{
		transactionRepo: repos.TransactionRepo,
		expenseRepo:     repos.ExpenseRepo,
		assetRepo:       repos.AssetRepo,
		categoryRepo:    repos.CategoryRepo,
		baseCurrency:    "USD",
		locale:          "en-US",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AnalysisSvc = (*analysisService)(nil)

// Comprehensive runs the full analysis pipeline over the current month and
// the calendar year's expense history.
func (s *analysisService) Comprehensive(ctx context.Context) (*domain.AnalysisReport, error) {
	now := time.Now()

	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets for analysis")
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for analysis")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for analysis")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories for analysis")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	totalAssets := aggregation.TotalAssets(assets)

	// Current month headline numbers come from the balance-sheet entries.
	monthKey := aggregation.MonthKey(now)
	summary := aggregation.Summarize(aggregation.FilterByMonth(transactions, monthKey))
	savingsRate := analysis.SavingsRate(summary.Balance, summary.TotalIncome)
	emergencyFundMonths := analysis.EmergencyFundMonths(totalAssets, summary.TotalExpenses)

	// The trend and the year-to-date average come from the daily expense
	// history of the current calendar year, bucketed per month in
	// chronological order.
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	yearEnd := time.Date(now.Year(), time.December, 31, 23, 59, 59, 999*int(time.Millisecond), now.Location())
	yearExpenses, err := s.expenseRepo.ListExpensesByDateRange(ctx, yearStart, yearEnd)
	if err != nil {
		s.LogError(ctx, err, "Failed to list year expenses for analysis")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	monthly := aggregation.MonthlyTotals(domain.ExpensesAsTransactions(yearExpenses))
	monthlyTotals := make([]decimal.Decimal, len(monthly))
	for i, m := range monthly {
		monthlyTotals[i] = m.Total
	}
	yearToDateAverage := aggregation.Mean(monthlyTotals)
	trend := analysis.ClassifyTrend(monthlyTotals)

	// Category breakdown for the current month's daily expenses, shares
	// taken against the month's total expenses.
	monthExpenseTxns := aggregation.FilterByMonth(domain.ExpensesAsTransactions(expenses), monthKey)
	categoryTotals := aggregation.TopExpenseCategories(monthExpenseTxns, categories, -1)
	categoryAnalysis := analysis.AnalyzeCategorySpending(categoryTotals, summary.TotalExpenses)

	health := analysis.HealthScore(analysis.HealthInput{
		TotalAssets:         totalAssets,
		MonthlyIncome:       summary.TotalIncome,
		MonthlyExpenses:     summary.TotalExpenses,
		SavingsRate:         savingsRate,
		EmergencyFundMonths: emergencyFundMonths,
	})

	advice := analysis.GenerateAdvice(analysis.AdviceInput{
		TotalAssets:         totalAssets,
		MonthlyIncome:       summary.TotalIncome,
		MonthlyExpenses:     summary.TotalExpenses,
		MonthlyBalance:      summary.Balance,
		SavingsRate:         savingsRate,
		EmergencyFundMonths: emergencyFundMonths,
		SpendingTrend:       trend,
		CategoryAnalysis:    categoryAnalysis,
		YearToDateAverage:   yearToDateAverage,
		CurrencyCode:        s.baseCurrency,
		Locale:              s.locale,
	})

	return &domain.AnalysisReport{
		Summary: domain.AnalysisSummary{
			TotalAssets:         totalAssets,
			MonthlyIncome:       summary.TotalIncome,
			MonthlyExpenses:     summary.TotalExpenses,
			MonthlyBalance:      summary.Balance,
			SavingsRate:         savingsRate.Round(1),
			EmergencyFundMonths: emergencyFundMonths.Round(1),
			YearToDateAverage:   yearToDateAverage,
		},
		Health:     health,
		Trends:     trend,
		Categories: categoryAnalysis,
		Advice:     advice,
		Timestamp:  now,
	}, nil
}

// TopInsight returns the highest-priority advice item, falling back to a
// health-bucket message when no rule fired.
func (s *analysisService) TopInsight(ctx context.Context) (*domain.Insight, error) {
	report, err := s.Comprehensive(ctx)
	if err != nil {
		return nil, err
	}

	if len(report.Advice) > 0 {
		top := report.Advice[0]
		return &domain.Insight{
			Title:        top.Title,
			Message:      top.Message,
			Type:         top.Type,
			HealthScore:  report.Health.Score,
			HealthStatus: report.Health.Status,
		}, nil
	}

	var message string
	switch {
	case report.Health.Score >= 90:
		message = "Excellent financial health!"
	case report.Health.Score >= 75:
		message = "Good financial health"
	case report.Health.Score >= 60:
		message = "Fair financial health - room for improvement"
	case report.Health.Score >= 40:
		message = "Financial health needs attention"
	default:
		message = "Critical financial situation - immediate action needed"
	}

	return &domain.Insight{
		Title:        "Financial Overview",
		Message:      message,
		Type:         domain.AdviceInfo,
		HealthScore:  report.Health.Score,
		HealthStatus: report.Health.Status,
	}, nil
}
