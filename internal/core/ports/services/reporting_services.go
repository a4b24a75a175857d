package services

import (
	"context"

	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

// ReportingSvc defines the aggregate reporting operations.
type ReportingSvc interface {
	// Dashboard assembles the dashboard snapshot: total assets, top asset
	// categories, the current month's summary, the year-to-date average and
	// the most recent monthly summaries.
	Dashboard(ctx context.Context) (*domain.DashboardSnapshot, error)

	// MonthlyReport builds the full report for the given month key.
	MonthlyReport(ctx context.Context, monthKey string) (*domain.MonthlyReport, error)
}

// AnalysisSvc defines the financial analysis operations.
type AnalysisSvc interface {
	// Comprehensive runs the full analysis pipeline: spending trend, category
	// breakdown, health score and prioritized advice.
	Comprehensive(ctx context.Context) (*domain.AnalysisReport, error)

	// TopInsight returns the single highest-priority takeaway.
	TopInsight(ctx context.Context) (*domain.Insight, error)
}
