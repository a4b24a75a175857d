package dto

import (
	"github.com/fintrackr/personal_finance_app/internal/core/domain"
)

// MonthlyReportResponse is the balance-sheet view for one month.
type MonthlyReportResponse struct {
	MonthKey      string                 `json:"monthKey"`
	DisplayName   string                 `json:"displayName"`
	Summary       domain.MonthlySummary  `json:"summary"`
	Transactions  []TransactionResponse  `json:"transactions"`
	TopCategories []domain.CategoryTotal `json:"topCategories"`
}

// ToMonthlyReportResponse converts a domain.MonthlyReport, attaching the
// human-readable month label.
func ToMonthlyReportResponse(report *domain.MonthlyReport, displayName string) MonthlyReportResponse {
	return MonthlyReportResponse{
		MonthKey:      report.MonthKey,
		DisplayName:   displayName,
		Summary:       report.Summary,
		Transactions:  ToListTransactionResponse(report.Transactions),
		TopCategories: report.TopCategories,
	}
}

// The dashboard, analysis and insight payloads are already request-scoped
// view-models (domain.DashboardSnapshot, domain.AnalysisReport,
// domain.Insight) and are serialized as-is.
