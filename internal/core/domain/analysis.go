package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trend labels for a monthly spending series.
type Trend string

const (
	TrendInsufficientData   Trend = "insufficient_data"
	TrendStable             Trend = "stable"
	TrendIncreasing         Trend = "increasing"
	TrendSlightlyIncreasing Trend = "slightly_increasing"
	TrendDecreasing         Trend = "decreasing"
	TrendSlightlyDecreasing Trend = "slightly_decreasing"
)

// TrendDirection is the coarse up/down/stable companion to Trend.
type TrendDirection string

const (
	DirectionUp     TrendDirection = "up"
	DirectionDown   TrendDirection = "down"
	DirectionStable TrendDirection = "stable"
)

// TrendAnalysis classifies how spending moved between the first and second
// half of a monthly series.
type TrendAnalysis struct {
	Trend         Trend           `json:"trend"`
	Direction     TrendDirection  `json:"direction"`
	ChangePercent decimal.Decimal `json:"changePercent"` // rounded to 1 decimal
	Message       string          `json:"message"`
	FirstHalfAvg  decimal.Decimal `json:"firstHalfAvg"`
	SecondHalfAvg decimal.Decimal `json:"secondHalfAvg"`
}

// FactorStatus grades a single health factor or the overall score.
type FactorStatus string

const (
	StatusExcellent        FactorStatus = "excellent"
	StatusGood             FactorStatus = "good"
	StatusFair             FactorStatus = "fair"
	StatusNeedsImprovement FactorStatus = "needsImprovement"
	StatusPoor             FactorStatus = "poor"
	StatusCritical         FactorStatus = "critical"
)

// HealthFactor is one scored component of the financial health score.
// Factors that score zero still appear so the breakdown stays transparent.
type HealthFactor struct {
	Name    string       `json:"name"`
	Score   int          `json:"score"`
	Status  FactorStatus `json:"status"`
	Message string       `json:"message"`
}

// HealthReport is the 0-100 weighted financial health score.
type HealthReport struct {
	Score    int            `json:"score"`
	Status   FactorStatus   `json:"status"`
	Factors  []HealthFactor `json:"factors"`
	MaxScore int            `json:"maxScore"`
}

// CategoryShare is a top category expressed as a share of total expenses.
type CategoryShare struct {
	Category   string          `json:"category"`
	Percentage decimal.Decimal `json:"percentage"` // rounded to 1 decimal
	Message    string          `json:"message"`
}

// CategoryAnalysis reports the top spending categories with warnings for
// dominant ones.
type CategoryAnalysis struct {
	TopCategories   []CategoryTotal `json:"topCategories"` // at most 5, largest first
	Warnings        []CategoryShare `json:"warnings"`
	Recommendations []CategoryShare `json:"recommendations"`
	TotalCategories int             `json:"totalCategories"`
}

// AdviceType tags how urgent an advice item is.
type AdviceType string

const (
	AdviceCritical AdviceType = "critical"
	AdviceWarning  AdviceType = "warning"
	AdvicePositive AdviceType = "positive"
	AdviceInfo     AdviceType = "info"
)

// Advice is one generated advice item. Lower priority numbers surface first;
// items are never deduplicated across rules.
type Advice struct {
	Type     AdviceType `json:"type"`
	Priority int        `json:"priority"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	Action   string     `json:"action"`
}

// AnalysisSummary carries the headline numbers of a comprehensive analysis.
type AnalysisSummary struct {
	TotalAssets         decimal.Decimal `json:"totalAssets"`
	MonthlyIncome       decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses     decimal.Decimal `json:"monthlyExpenses"`
	MonthlyBalance      decimal.Decimal `json:"monthlyBalance"`
	SavingsRate         decimal.Decimal `json:"savingsRate"`         // percent, rounded to 1 decimal
	EmergencyFundMonths decimal.Decimal `json:"emergencyFundMonths"` // rounded to 1 decimal
	YearToDateAverage   decimal.Decimal `json:"yearToDateAverage"`
}

// AnalysisReport is the full output of a comprehensive financial analysis.
type AnalysisReport struct {
	Summary    AnalysisSummary  `json:"summary"`
	Health     HealthReport     `json:"health"`
	Trends     TrendAnalysis    `json:"trends"`
	Categories CategoryAnalysis `json:"categories"`
	Advice     []Advice         `json:"advice"`
	Timestamp  time.Time        `json:"timestamp"`
}

// Insight is the single most important takeaway from an analysis.
type Insight struct {
	Title        string       `json:"title"`
	Message      string       `json:"message"`
	Type         AdviceType   `json:"type"`
	HealthScore  int          `json:"healthScore"`
	HealthStatus FactorStatus `json:"healthStatus"`
}
