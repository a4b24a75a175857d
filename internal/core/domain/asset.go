package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a tracked valuable (savings, investment, property).
// The three snapshot fields record the previous total-assets observation so
// the dashboard can report a period-over-period delta; when they are nil the
// delta is simply not reported.
type Asset struct {
	ID                   string           `json:"id"` // Primary Key (UUID)
	Name                 string           `json:"name"`
	Amount               decimal.Decimal  `json:"amount"`
	CategoryID           string           `json:"categoryId"` // FK -> AssetCategory.ID
	Note                 string           `json:"note"`
	LastUpdatedDate      *time.Time       `json:"lastUpdatedDate"`
	CurrentUpdatedDate   *time.Time       `json:"currentUpdatedDate"`
	LastTotalAssetsValue *decimal.Decimal `json:"lastTotalAssetsValue"`
	AuditFields
}
