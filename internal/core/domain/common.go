package domain

import "time"

// AuditFields holds standard audit information for stored records.
// CreatedAt additionally breaks ties when ordering records that share a date.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
