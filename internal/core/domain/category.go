package domain

// CategorySubtype marks what kind of records a category may be attached to.
type CategorySubtype string

// SubtypeDaily categories are the only ones daily expense entries may reference.
const SubtypeDaily CategorySubtype = "daily"

// Category classifies transactions and expenses. Names are unique per type,
// case-insensitive. A category cannot be deleted while any transaction or
// expense still references it.
type Category struct {
	ID      string          `json:"id"` // Primary Key (UUID)
	Name    string          `json:"name"`
	Type    TransactionType `json:"type"`    // income or expense
	Subtype CategorySubtype `json:"subtype"` // daily or empty
	Icon    string          `json:"icon"`
	Color   string          `json:"color"`
}

// AssetCategory is the parallel category set scoped to assets only.
type AssetCategory struct {
	ID    string `json:"id"` // Primary Key (UUID)
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
