package domain

// AccountType distinguishes where money moves from.
type AccountType string

const (
	AccountCash AccountType = "cash"
	AccountBank AccountType = "bank"
	AccountCard AccountType = "card"
)

// Account is referenced by transactions; the reference is non-owning and
// optional.
type Account struct {
	ID   string      `json:"id"` // Primary Key (UUID)
	Name string      `json:"name"`
	Type AccountType `json:"type"`
}
