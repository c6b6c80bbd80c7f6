package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceSide is the side of the ledger an account's balance conventionally grows on.
type BalanceSide string

const (
	DebitSide  BalanceSide = "DEBIT"
	CreditSide BalanceSide = "CREDIT"
)

// Account represents a chart-of-accounts entry within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (e.g., UUID)
	Code        string      `json:"code"`        // Hierarchical display/ordering code (e.g., "1.1.2")
	Name        string      `json:"name"`        // User-defined name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	NormalSide  BalanceSide `json:"normalSide"`  // Side the balance grows on; stored explicitly, not derived
	Postable    bool        `json:"postable"`    // False for header/aggregation accounts
	Description string      `json:"description"` // Nullable user description
	IsActive    bool        `json:"isActive"`    // Soft delete or status flag
	AuditFields             // Embed CreatedAt, CreatedBy, etc.
}

// DefaultNormalSide returns the conventional normal balance side for an
// account type. The Account stores its side explicitly so callers may
// override; this is only the default applied when none is supplied.
func DefaultNormalSide(t AccountType) BalanceSide {
	switch t {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsValid reports whether s is DEBIT or CREDIT.
func (s BalanceSide) IsValid() bool {
	return s == DebitSide || s == CreditSide
}
