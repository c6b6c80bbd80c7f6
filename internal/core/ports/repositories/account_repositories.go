package repositories

import (
	"context"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
)

// AccountReader defines read operations over the chart of accounts.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations over the chart of accounts.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountRepository combines read and write access to accounts.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
