package services

import (
	"context"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	"github.com/gestaoerp/ledger_backend/internal/dto"
)

// AccountSvc defines operations for managing the chart of accounts.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}
