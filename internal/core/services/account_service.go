package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/apperrors"
	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	portsrepo "github.com/gestaoerp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/gestaoerp/ledger_backend/internal/core/ports/services"
	"github.com/gestaoerp/ledger_backend/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvc interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvc {
	return &accountService{
		accountRepo: repo,
	}
}

// Ensure accountService implements the AccountSvc interface
var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	accountType := domain.AccountType(req.AccountType)
	if !accountType.IsValid() {
		err := fmt.Errorf("unknown account type %q: %w", req.AccountType, apperrors.ErrValidation)
		s.LogError(ctx, err, "Invalid account type", slog.String("account_type", req.AccountType))
		return nil, err
	}

	normalSide := domain.DefaultNormalSide(accountType)
	if req.NormalSide != nil {
		normalSide = domain.BalanceSide(*req.NormalSide)
		if !normalSide.IsValid() {
			err := fmt.Errorf("unknown normal side %q: %w", *req.NormalSide, apperrors.ErrValidation)
			s.LogError(ctx, err, "Invalid normal side", slog.String("normal_side", *req.NormalSide))
			return nil, err
		}
	}

	postable := true
	if req.Postable != nil {
		postable = *req.Postable
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		AccountType: accountType,
		NormalSide:  normalSide,
		Postable:    postable,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
