package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/apperrors"
	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	portssvc "github.com/gestaoerp/ledger_backend/internal/core/ports/services"
	"github.com/gestaoerp/ledger_backend/internal/core/services"
	"github.com/gestaoerp/ledger_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvc
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:        "1.1",
		Name:        "Caixa",
		AccountType: string(domain.Asset),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal(req.Code, createdAccount.Code)
	suite.Equal(req.Name, createdAccount.Name)
	suite.Equal(domain.Asset, createdAccount.AccountType)
	// Asset defaults to debit-normal when no side is supplied.
	suite.Equal(domain.DebitSide, createdAccount.NormalSide)
	suite.True(createdAccount.Postable)
	suite.True(createdAccount.IsActive)
	suite.Equal(creatorUserID, createdAccount.CreatedBy)
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ExplicitNormalSideOverride() {
	ctx := context.Background()
	side := string(domain.DebitSide)
	postable := false
	req := dto.CreateAccountRequest{
		Code:        "2.9",
		Name:        "Conta de contrapartida",
		AccountType: string(domain.Liability),
		NormalSide:  &side,
		Postable:    &postable,
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.DebitSide, createdAccount.NormalSide)
	suite.False(createdAccount.Postable)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidAccountType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "9.1",
		Name:        "Bogus",
		AccountType: "SOMETHING_ELSE",
	}

	_, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1.2",
		Name:        "Bancos",
		AccountType: string(domain.Asset),
	}
	expectedErr := fmt.Errorf("database connection failed")

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	_, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorContains(err, "failed to save account")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1.1",
		Name:        "Caixa duplicada",
		AccountType: string(domain.Asset),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(fmt.Errorf("account code 1.1: %w", apperrors.ErrDuplicate)).Once()

	_, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	// The duplicate sentinel survives the service's wrapping so the handler
	// can map it to a conflict response.
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, accountID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	userID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, accountID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, accountID, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
