package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	"github.com/gestaoerp/ledger_backend/internal/core/ledger"
	portssvc "github.com/gestaoerp/ledger_backend/internal/core/ports/services"
	"github.com/gestaoerp/ledger_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	service         portssvc.ReportingService

	from time.Time
	to   time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockJournalRepo)

	suite.from = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) fixtureAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: "acc-cash", Code: "1.1", Name: "Caixa", AccountType: domain.Asset, NormalSide: domain.DebitSide, Postable: true, IsActive: true},
		{AccountID: "acc-sales", Code: "4.1", Name: "Vendas", AccountType: domain.Revenue, NormalSide: domain.CreditSide, Postable: true, IsActive: true},
		{AccountID: "acc-salaries", Code: "6.2", Name: "Salarios", AccountType: domain.Expense, NormalSide: domain.DebitSide, Postable: true, IsActive: true},
	}
}

func (suite *ReportingServiceTestSuite) fixtureJournals() []domain.Journal {
	return []domain.Journal{
		{
			JournalID:   "jrn-1",
			JournalDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Status:      domain.Posted,
			Lines: []domain.JournalLine{
				{LineID: "l1", JournalID: "jrn-1", AccountID: "acc-cash", Side: domain.Debit, Amount: decimal.NewFromInt(500)},
				{LineID: "l2", JournalID: "jrn-1", AccountID: "acc-sales", Side: domain.Credit, Amount: decimal.NewFromInt(500)},
			},
		},
		{
			JournalID:   "jrn-2",
			JournalDate: time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
			Status:      domain.Posted,
			Lines: []domain.JournalLine{
				{LineID: "l3", JournalID: "jrn-2", AccountID: "acc-salaries", Side: domain.Debit, Amount: decimal.NewFromInt(200)},
				{LineID: "l4", JournalID: "jrn-2", AccountID: "acc-cash", Side: domain.Credit, Amount: decimal.NewFromInt(200)},
			},
		},
	}
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, 0, 0).Return(suite.fixtureAccounts(), nil).Once()
	suite.mockJournalRepo.On("FindPostedJournalsByPeriod", ctx, suite.from, suite.to).Return(suite.fixtureJournals(), nil).Once()

	tb, err := suite.service.TrialBalance(ctx, suite.from, suite.to, false)

	suite.Require().NoError(err)
	suite.Require().Len(tb.Rows, 3)
	suite.True(tb.TotalDebits.Equal(decimal.NewFromInt(700)))
	suite.True(tb.TotalCredits.Equal(decimal.NewFromInt(700)))
	suite.True(tb.IsBalanced())

	// Sorted by account code: 1.1, 4.1, 6.2
	suite.Equal("acc-cash", tb.Rows[0].AccountID)
	suite.True(tb.Rows[0].ClosingBalance.Equal(decimal.NewFromInt(300)))

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_InvalidRange() {
	ctx := context.Background()

	_, err := suite.service.TrialBalance(ctx, suite.to, suite.from, false)

	suite.ErrorIs(err, ledger.ErrInvalidRange)
	// An inverted range is rejected before anything is loaded.
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccounts")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindPostedJournalsByPeriod")
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_InvalidRange() {
	ctx := context.Background()

	_, err := suite.service.ProfitAndLoss(ctx, suite.to, suite.from)

	suite.ErrorIs(err, ledger.ErrInvalidRange)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccounts")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindPostedJournalsByPeriod")
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, 0, 0).Return(suite.fixtureAccounts(), nil).Once()
	suite.mockJournalRepo.On("FindPostedJournalsByPeriod", ctx, suite.from, suite.to).Return(suite.fixtureJournals(), nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Revenue, 1)
	suite.Require().Len(report.Expenses, 1)
	suite.True(report.Revenue[0].NetAmount.Equal(decimal.NewFromInt(500)))
	suite.True(report.Expenses[0].NetAmount.Equal(decimal.NewFromInt(200)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(300)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_Success() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx, 0, 0).Return(suite.fixtureAccounts(), nil).Once()
	suite.mockJournalRepo.On("FindPostedJournalsByPeriod", ctx, time.Time{}, suite.to).Return(suite.fixtureJournals(), nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Assets, 1)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(300)))
	suite.Empty(report.Liabilities)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
