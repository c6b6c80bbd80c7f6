package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	"github.com/gestaoerp/ledger_backend/internal/core/ledger"
	portsrepo "github.com/gestaoerp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/gestaoerp/ledger_backend/internal/core/ports/services"
)

// reportingService implements the ReportingService interface.
// It only loads data and delegates; all aggregation lives in the ledger package.
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
}

// NewReportingService creates a new reporting service
func NewReportingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader) portssvc.ReportingService {
	return &reportingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance report for the inclusive period [from, to]
func (s *reportingService) TrialBalance(ctx context.Context, from, to time.Time, includeZeroActivity bool) (*domain.TrialBalance, error) {
	if err := ledger.ValidatePeriod(from, to); err != nil {
		return nil, err
	}

	accounts, journals, err := s.loadReportInputs(ctx, from, to)
	if err != nil {
		return nil, err
	}

	tb, err := ledger.ComputeTrialBalance(accounts, journals, from, to, ledger.Options{
		IncludeZeroActivity: includeZeroActivity,
	})
	if err != nil {
		return nil, err
	}

	if len(tb.SkippedLines) > 0 {
		s.LogInfo(ctx, "Trial balance skipped lines referencing unknown accounts",
			slog.Int("skipped_count", len(tb.SkippedLines)))
	}
	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
		slog.Int("row_count", len(tb.Rows)),
		slog.Bool("balanced", tb.IsBalanced()))
	return tb, nil
}

// ProfitAndLoss generates a profit and loss report for a specific period
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error) {
	if err := ledger.ValidatePeriod(from, to); err != nil {
		return nil, err
	}

	accounts, journals, err := s.loadReportInputs(ctx, from, to)
	if err != nil {
		return nil, err
	}

	tb, err := ledger.ComputeTrialBalance(accounts, journals, from, to, ledger.Options{})
	if err != nil {
		return nil, err
	}
	report := ledger.ProfitAndLoss(tb)

	s.LogInfo(ctx, "Profit and loss report generated successfully",
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	return report, nil
}

// BalanceSheet generates a balance sheet report as of a specific date.
// The period runs from the earliest recorded journal through asOf.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	// Balance sheet positions accumulate from the beginning of the ledger.
	from := time.Time{}
	accounts, journals, err := s.loadReportInputs(ctx, from, asOf)
	if err != nil {
		return nil, err
	}

	tb, err := ledger.ComputeTrialBalance(accounts, journals, from, asOf, ledger.Options{})
	if err != nil {
		return nil, err
	}
	report := ledger.BalanceSheet(tb)

	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	return report, nil
}

func (s *reportingService) loadReportInputs(ctx context.Context, from, to time.Time) ([]domain.Account, []domain.Journal, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts for report")
		return nil, nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	journals, err := s.journalRepo.FindPostedJournalsByPeriod(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journals for report",
			slog.String("from", from.Format(time.DateOnly)),
			slog.String("to", to.Format(time.DateOnly)))
		return nil, nil, fmt.Errorf("failed to load journals: %w", err)
	}

	return accounts, journals, nil
}
