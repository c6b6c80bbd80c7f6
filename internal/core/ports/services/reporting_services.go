package services

import (
	"context"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance aggregates period movement per postable account between
	// from and to (inclusive, calendar dates).
	TrialBalance(ctx context.Context, from, to time.Time, includeZeroActivity bool) (*domain.TrialBalance, error)

	// ProfitAndLoss generates a profit and loss report for a specific period
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)
}
