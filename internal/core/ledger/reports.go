package ledger

import (
	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitAndLoss derives a profit and loss report from trial-balance rows.
// Revenue and expense figures are the rows' closing balances, already carried
// on each account's normal side, so both lists read as positive numbers for
// accounts behaving conventionally.
func ProfitAndLoss(tb *domain.TrialBalance) *domain.PAndLReport {
	report := &domain.PAndLReport{
		Revenue:  []domain.AccountAmount{},
		Expenses: []domain.AccountAmount{},
	}

	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero

	for _, row := range tb.Rows {
		amount := domain.AccountAmount{
			AccountID: row.AccountID,
			Code:      row.AccountCode,
			Name:      row.AccountName,
			NetAmount: row.ClosingBalance,
		}
		switch row.AccountType {
		case domain.Revenue:
			report.Revenue = append(report.Revenue, amount)
			totalRevenue = totalRevenue.Add(row.ClosingBalance)
		case domain.Expense:
			report.Expenses = append(report.Expenses, amount)
			totalExpenses = totalExpenses.Add(row.ClosingBalance)
		}
	}

	report.NetProfit = totalRevenue.Sub(totalExpenses)
	return report
}

// BalanceSheet derives a balance sheet report from trial-balance rows.
func BalanceSheet(tb *domain.TrialBalance) *domain.BalanceSheetReport {
	report := &domain.BalanceSheetReport{
		Assets:      []domain.AccountAmount{},
		Liabilities: []domain.AccountAmount{},
		Equity:      []domain.AccountAmount{},
	}

	for _, row := range tb.Rows {
		amount := domain.AccountAmount{
			AccountID: row.AccountID,
			Code:      row.AccountCode,
			Name:      row.AccountName,
			NetAmount: row.ClosingBalance,
		}
		switch row.AccountType {
		case domain.Asset:
			report.Assets = append(report.Assets, amount)
			report.TotalAssets = report.TotalAssets.Add(row.ClosingBalance)
		case domain.Liability:
			report.Liabilities = append(report.Liabilities, amount)
			report.TotalLiabilities = report.TotalLiabilities.Add(row.ClosingBalance)
		case domain.Equity:
			report.Equity = append(report.Equity, amount)
			report.TotalEquity = report.TotalEquity.Add(row.ClosingBalance)
		}
	}

	return report
}
