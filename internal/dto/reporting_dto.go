package dto

import (
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID      string          `json:"accountID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	AccountType    string          `json:"accountType"`
	NormalSide     string          `json:"normalSide"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// SkippedLineResponse surfaces journal lines that referenced unknown accounts.
type SkippedLineResponse struct {
	JournalID string `json:"journalID"`
	LineID    string `json:"lineID"`
	AccountID string `json:"accountID"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	From   string                    `json:"from"`
	To     string                    `json:"to"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit      decimal.Decimal `json:"debit"`
		Credit     decimal.Decimal `json:"credit"`
		Difference decimal.Decimal `json:"difference"`
	} `json:"totals"`
	Balanced     bool                  `json:"balanced"`
	SkippedLines []SkippedLineResponse `json:"skippedLines,omitempty"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// ProfitAndLossResponse represents the profit and loss report response
type ProfitAndLossResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		NetProfit decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
}

// ToTrialBalanceResponse converts a domain trial balance to a DTO response
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	response := TrialBalanceResponse{
		From:     tb.PeriodStart.Format("2006-01-02"),
		To:       tb.PeriodEnd.Format("2006-01-02"),
		Rows:     make([]TrialBalanceRowResponse, len(tb.Rows)),
		Balanced: tb.IsBalanced(),
	}

	for i, row := range tb.Rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:      row.AccountID,
			AccountCode:    row.AccountCode,
			AccountName:    row.AccountName,
			AccountType:    string(row.AccountType),
			NormalSide:     string(row.NormalSide),
			OpeningBalance: row.OpeningBalance,
			Debit:          row.DebitMovement,
			Credit:         row.CreditMovement,
			ClosingBalance: row.ClosingBalance,
		}
	}

	response.Totals.Debit = tb.TotalDebits
	response.Totals.Credit = tb.TotalCredits
	response.Totals.Difference = tb.Difference

	for _, s := range tb.SkippedLines {
		response.SkippedLines = append(response.SkippedLines, SkippedLineResponse{
			JournalID: s.JournalID,
			LineID:    s.LineID,
			AccountID: s.AccountID,
		})
	}

	return response
}

// ToProfitAndLossResponse converts a domain P&L report to a DTO response
func ToProfitAndLossResponse(report *domain.PAndLReport, from, to time.Time) ProfitAndLossResponse {
	response := ProfitAndLossResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Revenue:  toAccountAmountResponses(report.Revenue),
		Expenses: toAccountAmountResponses(report.Expenses),
	}
	response.Summary.NetProfit = report.NetProfit
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO response
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOf time.Time) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        asOf.Format("2006-01-02"),
		Assets:      toAccountAmountResponses(report.Assets),
		Liabilities: toAccountAmountResponses(report.Liabilities),
		Equity:      toAccountAmountResponses(report.Equity),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	return response
}

func toAccountAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	responses := make([]AccountAmountResponse, len(amounts))
	for i, a := range amounts {
		responses[i] = AccountAmountResponse{
			AccountID: a.AccountID,
			Code:      a.Code,
			Name:      a.Name,
			Amount:    a.NetAmount,
		}
	}
	return responses
}
