package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single account's movement within a trial balance.
//
// ClosingBalance follows the normal-side convention: the figure is positive
// when the balance sits on the account's normal side (a credit-normal account
// with more credits than debits shows a positive closing balance, carried on
// NormalSide=CREDIT).
type TrialBalanceRow struct {
	AccountID      string          `json:"accountID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	AccountType    AccountType     `json:"accountType"`
	NormalSide     BalanceSide     `json:"normalSide"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	DebitMovement  decimal.Decimal `json:"debitMovement"`
	CreditMovement decimal.Decimal `json:"creditMovement"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// SkippedLine records a journal line that referenced an account missing from
// the chart of accounts. Skipped lines never contribute to any movement; they
// are surfaced so upstream data-integrity problems stay visible.
type SkippedLine struct {
	JournalID string `json:"journalID"`
	LineID    string `json:"lineID"`
	AccountID string `json:"accountID"`
}

// TrialBalance is the full result of a trial-balance computation over a period.
// Difference is TotalDebits minus TotalCredits, reported verbatim: a non-zero
// value is the signal the report exists to surface, never an error.
type TrialBalance struct {
	PeriodStart  time.Time         `json:"periodStart"`
	PeriodEnd    time.Time         `json:"periodEnd"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	Difference   decimal.Decimal   `json:"difference"`
	SkippedLines []SkippedLine     `json:"skippedLines,omitempty"`
}

// IsBalanced reports whether total debits equal total credits.
func (tb *TrialBalance) IsBalanced() bool {
	return tb.Difference.IsZero()
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss report
type PAndLReport struct {
	Revenue   []AccountAmount `json:"revenue"`   // Net revenue accounts
	Expenses  []AccountAmount `json:"expenses"`  // Net expense accounts
	NetProfit decimal.Decimal `json:"netProfit"` // Total revenue minus total expenses
}

// BalanceSheetReport represents a balance sheet report
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}
