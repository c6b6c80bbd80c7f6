// Package ledger holds the pure trial-balance computation. It performs no
// I/O: callers load the chart of accounts and journal entries through the
// repository ports and hand them in as plain slices.
package ledger

import (
	"errors"
	"sort"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidRange indicates the requested period start falls after its end.
var ErrInvalidRange = errors.New("period start must not be after period end")

// ValidatePeriod checks the calendar-date ordering rule shared by every
// period report. Callers that load data before computing can reject an
// inverted range without touching storage.
func ValidatePeriod(periodStart, periodEnd time.Time) error {
	if calendarDate(periodStart).After(calendarDate(periodEnd)) {
		return ErrInvalidRange
	}
	return nil
}

// Options tunes a trial-balance computation.
type Options struct {
	// IncludeZeroActivity keeps rows for postable accounts with zero debit
	// movement, zero credit movement, and zero closing balance. Default false.
	IncludeZeroActivity bool

	// OpeningBalances optionally seeds per-account opening balances, keyed by
	// account ID, expressed on each account's normal side. A nil map keeps the
	// historical behavior of opening every account at zero, which is what the
	// existing report consumers expect for any period.
	OpeningBalances map[string]decimal.Decimal
}

// ComputeTrialBalance aggregates journal lines into a per-account trial
// balance for the inclusive period [periodStart, periodEnd].
//
// Dates are compared by calendar date only. Lines referencing accounts absent
// from the accounts slice are skipped and reported in the result's
// SkippedLines. Only postable accounts produce rows; totals are summed over
// the rows actually included, and Difference (TotalDebits - TotalCredits) is
// reported verbatim so an unbalanced ledger surfaces as data, not as an error.
//
// Rows follow the normal-side convention: a closing balance is positive when
// it sits on the account's normal side.
func ComputeTrialBalance(accounts []domain.Account, entries []domain.Journal, periodStart, periodEnd time.Time, opts Options) (*domain.TrialBalance, error) {
	if err := ValidatePeriod(periodStart, periodEnd); err != nil {
		return nil, err
	}
	start := calendarDate(periodStart)
	end := calendarDate(periodEnd)

	known := make(map[string]struct{}, len(accounts))
	for _, acc := range accounts {
		known[acc.AccountID] = struct{}{}
	}

	debitMovement := make(map[string]decimal.Decimal, len(accounts))
	creditMovement := make(map[string]decimal.Decimal, len(accounts))
	var skipped []domain.SkippedLine

	for _, entry := range entries {
		date := calendarDate(entry.JournalDate)
		if date.Before(start) || date.After(end) {
			continue
		}
		for _, line := range entry.Lines {
			if _, ok := known[line.AccountID]; !ok {
				skipped = append(skipped, domain.SkippedLine{
					JournalID: entry.JournalID,
					LineID:    line.LineID,
					AccountID: line.AccountID,
				})
				continue
			}
			if line.Side == domain.Debit {
				debitMovement[line.AccountID] = debitMovement[line.AccountID].Add(line.Amount)
			} else {
				creditMovement[line.AccountID] = creditMovement[line.AccountID].Add(line.Amount)
			}
		}
	}

	rows := make([]domain.TrialBalanceRow, 0, len(accounts))
	for _, acc := range accounts {
		if !acc.Postable {
			continue
		}

		opening := decimal.Zero
		if opts.OpeningBalances != nil {
			opening = opts.OpeningBalances[acc.AccountID]
		}
		debit := debitMovement[acc.AccountID]
		credit := creditMovement[acc.AccountID]

		var closing decimal.Decimal
		if acc.NormalSide == domain.DebitSide {
			closing = opening.Add(debit).Sub(credit)
		} else {
			closing = opening.Add(credit).Sub(debit)
		}

		if !opts.IncludeZeroActivity && debit.IsZero() && credit.IsZero() && closing.IsZero() {
			continue
		}

		rows = append(rows, domain.TrialBalanceRow{
			AccountID:      acc.AccountID,
			AccountCode:    acc.Code,
			AccountName:    acc.Name,
			AccountType:    acc.AccountType,
			NormalSide:     acc.NormalSide,
			OpeningBalance: opening,
			DebitMovement:  debit,
			CreditMovement: credit,
			ClosingBalance: closing,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AccountCode < rows[j].AccountCode
	})

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, row := range rows {
		totalDebits = totalDebits.Add(row.DebitMovement)
		totalCredits = totalCredits.Add(row.CreditMovement)
	}

	return &domain.TrialBalance{
		PeriodStart:  start,
		PeriodEnd:    end,
		Rows:         rows,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Difference:   totalDebits.Sub(totalCredits),
		SkippedLines: skipped,
	}, nil
}

// calendarDate strips the intra-day component so comparisons follow calendar
// date semantics regardless of the time carried on the input.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
