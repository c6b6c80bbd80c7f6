package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// EntrySide indicates whether a journal line is a Debit or a Credit.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// Journal represents a single, balanced financial event composed of multiple lines.
type Journal struct {
	JournalID         string        `json:"journalID"`   // Primary Key (e.g., UUID)
	JournalDate       time.Time     `json:"journalDate"` // Date the event occurred; calendar date semantics
	Description       string        `json:"description"` // Nullable user description
	Status            JournalStatus `json:"status"`      // Default: Posted
	OriginalJournalID string        `json:"originalJournalID,omitempty"` // Set on reversal journals
	Lines             []JournalLine `json:"lines"`
	AuditFields
}

// JournalLine represents a single line item within a Journal, affecting one account.
type JournalLine struct {
	LineID    string          `json:"lineID"`    // Primary Key (e.g., UUID)
	JournalID string          `json:"journalID"` // FK -> Journal.journalID (Not Null)
	AccountID string          `json:"accountID"` // FK -> Account.accountID (Not Null)
	Side      EntrySide       `json:"side"`      // DEBIT or CREDIT (Not Null)
	Amount    decimal.Decimal `json:"amount"`    // Positive value; precise decimal type
	AuditFields
}

// Validate checks a single line for structural correctness.
func (l JournalLine) Validate() error {
	if l.AccountID == "" {
		return fmt.Errorf("journal line %s has no account reference", l.LineID)
	}
	if l.Side != Debit && l.Side != Credit {
		return fmt.Errorf("journal line %s has unknown side %q", l.LineID, l.Side)
	}
	if l.Amount.IsNegative() {
		return fmt.Errorf("journal line %s amount must not be negative", l.LineID)
	}
	return nil
}

// DebitTotal sums the debit lines of the journal.
func (j Journal) DebitTotal() decimal.Decimal {
	return j.sideTotal(Debit)
}

// CreditTotal sums the credit lines of the journal.
func (j Journal) CreditTotal() decimal.Decimal {
	return j.sideTotal(Credit)
}

func (j Journal) sideTotal(side EntrySide) decimal.Decimal {
	total := decimal.Zero
	for _, l := range j.Lines {
		if l.Side == side {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// IsBalanced reports whether the journal's debit lines equal its credit lines.
func (j Journal) IsBalanced() bool {
	return j.DebitTotal().Equal(j.CreditTotal())
}
