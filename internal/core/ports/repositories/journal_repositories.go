package repositories

import (
	"context"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
)

// JournalReader defines read operations over posted journals.
type JournalReader interface {
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, from, to time.Time, limit int, offset int) ([]domain.Journal, error)

	// FindPostedJournalsByPeriod returns the journals feeding period reports:
	// status POSTED and not themselves reversal entries. Lines are populated.
	FindPostedJournalsByPeriod(ctx context.Context, from, to time.Time) ([]domain.Journal, error)
}

// JournalWriter defines write operations over journals.
type JournalWriter interface {
	SaveJournal(ctx context.Context, journal domain.Journal) error

	// SaveReversal persists the reversal journal and flips the original to
	// REVERSED within a single database transaction.
	SaveReversal(ctx context.Context, originalJournalID string, reversal domain.Journal) error
}

// JournalRepository combines read and write access to journals.
type JournalRepository interface {
	JournalReader
	JournalWriter
}
