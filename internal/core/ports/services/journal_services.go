package services

import (
	"context"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	"github.com/gestaoerp/ledger_backend/internal/dto"
)

// JournalSvc defines operations for posting and retrieving journals.
type JournalSvc interface {
	PostJournal(ctx context.Context, req dto.CreateJournalRequest, userID string) (*domain.Journal, error)
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, from, to time.Time, limit int, offset int) ([]domain.Journal, error)
	ReverseJournal(ctx context.Context, journalID string, userID string) (*domain.Journal, error)
}
