package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/apperrors"
	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	portsrepo "github.com/gestaoerp/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/gestaoerp/ledger_backend/internal/core/ports/services"
	"github.com/gestaoerp/ledger_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrJournalUnbalanced  = errors.New("journal lines do not balance: total debits must equal total credits")
	ErrJournalMinEntries  = errors.New("journal must have at least two lines")
	ErrAccountNotPostable = errors.New("account does not accept direct postings")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrAlreadyReversed    = errors.New("journal has already been reversed")
	ErrReversalOfReversal = errors.New("reversal journals cannot themselves be reversed")
)

const journalDateLayout = "2006-01-02"

// journalService implements the JournalSvc interface
type journalService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalRepository
}

// NewJournalService creates a new journal service
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountReader) portssvc.JournalSvc {
	return &journalService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

// Ensure journalService implements the JournalSvc interface
var _ portssvc.JournalSvc = (*journalService)(nil)

// PostJournal validates and persists a new balanced journal.
// The trial balance assumes journals were balanced at posting time; this is
// where that upstream invariant is enforced.
func (s *journalService) PostJournal(ctx context.Context, req dto.CreateJournalRequest, userID string) (*domain.Journal, error) {
	if len(req.Lines) < 2 {
		return nil, ErrJournalMinEntries
	}

	journalDate, err := time.ParseInLocation(journalDateLayout, req.JournalDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid journal date %q: %w", req.JournalDate, apperrors.ErrValidation)
	}

	accountIDs := make([]string, 0, len(req.Lines))
	for _, l := range req.Lines {
		if l.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("line amount must be positive for account %s: %w", l.AccountID, apperrors.ErrValidation)
		}
		accountIDs = append(accountIDs, l.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(accountIDs))
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for journal validation")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for _, l := range req.Lines {
		acc, ok := accounts[l.AccountID]
		if !ok {
			return nil, fmt.Errorf("account %s: %w", l.AccountID, apperrors.ErrNotFound)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("account %s: %w", l.AccountID, ErrAccountInactive)
		}
		if !acc.Postable {
			return nil, fmt.Errorf("account %s: %w", l.AccountID, ErrAccountNotPostable)
		}
		if domain.EntrySide(l.Side) == domain.Debit {
			debitTotal = debitTotal.Add(l.Amount)
		} else {
			creditTotal = creditTotal.Add(l.Amount)
		}
	}

	if !debitTotal.Equal(creditTotal) {
		return nil, fmt.Errorf("%w: debits %s, credits %s", ErrJournalUnbalanced, debitTotal.String(), creditTotal.String())
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	journal := domain.Journal{
		JournalID:   uuid.NewString(),
		JournalDate: journalDate,
		Description: req.Description,
		Status:      domain.Posted,
		Lines:       make([]domain.JournalLine, len(req.Lines)),
		AuditFields: audit,
	}
	for i, l := range req.Lines {
		journal.Lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			JournalID:   journal.JournalID,
			AccountID:   l.AccountID,
			Side:        domain.EntrySide(l.Side),
			Amount:      l.Amount,
			AuditFields: audit,
		}
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		s.LogError(ctx, err, "Failed to save journal", slog.String("journal_id", journal.JournalID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	s.LogInfo(ctx, "Journal posted",
		slog.String("journal_id", journal.JournalID),
		slog.Int("line_count", len(journal.Lines)),
		slog.String("total", debitTotal.String()))
	return &journal, nil
}

func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal", slog.String("journal_id", journalID))
		}
		return nil, err
	}
	return journal, nil
}

func (s *journalService) ListJournals(ctx context.Context, from, to time.Time, limit int, offset int) ([]domain.Journal, error) {
	if from.After(to) {
		return nil, fmt.Errorf("list period start after end: %w", apperrors.ErrValidation)
	}
	journals, err := s.journalRepo.ListJournals(ctx, from, to, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals")
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	return journals, nil
}

// ReverseJournal posts a mirror journal for the original and marks the
// original REVERSED. Both drop out of subsequent period reports.
func (s *journalService) ReverseJournal(ctx context.Context, journalID string, userID string) (*domain.Journal, error) {
	original, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if original.Status == domain.Reversed {
		return nil, fmt.Errorf("journal %s: %w", journalID, ErrAlreadyReversed)
	}
	// A reversal is undone by reversing its original again, never by stacking
	// reversals: a reversal of a reversal would drop out of report loads and
	// take the reinstated activity with it.
	if original.OriginalJournalID != "" {
		return nil, fmt.Errorf("journal %s reverses journal %s: %w", journalID, original.OriginalJournalID, ErrReversalOfReversal)
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	reversal := domain.Journal{
		JournalID:         uuid.NewString(),
		JournalDate:       original.JournalDate,
		Description:       fmt.Sprintf("Reversal of journal %s", original.JournalID),
		Status:            domain.Posted,
		OriginalJournalID: original.JournalID,
		Lines:             make([]domain.JournalLine, len(original.Lines)),
		AuditFields:       audit,
	}
	for i, l := range original.Lines {
		side := domain.Credit
		if l.Side == domain.Credit {
			side = domain.Debit
		}
		reversal.Lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			JournalID:   reversal.JournalID,
			AccountID:   l.AccountID,
			Side:        side,
			Amount:      l.Amount,
			AuditFields: audit,
		}
	}

	if err := s.journalRepo.SaveReversal(ctx, original.JournalID, reversal); err != nil {
		s.LogError(ctx, err, "Failed to save reversal",
			slog.String("journal_id", original.JournalID),
			slog.String("reversal_id", reversal.JournalID))
		return nil, fmt.Errorf("failed to save reversal: %w", err)
	}

	s.LogInfo(ctx, "Journal reversed",
		slog.String("journal_id", original.JournalID),
		slog.String("reversal_id", reversal.JournalID))
	return &reversal, nil
}

func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	out := make([]string, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
