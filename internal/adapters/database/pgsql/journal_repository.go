package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/apperrors"
	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	portsrepo "github.com/gestaoerp/ledger_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxJournalRepository persists journals and their lines in PostgreSQL.
type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a new repository for journal data.
func NewJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{pool: pool}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, journal_date, description, status, original_journal_id, created_at, created_by, last_updated_at, last_updated_by`
const lineColumns = `line_id, journal_id, account_id, side, amount, created_at, created_by, last_updated_at, last_updated_by`

// SaveJournal inserts a journal and its lines atomically.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if err := insertJournal(ctx, tx, journal); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal %s: %w", journal.JournalID, err)
	}
	return nil
}

// SaveReversal inserts the reversal journal and marks the original REVERSED
// within a single transaction.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, originalJournalID string, reversal domain.Journal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if err := insertJournal(ctx, tx, reversal); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx,
		`UPDATE journals SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE journal_id = $1 AND status = $5;`,
		originalJournalID, domain.Reversed, reversal.LastUpdatedAt, reversal.LastUpdatedBy, domain.Posted,
	)
	if err != nil {
		return fmt.Errorf("failed to mark journal %s reversed: %w", originalJournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal %s not in POSTED status: %w", originalJournalID, apperrors.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reversal of journal %s: %w", originalJournalID, err)
	}
	return nil
}

func insertJournal(ctx context.Context, tx pgx.Tx, journal domain.Journal) error {
	var originalID sql.NullString
	if journal.OriginalJournalID != "" {
		originalID = sql.NullString{String: journal.OriginalJournalID, Valid: true}
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO journals (`+journalColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		journal.JournalID,
		journal.JournalDate,
		journal.Description,
		journal.Status,
		originalID,
		journal.CreatedAt,
		journal.CreatedBy,
		journal.LastUpdatedAt,
		journal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal %s: %w", journal.JournalID, err)
	}

	for _, line := range journal.Lines {
		_, err := tx.Exec(ctx,
			`INSERT INTO journal_lines (`+lineColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			line.LineID,
			line.JournalID,
			line.AccountID,
			line.Side,
			line.Amount,
			line.CreatedAt,
			line.CreatedBy,
			line.LastUpdatedAt,
			line.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert journal line %s: %w", line.LineID, err)
		}
	}
	return nil
}

// FindJournalByID fetches a journal and its lines.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`

	journal, err := scanJournal(r.pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("journal %s: %w", journalID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query journal %s: %w", journalID, err)
	}

	if err := r.attachLines(ctx, []*domain.Journal{journal}); err != nil {
		return nil, err
	}
	return journal, nil
}

// ListJournals returns journals with dates inside [from, to], newest first.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, from, to time.Time, limit int, offset int) ([]domain.Journal, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journals
		WHERE journal_date BETWEEN $1 AND $2
		ORDER BY journal_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`
	if limit <= 0 {
		limit = 50
	}

	return r.queryJournals(ctx, query, from, to, limit, offset)
}

// FindPostedJournalsByPeriod returns the journals feeding period reports:
// POSTED status and not reversal entries (a reversed original leaves POSTED
// status, so each reversal removes both sides from the report inputs).
func (r *PgxJournalRepository) FindPostedJournalsByPeriod(ctx context.Context, from, to time.Time) ([]domain.Journal, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journals
		WHERE journal_date BETWEEN $1 AND $2
			AND status = 'POSTED'
			AND original_journal_id IS NULL
		ORDER BY journal_date, created_at;
	`
	return r.queryJournals(ctx, query, from, to)
}

func (r *PgxJournalRepository) queryJournals(ctx context.Context, query string, args ...any) ([]domain.Journal, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	journals := []*domain.Journal{}
	for rows.Next() {
		journal, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, journal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	if err := r.attachLines(ctx, journals); err != nil {
		return nil, err
	}

	result := make([]domain.Journal, len(journals))
	for i, j := range journals {
		result[i] = *j
	}
	return result, nil
}

// attachLines loads and attaches the lines for each journal in one query.
func (r *PgxJournalRepository) attachLines(ctx context.Context, journals []*domain.Journal) error {
	if len(journals) == 0 {
		return nil
	}

	ids := make([]string, len(journals))
	byID := make(map[string]*domain.Journal, len(journals))
	for i, j := range journals {
		ids[i] = j.JournalID
		byID[j.JournalID] = j
		j.Lines = []domain.JournalLine{}
	}

	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE journal_id = ANY($1) ORDER BY created_at, line_id;`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.JournalLine
		var side string
		if err := rows.Scan(
			&line.LineID,
			&line.JournalID,
			&line.AccountID,
			&side,
			&line.Amount,
			&line.CreatedAt,
			&line.CreatedBy,
			&line.LastUpdatedAt,
			&line.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to scan journal line row: %w", err)
		}
		line.Side = domain.EntrySide(side)
		if journal, ok := byID[line.JournalID]; ok {
			journal.Lines = append(journal.Lines, line)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return nil
}

func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var j domain.Journal
	var status string
	var originalID sql.NullString
	err := row.Scan(
		&j.JournalID,
		&j.JournalDate,
		&j.Description,
		&status,
		&originalID,
		&j.CreatedAt,
		&j.CreatedBy,
		&j.LastUpdatedAt,
		&j.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	j.Status = domain.JournalStatus(status)
	if originalID.Valid {
		j.OriginalJournalID = originalID.String
	}
	return &j, nil
}
