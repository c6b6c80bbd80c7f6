package dto

import (
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest defines one debit/credit line of a journal payload.
type CreateJournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Side      string          `json:"side" binding:"required,oneof=DEBIT CREDIT"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// CreateJournalRequest defines the payload for posting a journal.
// JournalDate carries calendar-date semantics, hence the plain YYYY-MM-DD format.
type CreateJournalRequest struct {
	JournalDate string                     `json:"journalDate" binding:"required,datetime=2006-01-02"`
	Description string                     `json:"description"`
	Lines       []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Side      string          `json:"side"`
	Amount    decimal.Decimal `json:"amount"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID         string                `json:"journalID"`
	JournalDate       string                `json:"journalDate"`
	Description       string                `json:"description"`
	Status            string                `json:"status"`
	OriginalJournalID string                `json:"originalJournalID,omitempty"`
	Lines             []JournalLineResponse `json:"lines"`
	CreatedAt         time.Time             `json:"createdAt"`
	CreatedBy         string                `json:"createdBy"`
}

// ListJournalsResponse wraps a page of journals.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:         j.JournalID,
		JournalDate:       j.JournalDate.Format("2006-01-02"),
		Description:       j.Description,
		Status:            string(j.Status),
		OriginalJournalID: j.OriginalJournalID,
		Lines:             make([]JournalLineResponse, len(j.Lines)),
		CreatedAt:         j.CreatedAt,
		CreatedBy:         j.CreatedBy,
	}
	for i, l := range j.Lines {
		resp.Lines[i] = JournalLineResponse{
			LineID:    l.LineID,
			AccountID: l.AccountID,
			Side:      string(l.Side),
			Amount:    l.Amount,
		}
	}
	return resp
}

// ToListJournalsResponse converts a slice of domain.Journal to a list response.
func ToListJournalsResponse(journals []domain.Journal, limit, offset int) ListJournalsResponse {
	resp := ListJournalsResponse{
		Journals: make([]JournalResponse, len(journals)),
		Limit:    limit,
		Offset:   offset,
	}
	for i := range journals {
		resp.Journals[i] = ToJournalResponse(&journals[i])
	}
	return resp
}
