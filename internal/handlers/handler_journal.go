package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/apperrors"
	portssvc "github.com/gestaoerp/ledger_backend/internal/core/ports/services"
	"github.com/gestaoerp/ledger_backend/internal/core/services"
	"github.com/gestaoerp/ledger_backend/internal/dto"
	"github.com/gestaoerp/ledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals
type journalHandler struct {
	journalService portssvc.JournalSvc
}

func newJournalHandler(js portssvc.JournalSvc) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to journal posting and retrieval
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvc) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.postJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.POST("/:journalID/reverse", h.reverseJournal)
	}
}

func (h *journalHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid journal payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	actorID := middleware.GetActorIDFromContext(c)
	journal, err := h.journalService.PostJournal(c.Request.Context(), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJournalUnbalanced),
			errors.Is(err, services.ErrJournalMinEntries),
			errors.Is(err, services.ErrAccountNotPostable),
			errors.Is(err, services.ErrAccountInactive),
			errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to post journal", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post journal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
			return
		}
		logger.Error("Failed to get journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get journal"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parsePeriod(c, logger)
	if !ok {
		return
	}
	limit, offset := parsePagination(c)

	journals, err := h.journalService.ListJournals(c.Request.Context(), from, to, limit, offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalsResponse(journals, limit, offset))
}

func (h *journalHandler) reverseJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")
	actorID := middleware.GetActorIDFromContext(c)

	reversal, err := h.journalService.ReverseJournal(c.Request.Context(), journalID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		case errors.Is(err, services.ErrAlreadyReversed):
			c.JSON(http.StatusConflict, gin.H{"error": "Journal has already been reversed"})
		case errors.Is(err, services.ErrReversalOfReversal):
			c.JSON(http.StatusConflict, gin.H{"error": "Reversal journals cannot be reversed"})
		default:
			logger.Error("Failed to reverse journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reverse journal"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(reversal))
}

// parsePeriod reads from/to query parameters (YYYY-MM-DD). The period defaults
// to the current month when absent.
func parsePeriod(c *gin.Context, logger *slog.Logger) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	defaultFrom := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	fromStr := c.DefaultQuery("from", defaultFrom.Format(time.DateOnly))
	from, err := time.ParseInLocation(time.DateOnly, fromStr, time.UTC)
	if err != nil {
		logger.Warn("Invalid from date", slog.String("from", fromStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	toStr := c.DefaultQuery("to", now.Format(time.DateOnly))
	to, err := time.ParseInLocation(time.DateOnly, toStr, time.UTC)
	if err != nil {
		logger.Warn("Invalid to date", slog.String("to", toStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date. Use YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}
