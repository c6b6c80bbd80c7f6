package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gestaoerp/ledger_backend/internal/core/ledger"
	portssvc "github.com/gestaoerp/ledger_backend/internal/core/ports/services"
	"github.com/gestaoerp/ledger_backend/internal/dto"
	"github.com/gestaoerp/ledger_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
	}
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parsePeriod(c, logger)
	if !ok {
		return
	}
	includeZeroActivity := c.DefaultQuery("includeZeroActivity", "false") == "true"

	logger = logger.With(
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
	)
	logger.Info("Received request to generate trial balance report")

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), from, to, includeZeroActivity)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Start date must not be after end date"})
			return
		}
		logger.Error("Failed to generate trial balance report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parsePeriod(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Start date must not be after end date"})
			return
		}
		logger.Error("Failed to generate profit and loss report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate profit and loss report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report, from, to))
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOfStr := c.DefaultQuery("asOf", time.Now().UTC().Format(time.DateOnly))
	asOf, err := time.ParseInLocation(time.DateOnly, asOfStr, time.UTC)
	if err != nil {
		logger.Warn("Invalid asOf date", slog.String("asOf", asOfStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date. Use YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate balance sheet report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, asOf))
}
