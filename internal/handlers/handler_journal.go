package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/middleware"
)

// journalHandler is the read side of the ledger: listing, transaction lookup
// and the dashboard summary.
type journalHandler struct {
	journalService  portssvc.JournalSvcFacade
	settingsService portssvc.SettingsSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade, ss portssvc.SettingsSvcFacade) *journalHandler {
	return &journalHandler{journalService: js, settingsService: ss}
}

// registerJournalRoutes registers the journal read routes.
func registerJournalRoutes(rg *gin.RouterGroup, js portssvc.JournalSvcFacade, ss portssvc.SettingsSvcFacade) {
	h := newJournalHandler(js, ss)

	journal := rg.Group("/journal")
	{
		journal.GET("", h.listEntries)
		journal.GET("/summary", h.summarize)
		journal.GET("/:transactionID", h.getTransaction)
	}
}

// listEntries lists journal entries, optionally filtered by source and date range.
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToListJournalEntryResponse(entries)})
}

// getTransaction returns all entries of one logical transaction.
func (h *journalHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	entries, err := h.journalService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToListJournalEntryResponse(entries)})
}

// summarize returns per-source debit/credit totals for the dashboard.
func (h *journalHandler) summarize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var from, to time.Time
	var err error
	if params.From != "" {
		if from, err = time.Parse(dto.DateLayout, params.From); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
			return
		}
	}
	if params.To != "" {
		if to, err = time.Parse(dto.DateLayout, params.To); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
			return
		}
	}

	summaries, err := h.journalService.Summarize(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to summarize journal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize journal"})
		return
	}

	// The currency symbol is cosmetic; a settings read failure never blocks
	// the summary.
	currencySymbol := ""
	if settings, err := h.settingsService.GetSettings(c.Request.Context()); err == nil {
		currencySymbol = settings.CurrencySymbol
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summaries, currencySymbol))
}
