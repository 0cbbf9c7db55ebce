package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/himanshudhami/InvoiceX-sub016/internal/core/ports/services"
	"github.com/himanshudhami/InvoiceX-sub016/internal/dto"
	"github.com/himanshudhami/InvoiceX-sub016/internal/middleware"
)

const defaultListLimit = 50

// journalHandler handles HTTP requests for posted journal entries.
type journalHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newJournalHandler(postingService portssvc.PostingSvcFacade) *journalHandler {
	return &journalHandler{
		postingService: postingService,
	}
}

// registerJournalRoutes wires the journal entry routes into the v1 group.
func registerJournalRoutes(group *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newJournalHandler(postingService)

	entries := group.Group("/journal-entries")
	entries.GET("/:entryID", h.getEntry)
	entries.POST("/:entryID/reverse", h.reverseEntry)
	entries.GET("/by-source/:sourceType/:sourceID", h.getBySource)

	companies := group.Group("/companies")
	companies.GET("/:companyID/journal-entries", h.listEntries)
}

func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.postingService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		logger.Warn("Failed to get journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) getBySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sourceType := c.Param("sourceType")
	sourceID := c.Param("sourceID")

	entries, err := h.postingService.GetBySource(c.Request.Context(), sourceType, sourceID)
	if err != nil {
		logger.Error("Failed to get entries by source",
			slog.String("source_type", sourceType),
			slog.String("source_id", sourceID),
			slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": dto.ToJournalEntryResponses(entries)})
}

func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	params := dto.ListEntriesParams{Limit: defaultListLimit}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		params.Limit = limit
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.postingService.ListEntries(c.Request.Context(), companyID, params)
	if err != nil {
		logger.Error("Failed to list journal entries", slog.String("company_id", companyID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	req := dto.ReverseEntryRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ReverseEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	reversal, err := h.postingService.ReverseEntry(c.Request.Context(), entryID, req.ReversedBy, req.Reason)
	if err != nil {
		logger.Error("Failed to reverse journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}
