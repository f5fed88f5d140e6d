package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/finbooks/finbooks_backend/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entry drafts.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// registerJournalRoutes registers journal specific routes.
func registerJournalRoutes(group *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := group.Group("/journal-entries")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.PUT("/:journalID", h.updateJournal)
		journals.DELETE("/:journalID", h.deleteJournal)
		journals.POST("/:journalID/validate", h.validateJournal)
		journals.POST("/:journalID/post", h.postJournal)
		journals.POST("/:journalID/void", h.voidJournal)
	}
}

// createJournal godoc
// @Summary Create a journal entry draft
// @Description Creates a new draft. When no lines are supplied the draft is seeded with two empty lines.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param journal body dto.CreateJournalRequest true "Journal draft"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /journal-entries [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "createJournal")
		return
	}

	logger.Info("Journal draft created", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journal entry drafts
// @Tags journal-entries
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Param pageToken query string false "Opaque page token, overrides offset"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid page token"
// @Router /journal-entries [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, offset = pagination.Normalize(limit, offset)

	if token := c.Query("pageToken"); token != "" {
		decoded, err := pagination.DecodeOffsetToken(token)
		if err != nil {
			logger.Warn("Invalid page token for listJournals", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page token"})
			return
		}
		offset = decoded
	}

	journals, err := h.journalService.ListJournals(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, logger, err, "listJournals")
		return
	}
	c.JSON(http.StatusOK, dto.ListJournalsResponse{
		Journals:  dto.ToJournalResponses(journals),
		NextToken: pagination.NextToken(offset, limit, len(journals)),
	})
}

// getJournal godoc
// @Summary Get a journal entry draft
// @Tags journal-entries
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /journal-entries/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), journalID)
	if err != nil {
		respondServiceError(c, logger, err, "getJournal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// updateJournal godoc
// @Summary Update a DRAFT journal entry
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param journalID path string true "Journal ID"
// @Param journal body dto.UpdateJournalRequest true "Fields to update"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal is not editable"
// @Router /journal-entries/{journalID} [put]
func (h *journalHandler) updateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), journalID, req)
	if err != nil {
		respondServiceError(c, logger, err, "updateJournal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// deleteJournal godoc
// @Summary Delete a DRAFT journal entry
// @Tags journal-entries
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal is not a draft"
// @Router /journal-entries/{journalID} [delete]
func (h *journalHandler) deleteJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	if err := h.journalService.DeleteJournal(c.Request.Context(), journalID); err != nil {
		respondServiceError(c, logger, err, "deleteJournal")
		return
	}
	c.Status(http.StatusNoContent)
}

// validateJournal godoc
// @Summary Validate a journal entry draft
// @Description Runs the double-entry checks and returns every violation. The draft is not modified.
// @Tags journal-entries
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} accounting.JournalValidationResult
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /journal-entries/{journalID}/validate [post]
func (h *journalHandler) validateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	result, err := h.journalService.ValidateJournal(c.Request.Context(), journalID)
	if err != nil {
		respondServiceError(c, logger, err, "validateJournal")
		return
	}
	c.JSON(http.StatusOK, result)
}

// postJournal godoc
// @Summary Post a journal entry draft
// @Description Moves a valid DRAFT to POSTED. An invalid draft is left untouched and the violations are returned with a 422.
// @Tags journal-entries
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.PostResultResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Illegal status transition"
// @Failure 422 {object} dto.PostResultResponse "Validation failed"
// @Router /journal-entries/{journalID}/post [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, result, err := h.journalService.PostJournal(c.Request.Context(), journalID)
	if err != nil {
		respondServiceError(c, logger, err, "postJournal")
		return
	}

	if !result.IsValid {
		logger.Info("Journal posting blocked by validation", slog.String("journal_id", journalID), slog.Int("violations", len(result.Violations)))
		c.JSON(http.StatusUnprocessableEntity, dto.PostResultResponse{Posted: false, Violations: result.Violations})
		return
	}

	logger.Info("Journal posted", slog.String("journal_id", journalID))
	resp := dto.ToJournalResponse(journal)
	c.JSON(http.StatusOK, dto.PostResultResponse{Posted: true, Journal: &resp})
}

// voidJournal godoc
// @Summary Void a POSTED journal entry
// @Tags journal-entries
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Illegal status transition"
// @Router /journal-entries/{journalID}/void [post]
func (h *journalHandler) voidJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	journal, err := h.journalService.VoidJournal(c.Request.Context(), journalID)
	if err != nil {
		respondServiceError(c, logger, err, "voidJournal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}
