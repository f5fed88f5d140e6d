package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/finbooks/finbooks_backend/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests related to invoice and bill drafts.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

// newDocumentHandler creates a new documentHandler.
func newDocumentHandler(documentService portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: documentService}
}

// registerDocumentRoutes registers document specific routes.
func registerDocumentRoutes(group *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := group.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("", h.listDocuments)
		documents.GET("/:documentID", h.getDocument)
		documents.PUT("/:documentID", h.updateDocument)
		documents.DELETE("/:documentID", h.deleteDocument)
		documents.POST("/:documentID/submit", h.submitDocument)
		documents.POST("/:documentID/pay", h.markDocumentPaid)
		documents.POST("/:documentID/void", h.voidDocument)
	}
}

// createDocument godoc
// @Summary Create an invoice or bill draft
// @Description Creates a new document draft and computes its totals
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.CreateDocumentRequest true "Document"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "createDocument")
		return
	}

	logger.Info("Document created", slog.String("document_id", doc.DocumentID), slog.String("type", string(doc.Type)))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List document drafts
// @Description Retrieves documents, optionally filtered by type
// @Tags documents
// @Produce json
// @Param type query string false "Document type (INVOICE or BILL)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Param pageToken query string false "Opaque page token, overrides offset"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listDocuments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	if params.PageToken != "" {
		offset, err := pagination.DecodeOffsetToken(params.PageToken)
		if err != nil {
			logger.Warn("Invalid page token for listDocuments", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page token"})
			return
		}
		params.Offset = offset
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "listDocuments")
		return
	}
	c.JSON(http.StatusOK, dto.ListDocumentsResponse{
		Documents: dto.ToDocumentResponses(docs),
		NextToken: pagination.NextToken(params.Offset, params.Limit, len(docs)),
	})
}

// getDocument godoc
// @Summary Get a document draft
// @Description Retrieves a document by ID
// @Tags documents
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Router /documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "getDocument")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// updateDocument godoc
// @Summary Update a DRAFT document
// @Description Applies partial updates and recomputes all derived totals
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param document body dto.UpdateDocumentRequest true "Fields to update"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is not editable"
// @Router /documents/{documentID} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), documentID, req)
	if err != nil {
		respondServiceError(c, logger, err, "updateDocument")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// deleteDocument godoc
// @Summary Delete a DRAFT document
// @Tags documents
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is not a draft"
// @Router /documents/{documentID} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	if err := h.documentService.DeleteDocument(c.Request.Context(), documentID); err != nil {
		respondServiceError(c, logger, err, "deleteDocument")
		return
	}
	c.Status(http.StatusNoContent)
}

// submitDocument godoc
// @Summary Submit a document draft
// @Description Validates the draft; when clean, moves it to SUBMITTED. Validation failures return the full violation list with a 422.
// @Tags documents
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.SubmitResultResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Illegal status transition"
// @Failure 422 {object} dto.SubmitResultResponse "Validation failed"
// @Router /documents/{documentID}/submit [post]
func (h *documentHandler) submitDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	doc, violations, err := h.documentService.SubmitDocument(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "submitDocument")
		return
	}

	if len(violations) > 0 {
		logger.Info("Document submission blocked by validation", slog.String("document_id", documentID), slog.Int("violations", len(violations)))
		c.JSON(http.StatusUnprocessableEntity, dto.SubmitResultResponse{Submitted: false, Violations: violations})
		return
	}

	logger.Info("Document submitted", slog.String("document_id", documentID))
	resp := dto.ToDocumentResponse(doc)
	c.JSON(http.StatusOK, dto.SubmitResultResponse{Submitted: true, Document: &resp})
}

// markDocumentPaid godoc
// @Summary Mark a SUBMITTED document as paid
// @Tags documents
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Illegal status transition"
// @Router /documents/{documentID}/pay [post]
func (h *documentHandler) markDocumentPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	doc, err := h.documentService.MarkDocumentPaid(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "markDocumentPaid")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// voidDocument godoc
// @Summary Void a document
// @Tags documents
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Illegal status transition"
// @Router /documents/{documentID}/void [post]
func (h *documentHandler) voidDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	doc, err := h.documentService.VoidDocument(c.Request.Context(), documentID)
	if err != nil {
		respondServiceError(c, logger, err, "voidDocument")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}
