package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portssvc "github.com/gobooks/books_backend/internal/core/ports/services"
	"github.com/gobooks/books_backend/internal/dto"
	"github.com/gobooks/books_backend/internal/middleware"
)

// documentHandler handles HTTP requests for one document kind. All four
// kinds share the handler; the route fixes the type.
type documentHandler struct {
	documentSvc portssvc.DocumentSvcFacade
	docType     domain.DocumentType
}

func newDocumentHandler(documentSvc portssvc.DocumentSvcFacade, docType domain.DocumentType) *documentHandler {
	return &documentHandler{documentSvc: documentSvc, docType: docType}
}

// registerDocumentRoutes registers routes for invoices, bills, credit
// notes and debit notes.
func registerDocumentRoutes(rg *gin.RouterGroup, documentSvc portssvc.DocumentSvcFacade) {
	for path, docType := range map[string]domain.DocumentType{
		"/invoices":     domain.Invoice,
		"/bills":        domain.Bill,
		"/credit-notes": domain.CreditNote,
		"/debit-notes":  domain.DebitNote,
	} {
		h := newDocumentHandler(documentSvc, docType)

		docs := rg.Group(path)
		{
			docs.POST("", h.createDocument)
			docs.GET("", h.listDocuments)
			docs.GET("/:id", h.getDocument)
			docs.PUT("/:id", h.updateDocument)
			docs.POST("/:id/cancel", h.cancelDocument)
			docs.DELETE("/:id", h.deleteDocument)
		}
	}
}

func (h *documentHandler) respondError(c *gin.Context, err error, logger *slog.Logger, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Document numbering conflict, please retry"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// createDocument godoc
// @Summary Create a document
// @Description Creates an invoice, bill, credit note or debit note. Lines are priced server-side and the document number is drawn atomically with the insert.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Numbering conflict"
// @Failure 500 {object} map[string]string "Failed to create document"
// @Security BearerAuth
// @Router /invoices [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, lines, err := h.documentSvc.CreateDocument(c.Request.Context(), h.docType, req, userID)
	if err != nil {
		h.respondError(c, err, logger, "create document")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc, lines))
}

// getDocument godoc
// @Summary Get a document by ID
// @Description Retrieves a document with its line items
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")

	doc, lines, err := h.documentSvc.GetDocumentByID(c.Request.Context(), h.docType, documentID)
	if err != nil {
		h.respondError(c, err, logger, "retrieve document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc, lines))
}

// listDocuments godoc
// @Summary List a party's documents
// @Description Retrieves a cursor-paginated list of a party's documents of the route's kind, newest first
// @Tags documents
// @Produce  json
// @Param   partyID query string true "Party ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Security BearerAuth
// @Router /invoices [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	token := ""
	if params.NextToken != nil {
		token = *params.NextToken
	}
	docs, next, err := h.documentSvc.ListDocumentsByParty(c.Request.Context(), h.docType, params.PartyID, params.Limit, token)
	if err != nil {
		h.respondError(c, err, logger, "list documents")
		return
	}

	resp := dto.ListDocumentsResponse{
		Documents: make([]dto.DocumentResponse, len(docs)),
	}
	for i := range docs {
		resp.Documents[i] = dto.ToDocumentResponse(&docs[i], nil)
	}
	if next != "" {
		resp.NextToken = &next
	}
	c.JSON(http.StatusOK, resp)
}

// updateDocument godoc
// @Summary Update a document
// @Description Replaces a mutable document's details and line items, repricing everything. The document number never changes.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   document body dto.UpdateDocumentRequest true "Replacement details"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input or immutable document"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to update document"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *documentHandler) updateDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, lines, err := h.documentSvc.UpdateDocument(c.Request.Context(), h.docType, documentID, req, userID)
	if err != nil {
		h.respondError(c, err, logger, "update document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc, lines))
}

// cancelDocument godoc
// @Summary Cancel a document
// @Description Marks a document cancelled. It keeps its number but drops out of statements and balances.
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 204 "Cancelled"
// @Failure 400 {object} map[string]string "Document cannot be cancelled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to cancel document"
// @Security BearerAuth
// @Router /invoices/{id}/cancel [post]
func (h *documentHandler) cancelDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.documentSvc.CancelDocument(c.Request.Context(), h.docType, documentID, userID); err != nil {
		h.respondError(c, err, logger, "cancel document")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteDocument godoc
// @Summary Delete a document
// @Description Soft-deletes a document without payments applied
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Document has payments applied"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to delete document"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.documentSvc.DeleteDocument(c.Request.Context(), h.docType, documentID, userID); err != nil {
		h.respondError(c, err, logger, "delete document")
		return
	}

	c.Status(http.StatusNoContent)
}
