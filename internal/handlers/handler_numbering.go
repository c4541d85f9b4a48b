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

// numberingHandler exposes the per-type numbering sequence configuration.
type numberingHandler struct {
	numberingSvc portssvc.NumberingSvc
}

func newNumberingHandler(numberingSvc portssvc.NumberingSvc) *numberingHandler {
	return &numberingHandler{numberingSvc: numberingSvc}
}

// registerNumberingRoutes registers the numbering sequence routes.
func registerNumberingRoutes(rg *gin.RouterGroup, numberingSvc portssvc.NumberingSvc) {
	h := newNumberingHandler(numberingSvc)

	sequences := rg.Group("/numbering")
	{
		sequences.GET("/:documentType", h.getSequence)
		sequences.PUT("/:documentType", h.updateSequenceFormat)
	}
}

func parseDocumentType(raw string) (domain.DocumentType, bool) {
	switch domain.DocumentType(raw) {
	case domain.Invoice, domain.Bill, domain.CreditNote, domain.DebitNote:
		return domain.DocumentType(raw), true
	}
	return "", false
}

// getSequence godoc
// @Summary Get a numbering sequence
// @Description Retrieves the numbering configuration and next number for one document type
// @Tags numbering
// @Produce  json
// @Param   documentType path string true "Document type" Enums(INVOICE, BILL, CREDIT_NOTE, DEBIT_NOTE)
// @Success 200 {object} dto.SequenceResponse
// @Failure 400 {object} map[string]string "Unknown document type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve sequence"
// @Security BearerAuth
// @Router /numbering/{documentType} [get]
func (h *numberingHandler) getSequence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	docType, ok := parseDocumentType(c.Param("documentType"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document type"})
		return
	}

	seq, err := h.numberingSvc.GetSequence(c.Request.Context(), docType)
	if err != nil {
		logger.Error("Failed to get sequence", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sequence"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSequenceResponse(seq))
}

// updateSequenceFormat godoc
// @Summary Update a numbering sequence format
// @Description Changes prefix, separator and padding for future numbers. Already-issued numbers keep their format.
// @Tags numbering
// @Accept  json
// @Produce  json
// @Param   documentType path string true "Document type" Enums(INVOICE, BILL, CREDIT_NOTE, DEBIT_NOTE)
// @Param   format body dto.UpdateSequenceFormatRequest true "New format"
// @Success 200 {object} dto.SequenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sequence not found"
// @Failure 500 {object} map[string]string "Failed to update sequence"
// @Security BearerAuth
// @Router /numbering/{documentType} [put]
func (h *numberingHandler) updateSequenceFormat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	docType, ok := parseDocumentType(c.Param("documentType"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document type"})
		return
	}

	var req dto.UpdateSequenceFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	seq, err := h.numberingSvc.UpdateSequenceFormat(c.Request.Context(), docType, req.Prefix, req.Separator, req.PaddingDigits, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sequence not found; it is created with the first document"})
		} else {
			logger.Error("Failed to update sequence format", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sequence"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSequenceResponse(seq))
}
