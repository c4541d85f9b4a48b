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

// partyHandler handles HTTP requests for customers and vendors. Both
// resources share one handler; the route fixes the kind.
type partyHandler struct {
	partySvc portssvc.PartySvcFacade
	kind     domain.PartyKind
}

func newPartyHandler(partySvc portssvc.PartySvcFacade, kind domain.PartyKind) *partyHandler {
	return &partyHandler{partySvc: partySvc, kind: kind}
}

// RegisterPartyRoutes registers routes for customers and vendors.
func RegisterPartyRoutes(rg *gin.RouterGroup, partySvc portssvc.PartySvcFacade, statementSvc portssvc.StatementSvc) {
	for path, kind := range map[string]domain.PartyKind{
		"/customers": domain.Customer,
		"/vendors":   domain.Vendor,
	} {
		h := newPartyHandler(partySvc, kind)
		sh := newStatementHandler(statementSvc)

		parties := rg.Group(path)
		{
			parties.POST("", h.createParty)
			parties.GET("", h.listParties)
			parties.GET("/:id", h.getParty)
			parties.PUT("/:id", h.updateParty)
			parties.DELETE("/:id", h.deactivateParty)
			parties.GET("/:id/statement", sh.getStatement)
		}
	}
}

// createParty godoc
// @Summary Create a new customer or vendor
// @Description Creates a new party of the kind fixed by the route
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Security BearerAuth
// @Router /customers [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partySvc.CreateParty(c.Request.Context(), h.kind, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Party already exists"})
		} else {
			logger.Error("Failed to create party in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create party"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// getParty godoc
// @Summary Get a party by ID
// @Description Retrieves details for a specific customer or vendor
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to retrieve party"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	party, err := h.partySvc.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to get party from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve party"})
		}
		return
	}
	if party.Kind != h.kind {
		// A vendor fetched through the customer route reads as absent.
		c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List customers or vendors
// @Description Retrieves a paginated list of parties of the route's kind
// @Tags parties
// @Produce  json
// @Param   includeInactive query bool false "Include deactivated parties"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.PartyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Security BearerAuth
// @Router /customers [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	parties, err := h.partySvc.ListParties(c.Request.Context(), h.kind, params.IncludeInactive, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list parties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parties"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPartyResponse(parties))
}

// updateParty godoc
// @Summary Update a party
// @Description Updates mutable details of a customer or vendor
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to update party"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	party, err := h.partySvc.UpdateParty(c.Request.Context(), partyID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update party", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update party"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deactivateParty godoc
// @Summary Deactivate a party
// @Description Marks a customer or vendor inactive; documents keep referencing it
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 204 "Deactivated"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to deactivate party"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *partyHandler) deactivateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.partySvc.DeactivateParty(c.Request.Context(), partyID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to deactivate party", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate party"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
