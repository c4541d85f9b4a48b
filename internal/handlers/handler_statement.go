package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gobooks/books_backend/internal/apperrors"
	portssvc "github.com/gobooks/books_backend/internal/core/ports/services"
	"github.com/gobooks/books_backend/internal/dto"
	"github.com/gobooks/books_backend/internal/middleware"
)

// statementHandler serves party ledger statements.
type statementHandler struct {
	statementSvc portssvc.StatementSvc
}

func newStatementHandler(statementSvc portssvc.StatementSvc) *statementHandler {
	return &statementHandler{statementSvc: statementSvc}
}

// getStatement godoc
// @Summary Get a party's ledger statement
// @Description Builds the statement for a customer or vendor over the requested period. An invalid period falls back to the as-on-date default.
// @Tags statements
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   mode query string false "Period mode" Enums(as_on_date)
// @Param   startDate query string false "Range start (YYYY-MM-DD)"
// @Param   endDate query string false "Range end (YYYY-MM-DD)"
// @Param   month query int false "Calendar month 1-12"
// @Param   year query int false "Year for the month query"
// @Success 200 {object} dto.StatementResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /customers/{id}/statement [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	// Unparsable dates degrade to an empty query; the service applies the
	// same as-on-date fallback it uses for inverted ranges.
	q, err := params.PeriodQuery()
	if err != nil {
		logger.Warn("Unparsable statement period, using default range", slog.String("party_id", partyID))
		q.StartDate = nil
		q.EndDate = nil
	}

	statement, err := h.statementSvc.BuildStatement(c.Request.Context(), partyID, q)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to build statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(statement))
}
