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

// paymentHandler handles HTTP requests for payments received and made.
type paymentHandler struct {
	paymentSvc portssvc.PaymentSvcFacade
	direction  domain.PaymentDirection
}

func newPaymentHandler(paymentSvc portssvc.PaymentSvcFacade, direction domain.PaymentDirection) *paymentHandler {
	return &paymentHandler{paymentSvc: paymentSvc, direction: direction}
}

// registerPaymentRoutes registers routes for payments in both directions
// plus the direction-agnostic lookup and delete.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentSvc portssvc.PaymentSvcFacade) {
	received := newPaymentHandler(paymentSvc, domain.PaymentReceived)
	made := newPaymentHandler(paymentSvc, domain.PaymentMade)

	rg.POST("/payments-received", received.createPayment)
	rg.POST("/payments-made", made.createPayment)

	payments := rg.Group("/payments")
	{
		payments.GET("", received.listPayments)
		payments.GET("/:id", received.getPayment)
		payments.DELETE("/:id", received.deletePayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a payment received from a customer or made to a vendor and applies its allocations to open documents in one transaction
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /payments-received [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.paymentSvc.CreatePayment(c.Request.Context(), h.direction, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Description Retrieves a payment with its allocations
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	payment, err := h.paymentSvc.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			logger.Error("Failed to get payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List a party's payments
// @Description Retrieves a party's payments, oldest first
// @Tags payments
// @Produce  json
// @Param   partyID query string true "Party ID"
// @Param   limit query int false "Page size" default(20)
// @Param   offset query int false "Page offset" default(0)
// @Success 200 {array} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	payments, err := h.paymentSvc.ListPaymentsByParty(c.Request.Context(), params.PartyID, params.Limit, params.Offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to list payments", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		}
		return
	}

	resp := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		resp[i] = dto.ToPaymentResponse(&payments[i])
	}
	c.JSON(http.StatusOK, resp)
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes a payment and reverses its allocations on the affected documents
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to delete payment"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.paymentSvc.DeletePayment(c.Request.Context(), paymentID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			logger.Error("Failed to delete payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
