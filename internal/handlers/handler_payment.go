package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/middleware"
)

// paymentHandler handles HTTP requests for payment transactions.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers all payment-related routes.
func registerPaymentRoutes(rg *gin.RouterGroup, ps portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(ps)

	payments := rg.Group("/payments")
	{
		payments.GET("/:txnID", h.getPayment)
		payments.PATCH("/:txnID/status", middleware.RequireRole(domain.RoleOfficer, domain.RoleAdmin), h.updatePaymentStatus)
	}
}

// getPayment godoc
// @Summary Get a payment transaction by ID
// @Tags payments
// @Produce  json
// @Param   txnID path string true "Transaction ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{txnID} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPaymentByTransactionID(c.Request.Context(), c.Param("txnID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// updatePaymentStatus godoc
// @Summary Apply a settlement outcome to a payment
// @Description A SUCCESS outcome also completes the owning application
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   txnID path string true "Transaction ID"
// @Param   update body dto.UpdatePaymentStatusRequest true "Settlement outcome"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Unknown payment status"
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{txnID}/status [patch]
func (h *paymentHandler) updatePaymentStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	payment, err := h.paymentService.UpdatePaymentStatus(c.Request.Context(), c.Param("txnID"), req, userID, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to update payment status")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
