package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/middleware"
	"github.com/janseva/benefits_portal_app/internal/utils/identifier"
)

// authorityHandler exposes the officer-facing status endpoint that drives
// the lifecycle orchestrator.
type authorityHandler struct {
	lifecycleService portssvc.LifecycleSvcFacade
}

func newAuthorityHandler(ls portssvc.LifecycleSvcFacade) *authorityHandler {
	return &authorityHandler{lifecycleService: ls}
}

// registerAuthorityRoutes registers the status endpoint for officers/admins.
func registerAuthorityRoutes(rg *gin.RouterGroup, ls portssvc.LifecycleSvcFacade) {
	h := newAuthorityHandler(ls)

	rg.PATCH("/applications/:id/status",
		middleware.RequireRole(domain.RoleOfficer, domain.RoleAdmin),
		h.updateStatus)
}

// updateStatus godoc
// @Summary Apply an authority action to an application
// @Description Maps the action to its target status and runs the lifecycle transition with its side effects
// @Tags authority
// @Accept  json
// @Produce  json
// @Param   id path string true "Application ID"
// @Param   update body dto.AuthorityUpdateStatusRequest true "Authority action"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} map[string]string "Unknown action or status"
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 409 {object} map[string]string "Terminal state or concurrent update"
// @Security BearerAuth
// @Router /applications/{id}/status [patch]
func (h *authorityHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AuthorityUpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	target, ok := req.Action.TargetStatus()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
		return
	}

	officerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	transactionID := req.TransactionID
	if target == domain.StatusPaymentInitiated && req.Amount != nil && transactionID == "" {
		transactionID = identifier.NewTransactionID(time.Now())
	}

	transition := dto.TransitionRequest{
		NewStatus:     target,
		ActorID:       officerID,
		Remarks:       req.Remarks,
		Amount:        req.Amount,
		TransactionID: transactionID,
		Meta:          requestMeta(c),
	}

	app, err := h.lifecycleService.Transition(c.Request.Context(), c.Param("id"), transition)
	if err != nil {
		logger.Error("Authority transition failed",
			slog.String("application_id", c.Param("id")),
			slog.String("action", string(req.Action)),
			slog.String("error", err.Error()))
		respondError(c, err, "Failed to update application status")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}
