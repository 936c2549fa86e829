package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/middleware"
)

// auditHandler exposes the audit trail query and retention surfaces.
// Every route requires officer or admin role; the purge is admin only.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(as portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: as}
}

// registerAuditRoutes registers all audit-trail routes.
func registerAuditRoutes(rg *gin.RouterGroup, as portssvc.AuditSvcFacade) {
	h := newAuditHandler(as)

	audit := rg.Group("/audit", middleware.RequireRole(domain.RoleOfficer, domain.RoleAdmin))
	{
		audit.GET("/users/:id", h.listByUser)
		audit.GET("/resources/:type/:id", h.listByTarget)
		audit.GET("/security", h.listSecurityEvents)
		audit.GET("/search", h.search)
		audit.POST("/purge", middleware.RequireRole(domain.RoleAdmin), h.purge)
	}
}

// listByUser godoc
// @Summary List audit entries performed by one principal
// @Tags audit
// @Produce  json
// @Param   id path string true "User ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListAuditEntriesResponse
// @Security BearerAuth
// @Router /audit/users/{id} [get]
func (h *auditHandler) listByUser(c *gin.Context) {
	var params dto.ListAuditEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.auditService.ListEntriesByUser(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondError(c, err, "Failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditEntriesResponse{Entries: dto.ToAuditEntryResponses(entries)})
}

// listByTarget godoc
// @Summary List audit entries targeting one resource
// @Tags audit
// @Produce  json
// @Param   type path string true "Resource type"
// @Param   id path string true "Resource ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListAuditEntriesResponse
// @Security BearerAuth
// @Router /audit/resources/{type}/{id} [get]
func (h *auditHandler) listByTarget(c *gin.Context) {
	var params dto.ListAuditEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	target := domain.TargetResource{
		Type: domain.ResourceType(c.Param("type")),
		ID:   c.Param("id"),
	}
	entries, err := h.auditService.ListEntriesByTarget(c.Request.Context(), target, params)
	if err != nil {
		respondError(c, err, "Failed to list audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditEntriesResponse{Entries: dto.ToAuditEntryResponses(entries)})
}

// listSecurityEvents godoc
// @Summary List security-relevant audit entries in a time window
// @Tags audit
// @Produce  json
// @Param   from query string true "Window start (RFC 3339)"
// @Param   to query string true "Window end (RFC 3339)"
// @Param   limit query int false "Page size"
// @Success 200 {object} dto.ListAuditEntriesResponse
// @Security BearerAuth
// @Router /audit/security [get]
func (h *auditHandler) listSecurityEvents(c *gin.Context) {
	var params dto.SecurityEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.auditService.ListSecurityEvents(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list security events")
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditEntriesResponse{Entries: dto.ToAuditEntryResponses(entries)})
}

// search godoc
// @Summary Search audit entries
// @Tags audit
// @Produce  json
// @Param   action query string false "Filter by action"
// @Param   resourceType query string false "Filter by resource type"
// @Param   ip query string false "Filter by IP address"
// @Param   from query string false "Window start (RFC 3339)"
// @Param   to query string false "Window end (RFC 3339)"
// @Success 200 {object} dto.ListAuditEntriesResponse
// @Security BearerAuth
// @Router /audit/search [get]
func (h *auditHandler) search(c *gin.Context) {
	var params dto.AuditSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.auditService.SearchEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to search audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListAuditEntriesResponse{Entries: dto.ToAuditEntryResponses(entries)})
}

// purge godoc
// @Summary Purge audit entries past the retention window
// @Description Deletes entries older than the given day count; zero means the default seven-year window
// @Tags audit
// @Accept  json
// @Produce  json
// @Param   retention body dto.PurgeAuditRequest true "Retention window"
// @Success 200 {object} dto.PurgeAuditResponse
// @Security BearerAuth
// @Router /audit/purge [post]
func (h *auditHandler) purge(c *gin.Context) {
	var req dto.PurgeAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	deleted, err := h.auditService.PurgeOlderThan(c.Request.Context(), req.RetentionDays)
	if err != nil {
		respondError(c, err, "Failed to purge audit entries")
		return
	}
	c.JSON(http.StatusOK, dto.PurgeAuditResponse{Deleted: deleted})
}
