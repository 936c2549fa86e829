package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/middleware"
)

// applicationHandler handles HTTP requests for scheme applications.
type applicationHandler struct {
	applicationService portssvc.ApplicationSvcFacade
	timelineService    portssvc.TimelineSvcFacade
	paymentService     portssvc.PaymentReaderSvc
	beneficiaryService portssvc.BeneficiaryReaderSvc
}

func newApplicationHandler(as portssvc.ApplicationSvcFacade, ts portssvc.TimelineSvcFacade, ps portssvc.PaymentReaderSvc, bs portssvc.BeneficiaryReaderSvc) *applicationHandler {
	return &applicationHandler{
		applicationService: as,
		timelineService:    ts,
		paymentService:     ps,
		beneficiaryService: bs,
	}
}

// registerApplicationRoutes registers all application-related routes.
func registerApplicationRoutes(rg *gin.RouterGroup, as portssvc.ApplicationSvcFacade, ts portssvc.TimelineSvcFacade, ps portssvc.PaymentReaderSvc, bs portssvc.BeneficiarySvcFacade) {
	h := newApplicationHandler(as, ts, ps, bs)

	apps := rg.Group("/applications")
	{
		apps.POST("", h.createApplication)
		apps.GET("", h.listApplications)
		apps.GET("/:id", h.getApplication)
		apps.POST("/:id/submit", h.submitApplication)
		apps.PUT("/:id/officer", middleware.RequireRole(domain.RoleOfficer, domain.RoleAdmin), h.assignOfficer)
		apps.POST("/:id/documents", h.addDocument)
		apps.PATCH("/:id/documents/:docID", middleware.RequireRole(domain.RoleOfficer, domain.RoleAdmin), h.verifyDocument)
		apps.GET("/:id/timeline", h.getTimeline)
		apps.GET("/:id/payments", h.listPayments)
	}
}

// createApplication godoc
// @Summary File a new scheme application
// @Description Creates an application under one of the two schemes; exactly one variant sub-document must match the type
// @Tags applications
// @Accept  json
// @Produce  json
// @Param   application body dto.CreateApplicationRequest true "Application details"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} map[string]string "Invalid input or variant mismatch"
// @Failure 404 {object} map[string]string "Beneficiary not found"
// @Security BearerAuth
// @Router /applications [post]
func (h *applicationHandler) createApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	app, err := h.applicationService.CreateApplication(c.Request.Context(), req, userID, requestMeta(c))
	if err != nil {
		logger.Error("Failed to create application", slog.String("error", err.Error()))
		respondError(c, err, "Failed to create application")
		return
	}

	logger.Info("Application created", slog.String("application_id", app.ApplicationID))
	c.JSON(http.StatusCreated, dto.ToApplicationResponse(app))
}

// getApplication godoc
// @Summary Get an application by ID
// @Tags applications
// @Produce  json
// @Param   id path string true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *applicationHandler) getApplication(c *gin.Context) {
	app, err := h.applicationService.GetApplicationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve application")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// listApplications godoc
// @Summary List applications
// @Description Beneficiaries see their own applications; officers filter by status via ?status=
// @Tags applications
// @Produce  json
// @Param   status query string false "Filter by status (officer only)"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListApplicationsResponse
// @Security BearerAuth
// @Router /applications [get]
func (h *applicationHandler) listApplications(c *gin.Context) {
	var params dto.ListApplicationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, _ := middleware.GetUserRoleFromContext(c)

	if status := c.Query("status"); status != "" {
		if role != domain.RoleOfficer && role != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		resp, err := h.applicationService.ListApplicationsByStatus(c.Request.Context(), domain.ApplicationStatus(status), params)
		if err != nil {
			respondError(c, err, "Failed to list applications")
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	beneficiary, err := h.beneficiaryService.GetBeneficiaryByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to resolve beneficiary profile")
		return
	}

	resp, err := h.applicationService.ListApplicationsByBeneficiary(c.Request.Context(), beneficiary.BeneficiaryID, params)
	if err != nil {
		respondError(c, err, "Failed to list applications")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// submitApplication godoc
// @Summary Submit a draft application
// @Tags applications
// @Produce  json
// @Param   id path string true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 409 {object} map[string]string "Not a draft"
// @Security BearerAuth
// @Router /applications/{id}/submit [post]
func (h *applicationHandler) submitApplication(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	app, err := h.applicationService.SubmitApplication(c.Request.Context(), c.Param("id"), userID, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to submit application")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// assignOfficer godoc
// @Summary Assign a reviewing officer
// @Tags applications
// @Accept  json
// @Produce  json
// @Param   id path string true "Application ID"
// @Param   assignment body dto.AssignOfficerRequest true "Officer assignment"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /applications/{id}/officer [put]
func (h *applicationHandler) assignOfficer(c *gin.Context) {
	var req dto.AssignOfficerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	app, err := h.applicationService.AssignOfficer(c.Request.Context(), c.Param("id"), req.OfficerID, userID, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to assign officer")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// addDocument godoc
// @Summary Attach a supporting document
// @Tags applications
// @Accept  json
// @Produce  json
// @Param   id path string true "Application ID"
// @Param   document body dto.AddDocumentRequest true "Document reference"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /applications/{id}/documents [post]
func (h *applicationHandler) addDocument(c *gin.Context) {
	var req dto.AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	app, err := h.applicationService.AddDocument(c.Request.Context(), c.Param("id"), req, userID, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to add document")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// verifyDocument godoc
// @Summary Record a document verification outcome
// @Tags applications
// @Accept  json
// @Produce  json
// @Param   id path string true "Application ID"
// @Param   docID path string true "Document ID"
// @Param   verification body dto.VerifyDocumentRequest true "Verification outcome"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 404 {object} map[string]string "Application or document not found"
// @Security BearerAuth
// @Router /applications/{id}/documents/{docID} [patch]
func (h *applicationHandler) verifyDocument(c *gin.Context) {
	var req dto.VerifyDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	app, err := h.applicationService.VerifyDocument(c.Request.Context(), c.Param("id"), c.Param("docID"), req, userID, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to verify document")
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// getTimeline godoc
// @Summary Get the projected timeline for an application
// @Tags applications
// @Produce  json
// @Param   id path string true "Application ID"
// @Success 200 {object} dto.TimelineResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Security BearerAuth
// @Router /applications/{id}/timeline [get]
func (h *applicationHandler) getTimeline(c *gin.Context) {
	timeline, err := h.timelineService.ProjectTimeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to project timeline")
		return
	}
	c.JSON(http.StatusOK, timeline)
}

// listPayments godoc
// @Summary List payment records for an application
// @Tags applications
// @Produce  json
// @Param   id path string true "Application ID"
// @Success 200 {array} dto.PaymentResponse
// @Security BearerAuth
// @Router /applications/{id}/payments [get]
func (h *applicationHandler) listPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPaymentsByApplication(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}
