package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/middleware"
)

// beneficiaryHandler handles HTTP requests for citizen profiles.
type beneficiaryHandler struct {
	beneficiaryService portssvc.BeneficiarySvcFacade
}

func newBeneficiaryHandler(bs portssvc.BeneficiarySvcFacade) *beneficiaryHandler {
	return &beneficiaryHandler{beneficiaryService: bs}
}

// registerBeneficiaryRoutes registers all beneficiary-profile routes.
func registerBeneficiaryRoutes(rg *gin.RouterGroup, bs portssvc.BeneficiarySvcFacade) {
	h := newBeneficiaryHandler(bs)

	beneficiaries := rg.Group("/beneficiaries")
	{
		beneficiaries.POST("", h.createBeneficiary)
		beneficiaries.GET("/me", h.getOwnProfile)
		beneficiaries.GET("/:id", h.getBeneficiary)
		beneficiaries.PUT("/:id", h.updateBeneficiary)
	}
}

// createBeneficiary godoc
// @Summary Register a beneficiary profile for the signed-in citizen
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   profile body dto.CreateBeneficiaryRequest true "Profile details"
// @Success 201 {object} dto.BeneficiaryResponse
// @Failure 409 {object} map[string]string "Profile already exists"
// @Security BearerAuth
// @Router /beneficiaries [post]
func (h *beneficiaryHandler) createBeneficiary(c *gin.Context) {
	var req dto.CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	b, err := h.beneficiaryService.CreateBeneficiary(c.Request.Context(), req, userID, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to register beneficiary")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBeneficiaryResponse(b))
}

// getOwnProfile godoc
// @Summary Get the signed-in citizen's profile
// @Tags beneficiaries
// @Produce  json
// @Success 200 {object} dto.BeneficiaryResponse
// @Failure 404 {object} map[string]string "No profile registered"
// @Security BearerAuth
// @Router /beneficiaries/me [get]
func (h *beneficiaryHandler) getOwnProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	b, err := h.beneficiaryService.GetBeneficiaryByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToBeneficiaryResponse(b))
}

// getBeneficiary godoc
// @Summary Get a beneficiary profile by ID
// @Tags beneficiaries
// @Produce  json
// @Param   id path string true "Beneficiary ID"
// @Success 200 {object} dto.BeneficiaryResponse
// @Failure 404 {object} map[string]string "Profile not found"
// @Security BearerAuth
// @Router /beneficiaries/{id} [get]
func (h *beneficiaryHandler) getBeneficiary(c *gin.Context) {
	b, err := h.beneficiaryService.GetBeneficiaryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToBeneficiaryResponse(b))
}

// updateBeneficiary godoc
// @Summary Update a beneficiary profile
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   id path string true "Beneficiary ID"
// @Param   profile body dto.UpdateBeneficiaryRequest true "Mutable fields"
// @Success 200 {object} dto.BeneficiaryResponse
// @Failure 404 {object} map[string]string "Profile not found"
// @Security BearerAuth
// @Router /beneficiaries/{id} [put]
func (h *beneficiaryHandler) updateBeneficiary(c *gin.Context) {
	var req dto.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	b, err := h.beneficiaryService.UpdateBeneficiary(c.Request.Context(), c.Param("id"), req, userID, requestMeta(c))
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToBeneficiaryResponse(b))
}
