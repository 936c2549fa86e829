package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/middleware"
	"github.com/janseva/benefits_portal_app/pkg/config"
)

// authHandler handles the two public sign-in flows.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the public sign-in endpoints, rate limited
// by client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate = limiter.Rate{Period: time.Minute, Limit: 10}
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/auth", middleware.RateLimit(limiterInstance))
	{
		auth.POST("/login", h.officerLogin)
		auth.POST("/otp/request", h.requestOTP)
		auth.POST("/otp/verify", h.verifyOTP)
	}
}

// officerLogin godoc
// @Summary Officer/admin password sign-in
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.OfficerLoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) officerLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OfficerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.OfficerLogin(c.Request.Context(), req, requestMeta(c))
	if err != nil {
		logger.Warn("Officer sign-in failed", slog.String("username", req.Username))
		respondError(c, err, "Sign-in failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// requestOTP godoc
// @Summary Request a one-time sign-in code
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.RequestOTPRequest true "Mobile number"
// @Success 202 {object} map[string]string "Code dispatched"
// @Router /auth/otp/request [post]
func (h *authHandler) requestOTP(c *gin.Context) {
	var req dto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.RequestOTP(c.Request.Context(), req, requestMeta(c)); err != nil {
		respondError(c, err, "Failed to dispatch code")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Code sent"})
}

// verifyOTP godoc
// @Summary Exchange a one-time code for a token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   verification body dto.VerifyOTPRequest true "Mobile number and code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid or expired code"
// @Router /auth/otp/verify [post]
func (h *authHandler) verifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.VerifyOTPLogin(c.Request.Context(), req, requestMeta(c))
	if err != nil {
		respondError(c, err, "Verification failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}
