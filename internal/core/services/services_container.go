package services

import (
	"github.com/redis/go-redis/v9"

	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/metrics"
	"github.com/janseva/benefits_portal_app/pkg/config"
)

// NewServiceContainer wires every service with its dependencies. The
// lifecycle orchestrator sits between the application and payment services,
// so construction order matters here.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, redisClient *redis.Client, cfg *config.Config, m *metrics.Metrics) *portssvc.ServiceContainer {
	audit := NewAuditService(repos.AuditRepo, m)
	notifier := NewNotificationService(nil, m)

	lifecycle := NewLifecycleService(repos.ApplicationRepo, repos.PaymentRepo, repos.BeneficiaryRepo, audit, notifier, m)
	application := NewApplicationService(repos.ApplicationRepo, repos.BeneficiaryRepo, lifecycle, audit, notifier)
	payment := NewPaymentService(repos.PaymentRepo, lifecycle, audit)
	timeline := NewTimelineService(repos.ApplicationRepo, repos.PaymentRepo)

	users := NewUserService(repos.UserRepo)
	beneficiaries := NewBeneficiaryService(repos.BeneficiaryRepo, audit)
	token := NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	otp := NewOTPService(redisClient, notifier, cfg.OTPTTL)
	auth := NewAuthService(users, token, otp, audit)

	return &portssvc.ServiceContainer{
		Application:  application,
		Lifecycle:    lifecycle,
		Payment:      payment,
		Audit:        audit,
		Timeline:     timeline,
		Notification: notifier,
		Beneficiary:  beneficiaries,
		User:         users,
		Auth:         auth,
		Token:        token,
		OTP:          otp,
	}
}
