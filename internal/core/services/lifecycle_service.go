package services

import (
	"context"
	"fmt"
	"time"

	"github.com/janseva/benefits_portal_app/internal/apperrors"
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/metrics"
	"github.com/janseva/benefits_portal_app/internal/middleware"
)

// systemActor is recorded when a transition has no human principal, such as
// the settlement callback completing an application.
const systemActor = "SYSTEM"

// LifecycleService orchestrates application status transitions and their
// side effects. The entity write, the optional payment spawn and the audit
// entry are independent sequential writes; the first two abort the call on
// failure, the audit write is logged only, and notification failures never
// surface.
type LifecycleService struct {
	applicationRepo portsrepo.ApplicationRepositoryFacade
	paymentRepo     portsrepo.PaymentRepositoryFacade
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade
	audit           portssvc.AuditRecorderSvc
	notifier        portssvc.NotificationSvcFacade
	metrics         *metrics.Metrics
}

func NewLifecycleService(
	applicationRepo portsrepo.ApplicationRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade,
	audit portssvc.AuditRecorderSvc,
	notifier portssvc.NotificationSvcFacade,
	m *metrics.Metrics,
) *LifecycleService {
	return &LifecycleService{
		applicationRepo: applicationRepo,
		paymentRepo:     paymentRepo,
		beneficiaryRepo: beneficiaryRepo,
		audit:           audit,
		notifier:        notifier,
		metrics:         m,
	}
}

// transitionEffects collects what a single transition spawned beyond the
// entity write itself.
type transitionEffects struct {
	payment     *domain.PaymentTransaction
	auditAction domain.AuditAction
	notifyKind  portssvc.ApplicationUpdateKind
	metadata    map[string]any
}

func (s *LifecycleService) Transition(ctx context.Context, applicationID string, req dto.TransitionRequest) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.NewStatus.IsValid() {
		s.metrics.IncrementTransition(string(req.NewStatus), "error")
		return nil, fmt.Errorf("unknown application status %q: %w", req.NewStatus, apperrors.ErrValidation)
	}

	app, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		s.metrics.IncrementTransition(string(req.NewStatus), "error")
		return nil, err
	}

	if app.ApplicationStatus.IsTerminal() {
		s.metrics.IncrementTransition(string(req.NewStatus), "error")
		return nil, fmt.Errorf("application %s is %s and accepts no further transitions: %w",
			applicationID, app.ApplicationStatus, apperrors.ErrConflict)
	}

	actor := req.ActorID
	if actor == "" {
		actor = systemActor
	}
	now := time.Now()

	effects := s.applyTransition(app, req, actor, now)

	app.ApplicationStatus = req.NewStatus
	app.LastUpdatedAt = now
	app.LastUpdatedBy = actor

	if err := s.applicationRepo.UpdateApplication(ctx, *app); err != nil {
		s.metrics.IncrementTransition(string(req.NewStatus), "error")
		return nil, err
	}
	app.Version++

	if effects.payment != nil {
		if err := s.paymentRepo.SavePayment(ctx, *effects.payment); err != nil {
			s.metrics.IncrementTransition(string(req.NewStatus), "error")
			return nil, fmt.Errorf("application %s moved to %s but payment record creation failed: %w",
				applicationID, req.NewStatus, err)
		}
		s.metrics.IncrementPaymentCreated()
	}

	s.metrics.IncrementTransition(string(req.NewStatus), "ok")

	if effects.auditAction != "" {
		// A spawned payment is audited against the payment record itself.
		target := domain.TargetResource{Type: domain.ResourceApplication, ID: applicationID}
		if effects.payment != nil {
			target = domain.TargetResource{Type: domain.ResourcePayment, ID: effects.payment.TransactionID}
		}
		if _, err := s.audit.Record(ctx, effects.auditAction, actor, target, req.Meta, effects.metadata); err != nil {
			logger.Error("transition applied but audit write failed",
				"applicationID", applicationID, "action", string(effects.auditAction), "error", err)
		}
	}

	if effects.notifyKind != "" {
		s.notifyBeneficiary(ctx, app, req, effects)
	}

	return app, nil
}

// applyTransition mutates the per-status fields and decides the side
// effects. Timestamps already present are never overwritten.
func (s *LifecycleService) applyTransition(app *domain.Application, req dto.TransitionRequest, actor string, now time.Time) transitionEffects {
	var effects transitionEffects

	// The acting role recorded in review-stage audit entries. A transition
	// without a human principal (settlement callbacks) is attributed to the
	// system.
	role := "REVIEWER"
	if req.ActorID == "" {
		role = systemActor
	}

	switch req.NewStatus {
	case domain.StatusSubmitted:
		if app.SubmittedAt == nil {
			t := now
			app.SubmittedAt = &t
		}
		effects.auditAction = domain.ActionApplicationSubmitted
		effects.notifyKind = portssvc.NotifySubmitted

	case domain.StatusUnderReview:
		// Only the status itself changes; reviewedAt is the decision
		// timestamp and is stamped by the APPROVED/REJECTED branches.
		effects.auditAction = domain.ActionApplicationReviewed
		effects.metadata = map[string]any{
			"previousStatus": string(app.ApplicationStatus),
			"newStatus":      string(req.NewStatus),
			"role":           role,
		}

	case domain.StatusApproved:
		if app.ReviewedAt == nil {
			t := now
			app.ReviewedAt = &t
		}
		if req.Amount != nil {
			app.ApprovedAmount = req.Amount
		}
		effects.auditAction = domain.ActionApplicationApproved
		effects.notifyKind = portssvc.NotifyApproved
		nextStep := "Application Complete"
		if app.ApprovedAmount != nil {
			nextStep = "Payment Processing"
		}
		effects.metadata = map[string]any{
			"role":     role,
			"nextStep": nextStep,
		}
		if app.ApprovedAmount != nil {
			effects.metadata["approvedAmount"] = app.ApprovedAmount.String()
		}
		if req.Remarks != "" {
			effects.metadata["comments"] = req.Remarks
		}

	case domain.StatusRejected:
		if app.ReviewedAt == nil {
			t := now
			app.ReviewedAt = &t
		}
		reason := req.Remarks
		if reason == "" {
			reason = "Not specified"
		}
		app.RejectionReason = &reason
		effects.auditAction = domain.ActionApplicationRejected
		effects.notifyKind = portssvc.NotifyRejected
		effects.metadata = map[string]any{
			"rejectionReason":       reason,
			"role":                  role,
			"reApplicationEligible": true,
		}

	case domain.StatusPaymentInitiated:
		// Both the amount and the transaction id must arrive with the
		// request; otherwise the status changes with no payment record.
		if req.Amount != nil && req.TransactionID != "" {
			effects.payment = &domain.PaymentTransaction{
				TransactionID: req.TransactionID,
				ApplicationID: app.ApplicationID,
				BeneficiaryID: app.BeneficiaryID,
				Amount:        *req.Amount,
				PaymentStatus: domain.PaymentInitiated,
				Remarks:       req.Remarks,
				InitiatedAt:   now,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     actor,
					LastUpdatedAt: now,
					LastUpdatedBy: actor,
				},
			}
			effects.metadata = map[string]any{
				"transactionID": req.TransactionID,
				"amount":        req.Amount.String(),
			}
		}
		effects.auditAction = domain.ActionPaymentInitiated
		effects.notifyKind = portssvc.NotifyPaymentInitiated

	case domain.StatusCompleted:
		effects.auditAction = domain.ActionPaymentCompleted
		effects.notifyKind = portssvc.NotifyPaymentCompleted
		if req.TransactionID != "" {
			effects.metadata = map[string]any{"transactionID": req.TransactionID}
		}

	case domain.StatusDraft:
		// Reverting to draft is an edit affordance; it carries no side
		// effects of its own.
	}

	return effects
}

// notifyBeneficiary resolves the beneficiary's mobile number and dispatches
// the status SMS. Every failure is swallowed here.
func (s *LifecycleService) notifyBeneficiary(ctx context.Context, app *domain.Application, req dto.TransitionRequest, effects transitionEffects) {
	logger := middleware.GetLoggerFromCtx(ctx)

	beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, app.BeneficiaryID)
	if err != nil {
		s.metrics.IncrementNotificationFailure()
		logger.Warn("skipping status notification, beneficiary lookup failed",
			"applicationID", app.ApplicationID, "beneficiaryID", app.BeneficiaryID, "error", err)
		return
	}

	details := portssvc.ApplicationUpdateDetails{
		SchemeName:    app.ApplicationType.SchemeName(),
		ApplicationID: app.ApplicationID,
		Amount:        app.ApprovedAmount,
		TransactionID: req.TransactionID,
	}
	if app.RejectionReason != nil {
		details.RejectionReason = *app.RejectionReason
	}
	if effects.payment != nil {
		details.Amount = &effects.payment.Amount
	}

	if err := s.notifier.SendApplicationUpdate(ctx, beneficiary.MobileNumber, effects.notifyKind, details); err != nil {
		logger.Warn("status notification failed",
			"applicationID", app.ApplicationID, "kind", string(effects.notifyKind), "error", err)
	}
}
