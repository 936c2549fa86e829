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
	"github.com/janseva/benefits_portal_app/internal/middleware"
)

// PaymentService reads payment records and applies settlement outcomes.
// Payment records are only ever created by the lifecycle orchestrator.
type PaymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	lifecycle   portssvc.LifecycleSvcFacade
	audit       portssvc.AuditRecorderSvc
}

func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, lifecycle portssvc.LifecycleSvcFacade, audit portssvc.AuditRecorderSvc) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, lifecycle: lifecycle, audit: audit}
}

func (s *PaymentService) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error) {
	return s.paymentRepo.FindPaymentByTransactionID(ctx, transactionID)
}

func (s *PaymentService) ListPaymentsByApplication(ctx context.Context, applicationID string) ([]domain.PaymentTransaction, error) {
	return s.paymentRepo.FindPaymentsByApplicationID(ctx, applicationID)
}

// UpdatePaymentStatus applies one settlement outcome. The first terminal
// outcome stamps completedAt; later writes keep the original stamp. A
// SUCCESS outcome also drives the owning application to COMPLETED through
// the orchestrator.
func (s *PaymentService) UpdatePaymentStatus(ctx context.Context, transactionID string, req dto.UpdatePaymentStatusRequest, actorID string, meta dto.RequestMeta) (*domain.PaymentTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Status.IsValid() {
		return nil, fmt.Errorf("unknown payment status %q: %w", req.Status, apperrors.ErrValidation)
	}

	payment, err := s.paymentRepo.FindPaymentByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	actor := actorID
	if actor == "" {
		actor = systemActor
	}
	now := time.Now()

	var completedAt *time.Time
	if req.Status.IsTerminal() {
		completedAt = &now
	}

	if err := s.paymentRepo.UpdatePaymentStatus(ctx, transactionID, req.Status, req.Remarks, completedAt, actor, now); err != nil {
		return nil, err
	}

	payment.PaymentStatus = req.Status
	payment.Remarks = req.Remarks
	if payment.CompletedAt == nil {
		payment.CompletedAt = completedAt
	}
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = actor

	if action := settlementAuditAction(req.Status); action != "" {
		target := domain.TargetResource{Type: domain.ResourcePayment, ID: transactionID}
		metadata := map[string]any{
			"applicationID": payment.ApplicationID,
			"amount":        payment.Amount.String(),
		}
		if req.Remarks != "" {
			metadata["remarks"] = req.Remarks
		}
		if _, err := s.audit.Record(ctx, action, actor, target, meta, metadata); err != nil {
			logger.Error("settlement applied but audit write failed",
				"transactionID", transactionID, "error", err)
		}
	}

	if req.Status == domain.PaymentSuccess {
		transition := dto.TransitionRequest{
			NewStatus:     domain.StatusCompleted,
			ActorID:       actor,
			TransactionID: transactionID,
			Meta:          meta,
		}
		if _, err := s.lifecycle.Transition(ctx, payment.ApplicationID, transition); err != nil {
			logger.Error("payment settled but application completion failed",
				"transactionID", transactionID, "applicationID", payment.ApplicationID, "error", err)
		}
	}

	return payment, nil
}

func settlementAuditAction(status domain.PaymentStatus) domain.AuditAction {
	switch status {
	case domain.PaymentSuccess:
		return domain.ActionPaymentCompleted
	case domain.PaymentFailed, domain.PaymentReversed:
		return domain.ActionPaymentFailed
	}
	return ""
}
