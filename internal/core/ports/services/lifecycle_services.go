package services

import (
	"context"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/dto"
)

// LifecycleSvcFacade is the status-transition orchestrator: it validates the
// requested transition, mutates and persists the application, conditionally
// spawns a payment record, writes the audit entry and dispatches a
// best-effort notification.
//
// The three writes (entity, payment, audit) are independent persistence
// operations executed in sequence; there is no cross-store transaction.
// Entity and payment write failures abort the call, an audit write failure
// is logged only, and a notification failure never surfaces.
type LifecycleSvcFacade interface {
	// Transition moves one application to req.NewStatus.
	Transition(ctx context.Context, applicationID string, req dto.TransitionRequest) (*domain.Application, error)
}
