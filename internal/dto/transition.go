package dto

import (
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AuthorityAction is the inbound vocabulary of the authority status endpoint.
// Each action maps to exactly one target status of the lifecycle orchestrator.
type AuthorityAction string

const (
	ActionReview          AuthorityAction = "REVIEW"
	ActionApprove         AuthorityAction = "APPROVE"
	ActionReject          AuthorityAction = "REJECT"
	ActionInitiatePayment AuthorityAction = "INITIATE_PAYMENT"
	ActionCompletePayment AuthorityAction = "COMPLETE_PAYMENT"
)

// TargetStatus resolves the action to the orchestrator's target status.
func (a AuthorityAction) TargetStatus() (domain.ApplicationStatus, bool) {
	switch a {
	case ActionReview:
		return domain.StatusUnderReview, true
	case ActionApprove:
		return domain.StatusApproved, true
	case ActionReject:
		return domain.StatusRejected, true
	case ActionInitiatePayment:
		return domain.StatusPaymentInitiated, true
	case ActionCompletePayment:
		return domain.StatusCompleted, true
	}
	return "", false
}

// AuthorityUpdateStatusRequest is the payload of the authority status endpoint.
type AuthorityUpdateStatusRequest struct {
	Action        AuthorityAction  `json:"action" binding:"required,oneof=REVIEW APPROVE REJECT INITIATE_PAYMENT COMPLETE_PAYMENT"`
	Remarks       string           `json:"remarks,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	TransactionID string           `json:"transactionID,omitempty"`
}

// TransitionRequest is the orchestrator's input for one status transition.
// ActorID is empty for system-initiated transitions.
type TransitionRequest struct {
	NewStatus     domain.ApplicationStatus
	ActorID       string
	Remarks       string
	Amount        *decimal.Decimal
	TransactionID string
	Meta          RequestMeta
}
