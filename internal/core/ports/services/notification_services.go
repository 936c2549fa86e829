package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// ApplicationUpdateKind is the notification vocabulary of the status SMS.
type ApplicationUpdateKind string

const (
	NotifySubmitted        ApplicationUpdateKind = "SUBMITTED"
	NotifyApproved         ApplicationUpdateKind = "APPROVED"
	NotifyRejected         ApplicationUpdateKind = "REJECTED"
	NotifyPaymentInitiated ApplicationUpdateKind = "PAYMENT_INITIATED"
	NotifyPaymentCompleted ApplicationUpdateKind = "PAYMENT_COMPLETED"
)

// ApplicationUpdateDetails carries the template fields for one status SMS.
type ApplicationUpdateDetails struct {
	SchemeName      string
	ApplicationID   string
	Amount          *decimal.Decimal
	RejectionReason string
	TransactionID   string
}

// NotificationSvcFacade delivers beneficiary-facing messages. Calls may
// fail; every caller on a transition path must catch and log the error,
// never propagate it.
type NotificationSvcFacade interface {
	// SendApplicationUpdate delivers a status-specific SMS.
	SendApplicationUpdate(ctx context.Context, mobileNumber string, kind ApplicationUpdateKind, details ApplicationUpdateDetails) error

	// SendOTP delivers a one-time sign-in code.
	SendOTP(ctx context.Context, mobileNumber string, code string) error
}
