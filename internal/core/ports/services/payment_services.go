package services

import (
	"context"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/dto"
)

// PaymentReaderSvc defines read operations over payment transactions.
type PaymentReaderSvc interface {
	// GetPaymentByTransactionID retrieves one payment record.
	GetPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error)

	// ListPaymentsByApplication retrieves all payments for an application.
	ListPaymentsByApplication(ctx context.Context, applicationID string) ([]domain.PaymentTransaction, error)
}

// PaymentSettlementSvc drives a payment record through its state machine.
type PaymentSettlementSvc interface {
	// UpdatePaymentStatus applies one settlement outcome. completedAt is
	// recorded on the first terminal-status write and never overwritten.
	// A SUCCESS outcome also moves the owning application to COMPLETED.
	UpdatePaymentStatus(ctx context.Context, transactionID string, req dto.UpdatePaymentStatusRequest, actorID string, meta dto.RequestMeta) (*domain.PaymentTransaction, error)
}

// PaymentSvcFacade combines all payment service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentSettlementSvc
}
