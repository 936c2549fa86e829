package repositories

import (
	"context"
	"time"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
)

// PaymentReader defines read operations for payment transactions.
type PaymentReader interface {
	// FindPaymentByTransactionID retrieves one payment record.
	FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error)

	// FindPaymentsByApplicationID retrieves all payment records for an
	// application, newest first.
	FindPaymentsByApplicationID(ctx context.Context, applicationID string) ([]domain.PaymentTransaction, error)
}

// PaymentWriter defines write operations for payment transactions.
type PaymentWriter interface {
	// SavePayment persists a new payment record.
	SavePayment(ctx context.Context, payment domain.PaymentTransaction) error

	// UpdatePaymentStatus sets the payment status and, when completedAt is
	// non-nil and the stored value is still NULL, records the completion
	// time. A completion time already present is never overwritten.
	UpdatePaymentStatus(ctx context.Context, transactionID string, status domain.PaymentStatus, remarks string, completedAt *time.Time, updatedBy string, updatedAt time.Time) error
}

// PaymentRepositoryFacade combines all payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
