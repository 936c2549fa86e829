package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the state of a disbursement attempt.
type PaymentStatus string

const (
	PaymentInitiated  PaymentStatus = "INITIATED"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentSuccess    PaymentStatus = "SUCCESS"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentReversed   PaymentStatus = "REVERSED"
)

var paymentStatuses = map[PaymentStatus]struct{}{
	PaymentInitiated:  {},
	PaymentProcessing: {},
	PaymentSuccess:    {},
	PaymentFailed:     {},
	PaymentReversed:   {},
}

// IsValid reports whether s is one of the defined payment status values.
func (s PaymentStatus) IsValid() bool {
	_, ok := paymentStatuses[s]
	return ok
}

// IsTerminal reports whether s marks the end of a disbursement attempt.
// A reversal may still follow SUCCESS, but completedAt stays first-write-wins.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentSuccess || s == PaymentFailed || s == PaymentReversed
}

// PaymentTransaction is one simulated direct-benefit-transfer attempt for an
// application. Created only as a side effect of the application entering
// PAYMENT_INITIATED, never standalone.
type PaymentTransaction struct {
	TransactionID string          `json:"transactionID"` // e.g. TXN_DBT_1700000000000_7
	ApplicationID string          `json:"applicationID"`
	BeneficiaryID string          `json:"beneficiaryID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	Remarks       string          `json:"remarks,omitempty"`
	InitiatedAt   time.Time       `json:"initiatedAt"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
	AuditFields
}
