package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentTransaction is the row shape of the payment_transactions table.
type PaymentTransaction struct {
	TransactionID string          `db:"transaction_id"`
	ApplicationID string          `db:"application_id"`
	BeneficiaryID string          `db:"beneficiary_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentStatus string          `db:"payment_status"`
	Remarks       string          `db:"remarks"`
	InitiatedAt   time.Time       `db:"initiated_at"`
	CompletedAt   *time.Time      `db:"completed_at"`
	AuditFields
}
