package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application is the row shape of the applications table. The variant
// sub-documents and the ordered document list are stored as JSONB.
type Application struct {
	ApplicationID     string           `db:"application_id"`
	ApplicationType   string           `db:"application_type"`
	BeneficiaryID     string           `db:"beneficiary_id"`
	ApplicationStatus string           `db:"application_status"`
	AssignedOfficer   *string          `db:"assigned_officer"`
	SubmittedAt       *time.Time       `db:"submitted_at"`
	ReviewedAt        *time.Time       `db:"reviewed_at"`
	ApprovedAmount    *decimal.Decimal `db:"approved_amount"`
	RejectionReason   *string          `db:"rejection_reason"`
	Documents         []byte           `db:"documents"`        // JSONB array
	MarriageDetails   []byte           `db:"marriage_details"` // JSONB, NULL unless MARRIAGE_INCENTIVE
	FIRDetails        []byte           `db:"fir_details"`      // JSONB, NULL unless ATROCITY_RELIEF
	Version           int64            `db:"version"`
	AuditFields
}
