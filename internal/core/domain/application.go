package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationType discriminates the two scheme variants handled by the portal.
type ApplicationType string

const (
	MarriageIncentive ApplicationType = "MARRIAGE_INCENTIVE"
	AtrocityRelief    ApplicationType = "ATROCITY_RELIEF"
)

// IDPrefix returns the prefix used in externally visible application ids.
func (t ApplicationType) IDPrefix() string {
	if t == AtrocityRelief {
		return "ATR"
	}
	return "MAR"
}

// SchemeName is the display name used in notifications and the timeline.
func (t ApplicationType) SchemeName() string {
	if t == AtrocityRelief {
		return "Atrocity Relief Scheme"
	}
	return "Inter-Caste Marriage Incentive Scheme"
}

// ApplicationStatus is the state of an application in its lifecycle.
type ApplicationStatus string

const (
	StatusDraft            ApplicationStatus = "DRAFT"
	StatusSubmitted        ApplicationStatus = "SUBMITTED"
	StatusUnderReview      ApplicationStatus = "UNDER_REVIEW"
	StatusApproved         ApplicationStatus = "APPROVED"
	StatusRejected         ApplicationStatus = "REJECTED"
	StatusPaymentInitiated ApplicationStatus = "PAYMENT_INITIATED"
	StatusCompleted        ApplicationStatus = "COMPLETED"
)

// applicationStatuses is the closed set of legal status values.
var applicationStatuses = map[ApplicationStatus]struct{}{
	StatusDraft:            {},
	StatusSubmitted:        {},
	StatusUnderReview:      {},
	StatusApproved:         {},
	StatusRejected:         {},
	StatusPaymentInitiated: {},
	StatusCompleted:        {},
}

// IsValid reports whether s is one of the defined status values.
func (s ApplicationStatus) IsValid() bool {
	_, ok := applicationStatuses[s]
	return ok
}

// IsTerminal reports whether no further transition is permitted out of s.
// Re-application after rejection is a new record, never a transition.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// VerificationStatus tracks document and detail verification outcomes.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// ApplicationDocument is one uploaded supporting document.
type ApplicationDocument struct {
	DocumentID         string             `json:"documentID"`
	DocumentType       string             `json:"documentType"`
	FileName           string             `json:"fileName"`
	FileURL            string             `json:"fileUrl"`
	UploadedAt         time.Time          `json:"uploadedAt"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
}

// MarriageDetails is the variant sub-document for marriage incentive applications.
type MarriageDetails struct {
	SpouseName             string             `json:"spouseName"`
	SpouseAadhaarNumber    string             `json:"spouseAadhaarNumber"`
	SpouseCategory         string             `json:"spouseCategory"`
	MarriageDate           time.Time          `json:"marriageDate"`
	MarriageRegistrationID string             `json:"marriageRegistrationId"`
	VerificationStatus     VerificationStatus `json:"verificationStatus"`
}

// FIRDetails is the variant sub-document for atrocity relief applications.
type FIRDetails struct {
	FIRNumber           string             `json:"firNumber"`
	PoliceStation       string             `json:"policeStation"`
	District            string             `json:"district"`
	IncidentDate        time.Time          `json:"incidentDate"`
	IncidentDescription string             `json:"incidentDescription"`
	Sections            []string           `json:"sections"`
	VerificationStatus  VerificationStatus `json:"verificationStatus"`
}

// Application is a citizen's request under one of the relief/incentive schemes.
// The type tag determines which of the two variant sub-documents is present;
// exactly one of MarriageDetails / FIRDetails must be non-nil, matching the tag.
type Application struct {
	ApplicationID     string                `json:"applicationID"` // e.g. MAR_2025_123456
	ApplicationType   ApplicationType       `json:"applicationType"`
	BeneficiaryID     string                `json:"beneficiaryID"`
	ApplicationStatus ApplicationStatus     `json:"applicationStatus"`
	AssignedOfficer   *string               `json:"assignedOfficer,omitempty"`
	SubmittedAt       *time.Time            `json:"submittedAt,omitempty"`
	ReviewedAt        *time.Time            `json:"reviewedAt,omitempty"`
	ApprovedAmount    *decimal.Decimal      `json:"approvedAmount,omitempty"`
	RejectionReason   *string               `json:"rejectionReason,omitempty"`
	Documents         []ApplicationDocument `json:"documentsUploaded"`
	MarriageDetails   *MarriageDetails      `json:"marriageDetails,omitempty"`
	FIRDetails        *FIRDetails           `json:"firDetails,omitempty"`
	Version           int64                 `json:"version"`
	AuditFields
}

// ValidateVariant checks that the variant sub-document matches the type tag.
func (a *Application) ValidateVariant() error {
	switch a.ApplicationType {
	case MarriageIncentive:
		if a.MarriageDetails == nil || a.FIRDetails != nil {
			return fmt.Errorf("marriage incentive application requires marriageDetails and no firDetails")
		}
	case AtrocityRelief:
		if a.FIRDetails == nil || a.MarriageDetails != nil {
			return fmt.Errorf("atrocity relief application requires firDetails and no marriageDetails")
		}
	default:
		return fmt.Errorf("unknown application type %q", a.ApplicationType)
	}
	return nil
}
