package dto

import (
	"time"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MarriageDetailsPayload carries the marriage variant sub-document on creation.
type MarriageDetailsPayload struct {
	SpouseName             string    `json:"spouseName" binding:"required"`
	SpouseAadhaarNumber    string    `json:"spouseAadhaarNumber" binding:"required,len=12,numeric"`
	SpouseCategory         string    `json:"spouseCategory" binding:"required"`
	MarriageDate           time.Time `json:"marriageDate" binding:"required"`
	MarriageRegistrationID string    `json:"marriageRegistrationId" binding:"required"`
}

// FIRDetailsPayload carries the FIR variant sub-document on creation.
type FIRDetailsPayload struct {
	FIRNumber           string    `json:"firNumber" binding:"required"`
	PoliceStation       string    `json:"policeStation" binding:"required"`
	District            string    `json:"district" binding:"required"`
	IncidentDate        time.Time `json:"incidentDate" binding:"required"`
	IncidentDescription string    `json:"incidentDescription" binding:"required"`
	Sections            []string  `json:"sections" binding:"required,min=1"`
}

// CreateApplicationRequest defines the payload for creating an application.
// Exactly one of MarriageDetails / FIRDetails must be present, matching the type.
type CreateApplicationRequest struct {
	BeneficiaryID   string                  `json:"beneficiaryID" binding:"required"`
	ApplicationType domain.ApplicationType  `json:"applicationType" binding:"required,oneof=MARRIAGE_INCENTIVE ATROCITY_RELIEF"`
	Draft           bool                    `json:"draft"`
	MarriageDetails *MarriageDetailsPayload `json:"marriageDetails,omitempty"`
	FIRDetails      *FIRDetailsPayload      `json:"firDetails,omitempty"`
}

// AddDocumentRequest defines the payload for attaching a document.
type AddDocumentRequest struct {
	DocumentType string `json:"documentType" binding:"required"`
	FileName     string `json:"fileName" binding:"required"`
	FileURL      string `json:"fileUrl" binding:"required,url"`
}

// VerifyDocumentRequest defines the payload for a document verification outcome.
type VerifyDocumentRequest struct {
	Status domain.VerificationStatus `json:"status" binding:"required,oneof=VERIFIED REJECTED"`
}

// AssignOfficerRequest defines the payload for assigning a reviewing officer.
type AssignOfficerRequest struct {
	OfficerID string `json:"officerID" binding:"required"`
}

// ListApplicationsParams defines query parameters for application lists.
type ListApplicationsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// DocumentResponse defines the data returned for one uploaded document.
type DocumentResponse struct {
	DocumentID         string    `json:"documentID"`
	DocumentType       string    `json:"documentType"`
	FileName           string    `json:"fileName"`
	FileURL            string    `json:"fileUrl"`
	UploadedAt         time.Time `json:"uploadedAt"`
	VerificationStatus string    `json:"verificationStatus"`
}

// ApplicationResponse defines the data returned for an application.
type ApplicationResponse struct {
	ApplicationID     string                  `json:"applicationID"`
	ApplicationType   string                  `json:"applicationType"`
	SchemeName        string                  `json:"schemeName"`
	BeneficiaryID     string                  `json:"beneficiaryID"`
	ApplicationStatus string                  `json:"applicationStatus"`
	AssignedOfficer   *string                 `json:"assignedOfficer,omitempty"`
	SubmittedAt       *time.Time              `json:"submittedAt,omitempty"`
	ReviewedAt        *time.Time              `json:"reviewedAt,omitempty"`
	ApprovedAmount    *decimal.Decimal        `json:"approvedAmount,omitempty"`
	RejectionReason   *string                 `json:"rejectionReason,omitempty"`
	Documents         []DocumentResponse      `json:"documentsUploaded"`
	MarriageDetails   *domain.MarriageDetails `json:"marriageDetails,omitempty"`
	FIRDetails        *domain.FIRDetails      `json:"firDetails,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
}

// ListApplicationsResponse wraps a page of applications.
type ListApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToApplicationResponse converts a domain.Application to its response DTO.
func ToApplicationResponse(a *domain.Application) ApplicationResponse {
	docs := make([]DocumentResponse, len(a.Documents))
	for i, d := range a.Documents {
		docs[i] = DocumentResponse{
			DocumentID:         d.DocumentID,
			DocumentType:       d.DocumentType,
			FileName:           d.FileName,
			FileURL:            d.FileURL,
			UploadedAt:         d.UploadedAt,
			VerificationStatus: string(d.VerificationStatus),
		}
	}
	return ApplicationResponse{
		ApplicationID:     a.ApplicationID,
		ApplicationType:   string(a.ApplicationType),
		SchemeName:        a.ApplicationType.SchemeName(),
		BeneficiaryID:     a.BeneficiaryID,
		ApplicationStatus: string(a.ApplicationStatus),
		AssignedOfficer:   a.AssignedOfficer,
		SubmittedAt:       a.SubmittedAt,
		ReviewedAt:        a.ReviewedAt,
		ApprovedAmount:    a.ApprovedAmount,
		RejectionReason:   a.RejectionReason,
		Documents:         docs,
		MarriageDetails:   a.MarriageDetails,
		FIRDetails:        a.FIRDetails,
		CreatedAt:         a.CreatedAt,
	}
}

// ToApplicationResponses converts a slice of domain applications.
func ToApplicationResponses(apps []domain.Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = ToApplicationResponse(&apps[i])
	}
	return responses
}
