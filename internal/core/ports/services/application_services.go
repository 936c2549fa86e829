package services

import (
	"context"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/dto"
)

// ApplicationReaderSvc defines read operations over applications.
type ApplicationReaderSvc interface {
	// GetApplicationByID retrieves one application.
	GetApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error)

	// ListApplicationsByBeneficiary lists a beneficiary's applications, newest first.
	ListApplicationsByBeneficiary(ctx context.Context, beneficiaryID string, params dto.ListApplicationsParams) (*dto.ListApplicationsResponse, error)

	// ListApplicationsByStatus lists applications in one status (officer view).
	ListApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus, params dto.ListApplicationsParams) (*dto.ListApplicationsResponse, error)
}

// ApplicationWriterSvc defines creation and pre-review mutations.
type ApplicationWriterSvc interface {
	// CreateApplication registers a new application. The default path creates
	// it already SUBMITTED; the draft flag keeps it in DRAFT.
	CreateApplication(ctx context.Context, req dto.CreateApplicationRequest, creatorUserID string, meta dto.RequestMeta) (*domain.Application, error)

	// SubmitApplication moves a DRAFT application to SUBMITTED.
	SubmitApplication(ctx context.Context, applicationID string, actorID string, meta dto.RequestMeta) (*domain.Application, error)

	// AssignOfficer sets the reviewing authority.
	AssignOfficer(ctx context.Context, applicationID string, officerID string, actorID string, meta dto.RequestMeta) (*domain.Application, error)

	// AddDocument appends one supporting document (verification PENDING).
	AddDocument(ctx context.Context, applicationID string, req dto.AddDocumentRequest, actorID string, meta dto.RequestMeta) (*domain.Application, error)

	// VerifyDocument records a document verification outcome.
	VerifyDocument(ctx context.Context, applicationID string, documentID string, req dto.VerifyDocumentRequest, actorID string, meta dto.RequestMeta) (*domain.Application, error)
}

// ApplicationSvcFacade combines all application service interfaces.
type ApplicationSvcFacade interface {
	ApplicationReaderSvc
	ApplicationWriterSvc
}
