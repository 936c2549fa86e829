package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/janseva/benefits_portal_app/internal/apperrors"
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/middleware"
	"github.com/janseva/benefits_portal_app/internal/utils/identifier"
)

// ApplicationService covers creation, document handling and the read paths.
// Status changes past submission go through the lifecycle orchestrator.
type ApplicationService struct {
	applicationRepo portsrepo.ApplicationRepositoryFacade
	beneficiaryRepo portsrepo.BeneficiaryReader
	lifecycle       portssvc.LifecycleSvcFacade
	audit           portssvc.AuditRecorderSvc
	notifier        portssvc.NotificationSvcFacade
}

func NewApplicationService(
	applicationRepo portsrepo.ApplicationRepositoryFacade,
	beneficiaryRepo portsrepo.BeneficiaryReader,
	lifecycle portssvc.LifecycleSvcFacade,
	audit portssvc.AuditRecorderSvc,
	notifier portssvc.NotificationSvcFacade,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		beneficiaryRepo: beneficiaryRepo,
		lifecycle:       lifecycle,
		audit:           audit,
		notifier:        notifier,
	}
}

func (s *ApplicationService) CreateApplication(ctx context.Context, req dto.CreateApplicationRequest, creatorUserID string, meta dto.RequestMeta) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, req.BeneficiaryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve beneficiary %s: %w", req.BeneficiaryID, err)
	}

	now := time.Now()
	app := domain.Application{
		ApplicationID:     identifier.NewApplicationID(req.ApplicationType.IDPrefix(), now),
		ApplicationType:   req.ApplicationType,
		BeneficiaryID:     beneficiary.BeneficiaryID,
		ApplicationStatus: domain.StatusSubmitted,
		Documents:         []domain.ApplicationDocument{},
		Version:           1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.MarriageDetails != nil {
		app.MarriageDetails = &domain.MarriageDetails{
			SpouseName:             req.MarriageDetails.SpouseName,
			SpouseAadhaarNumber:    req.MarriageDetails.SpouseAadhaarNumber,
			SpouseCategory:         req.MarriageDetails.SpouseCategory,
			MarriageDate:           req.MarriageDetails.MarriageDate,
			MarriageRegistrationID: req.MarriageDetails.MarriageRegistrationID,
			VerificationStatus:     domain.VerificationPending,
		}
	}
	if req.FIRDetails != nil {
		app.FIRDetails = &domain.FIRDetails{
			FIRNumber:           req.FIRDetails.FIRNumber,
			PoliceStation:       req.FIRDetails.PoliceStation,
			District:            req.FIRDetails.District,
			IncidentDate:        req.FIRDetails.IncidentDate,
			IncidentDescription: req.FIRDetails.IncidentDescription,
			Sections:            req.FIRDetails.Sections,
			VerificationStatus:  domain.VerificationPending,
		}
	}

	if err := app.ValidateVariant(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if req.Draft {
		app.ApplicationStatus = domain.StatusDraft
	} else {
		t := now
		app.SubmittedAt = &t
	}

	if err := s.applicationRepo.SaveApplication(ctx, app); err != nil {
		return nil, err
	}

	if !req.Draft {
		target := domain.TargetResource{Type: domain.ResourceApplication, ID: app.ApplicationID}
		metadata := map[string]any{"applicationType": string(app.ApplicationType)}
		if _, err := s.audit.Record(ctx, domain.ActionApplicationSubmitted, creatorUserID, target, meta, metadata); err != nil {
			logger.Error("application created but audit write failed", "applicationID", app.ApplicationID, "error", err)
		}

		details := portssvc.ApplicationUpdateDetails{
			SchemeName:    app.ApplicationType.SchemeName(),
			ApplicationID: app.ApplicationID,
		}
		if err := s.notifier.SendApplicationUpdate(ctx, beneficiary.MobileNumber, portssvc.NotifySubmitted, details); err != nil {
			logger.Warn("submission notification failed", "applicationID", app.ApplicationID, "error", err)
		}
	}

	return &app, nil
}

// SubmitApplication delegates the DRAFT to SUBMITTED move to the
// orchestrator so the audit entry and notification come from one place.
func (s *ApplicationService) SubmitApplication(ctx context.Context, applicationID string, actorID string, meta dto.RequestMeta) (*domain.Application, error) {
	app, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicationStatus != domain.StatusDraft {
		return nil, fmt.Errorf("application %s is %s, only drafts can be submitted: %w",
			applicationID, app.ApplicationStatus, apperrors.ErrConflict)
	}

	return s.lifecycle.Transition(ctx, applicationID, dto.TransitionRequest{
		NewStatus: domain.StatusSubmitted,
		ActorID:   actorID,
		Meta:      meta,
	})
}

func (s *ApplicationService) AssignOfficer(ctx context.Context, applicationID string, officerID string, actorID string, meta dto.RequestMeta) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicationStatus.IsTerminal() {
		return nil, fmt.Errorf("application %s is %s and cannot be reassigned: %w",
			applicationID, app.ApplicationStatus, apperrors.ErrConflict)
	}

	now := time.Now()
	app.AssignedOfficer = &officerID
	app.LastUpdatedAt = now
	app.LastUpdatedBy = actorID

	if err := s.applicationRepo.UpdateApplication(ctx, *app); err != nil {
		return nil, err
	}
	app.Version++

	target := domain.TargetResource{Type: domain.ResourceApplication, ID: applicationID}
	if _, err := s.audit.Record(ctx, domain.ActionApplicationReviewed, actorID, target, meta, map[string]any{"assignedOfficer": officerID}); err != nil {
		logger.Error("officer assigned but audit write failed", "applicationID", applicationID, "error", err)
	}

	return app, nil
}

func (s *ApplicationService) AddDocument(ctx context.Context, applicationID string, req dto.AddDocumentRequest, actorID string, meta dto.RequestMeta) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	doc := domain.ApplicationDocument{
		DocumentID:         uuid.NewString(),
		DocumentType:       req.DocumentType,
		FileName:           req.FileName,
		FileURL:            req.FileURL,
		UploadedAt:         time.Now(),
		VerificationStatus: domain.VerificationPending,
	}

	if err := s.applicationRepo.AppendDocument(ctx, applicationID, doc); err != nil {
		return nil, err
	}

	target := domain.TargetResource{Type: domain.ResourceApplication, ID: applicationID}
	metadata := map[string]any{"documentID": doc.DocumentID, "documentType": doc.DocumentType}
	if _, err := s.audit.Record(ctx, domain.ActionDocumentUploaded, actorID, target, meta, metadata); err != nil {
		logger.Error("document added but audit write failed", "applicationID", applicationID, "error", err)
	}

	return s.applicationRepo.FindApplicationByID(ctx, applicationID)
}

func (s *ApplicationService) VerifyDocument(ctx context.Context, applicationID string, documentID string, req dto.VerifyDocumentRequest, actorID string, meta dto.RequestMeta) (*domain.Application, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.applicationRepo.UpdateDocumentVerification(ctx, applicationID, documentID, req.Status); err != nil {
		return nil, err
	}

	target := domain.TargetResource{Type: domain.ResourceApplication, ID: applicationID}
	metadata := map[string]any{"documentID": documentID, "status": string(req.Status)}
	if _, err := s.audit.Record(ctx, domain.ActionDocumentVerified, actorID, target, meta, metadata); err != nil {
		logger.Error("document verified but audit write failed", "applicationID", applicationID, "error", err)
	}

	return s.applicationRepo.FindApplicationByID(ctx, applicationID)
}

func (s *ApplicationService) GetApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	return s.applicationRepo.FindApplicationByID(ctx, applicationID)
}

func (s *ApplicationService) ListApplicationsByBeneficiary(ctx context.Context, beneficiaryID string, params dto.ListApplicationsParams) (*dto.ListApplicationsResponse, error) {
	apps, nextToken, err := s.applicationRepo.ListApplicationsByBeneficiary(ctx, beneficiaryID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListApplicationsResponse{Applications: dto.ToApplicationResponses(apps), NextToken: nextToken}, nil
}

func (s *ApplicationService) ListApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus, params dto.ListApplicationsParams) (*dto.ListApplicationsResponse, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown application status %q: %w", status, apperrors.ErrValidation)
	}
	apps, nextToken, err := s.applicationRepo.ListApplicationsByStatus(ctx, status, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListApplicationsResponse{Applications: dto.ToApplicationResponses(apps), NextToken: nextToken}, nil
}
