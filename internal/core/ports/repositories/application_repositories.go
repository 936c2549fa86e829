package repositories

import (
	"context"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
)

// ApplicationReader defines read operations for application data.
type ApplicationReader interface {
	// FindApplicationByID retrieves one application by its external id.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error)

	// ListApplicationsByBeneficiary retrieves a keyset-paginated list of a
	// beneficiary's applications, newest first.
	ListApplicationsByBeneficiary(ctx context.Context, beneficiaryID string, limit int, nextToken *string) ([]domain.Application, *string, error)

	// ListApplicationsByStatus retrieves a keyset-paginated list of
	// applications in a given status, newest first.
	ListApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus, limit int, nextToken *string) ([]domain.Application, *string, error)
}

// ApplicationWriter defines write operations for application data.
type ApplicationWriter interface {
	// SaveApplication persists a new application with its variant sub-document.
	SaveApplication(ctx context.Context, app domain.Application) error

	// UpdateApplication persists changed mutable fields using optimistic
	// concurrency: the update applies only when the stored version equals
	// app.Version, and the stored version is then incremented. A lost race
	// surfaces as apperrors.ErrConflict.
	UpdateApplication(ctx context.Context, app domain.Application) error
}

// ApplicationDocumentWriter defines write operations for a single
// application's uploaded-document list.
type ApplicationDocumentWriter interface {
	// AppendDocument adds one document to the application's ordered list.
	AppendDocument(ctx context.Context, applicationID string, doc domain.ApplicationDocument) error

	// UpdateDocumentVerification flips one document's verification status.
	UpdateDocumentVerification(ctx context.Context, applicationID string, documentID string, status domain.VerificationStatus) error
}

// ApplicationRepositoryFacade combines all application repository interfaces.
type ApplicationRepositoryFacade interface {
	ApplicationReader
	ApplicationWriter
	ApplicationDocumentWriter
}
