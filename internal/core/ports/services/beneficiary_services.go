package services

import (
	"context"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/dto"
)

// BeneficiaryReaderSvc defines read operations over beneficiary profiles.
type BeneficiaryReaderSvc interface {
	// GetBeneficiaryByID retrieves one profile.
	GetBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error)

	// GetBeneficiaryByUserID retrieves the profile owned by a user account.
	GetBeneficiaryByUserID(ctx context.Context, userID string) (*domain.Beneficiary, error)
}

// BeneficiaryWriterSvc defines profile registration and updates.
type BeneficiaryWriterSvc interface {
	// CreateBeneficiary registers a profile for the given user account.
	CreateBeneficiary(ctx context.Context, req dto.CreateBeneficiaryRequest, userID string, meta dto.RequestMeta) (*domain.Beneficiary, error)

	// UpdateBeneficiary updates mutable profile fields.
	UpdateBeneficiary(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, actorID string, meta dto.RequestMeta) (*domain.Beneficiary, error)
}

// BeneficiarySvcFacade combines all beneficiary service interfaces.
type BeneficiarySvcFacade interface {
	BeneficiaryReaderSvc
	BeneficiaryWriterSvc
}
