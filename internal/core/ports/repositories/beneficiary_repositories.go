package repositories

import (
	"context"
	"time"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
)

// BeneficiaryReader defines read operations for beneficiary profiles.
type BeneficiaryReader interface {
	// FindBeneficiaryByID retrieves one beneficiary profile.
	FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error)

	// FindBeneficiaryByUserID retrieves the profile owned by a user account.
	FindBeneficiaryByUserID(ctx context.Context, userID string) (*domain.Beneficiary, error)
}

// BeneficiaryWriter defines write operations for beneficiary profiles.
type BeneficiaryWriter interface {
	// SaveBeneficiary persists a new beneficiary profile.
	SaveBeneficiary(ctx context.Context, b domain.Beneficiary) error

	// UpdateBeneficiary updates an existing profile's mutable fields.
	UpdateBeneficiary(ctx context.Context, b domain.Beneficiary) error

	// MarkBeneficiaryDeleted soft-deletes a profile.
	MarkBeneficiaryDeleted(ctx context.Context, beneficiaryID string, deletedAt time.Time, deletedBy string) error
}

// BeneficiaryRepositoryFacade combines all beneficiary repository interfaces.
type BeneficiaryRepositoryFacade interface {
	BeneficiaryReader
	BeneficiaryWriter
}
