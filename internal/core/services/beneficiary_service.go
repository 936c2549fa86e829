package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/middleware"
)

// BeneficiaryService manages citizen profiles. Profile changes are audited
// because disbursement account edits are security relevant.
type BeneficiaryService struct {
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade
	audit           portssvc.AuditRecorderSvc
}

func NewBeneficiaryService(beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade, audit portssvc.AuditRecorderSvc) *BeneficiaryService {
	return &BeneficiaryService{beneficiaryRepo: beneficiaryRepo, audit: audit}
}

func (s *BeneficiaryService) CreateBeneficiary(ctx context.Context, req dto.CreateBeneficiaryRequest, userID string, meta dto.RequestMeta) (*domain.Beneficiary, error) {
	now := time.Now()
	b := domain.Beneficiary{
		BeneficiaryID: uuid.NewString(),
		UserID:        userID,
		DisplayName:   req.DisplayName,
		MobileNumber:  req.MobileNumber,
		AadhaarNumber: req.AadhaarNumber,
		Category:      req.Category,
		District:      req.District,
		BankAccount: domain.BankAccount{
			AccountNumber: req.BankAccount.AccountNumber,
			IFSCCode:      req.BankAccount.IFSCCode,
			BankName:      req.BankAccount.BankName,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.beneficiaryRepo.SaveBeneficiary(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BeneficiaryService) UpdateBeneficiary(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, actorID string, meta dto.RequestMeta) (*domain.Beneficiary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	b, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}

	changed := []string{}
	if req.DisplayName != nil {
		b.DisplayName = *req.DisplayName
		changed = append(changed, "displayName")
	}
	if req.District != nil {
		b.District = *req.District
		changed = append(changed, "district")
	}
	if req.BankAccount != nil {
		b.BankAccount = domain.BankAccount{
			AccountNumber: req.BankAccount.AccountNumber,
			IFSCCode:      req.BankAccount.IFSCCode,
			BankName:      req.BankAccount.BankName,
		}
		changed = append(changed, "bankAccount")
	}

	b.LastUpdatedAt = time.Now()
	b.LastUpdatedBy = actorID

	if err := s.beneficiaryRepo.UpdateBeneficiary(ctx, *b); err != nil {
		return nil, err
	}

	target := domain.TargetResource{Type: domain.ResourceBeneficiaryProfile, ID: beneficiaryID}
	if _, err := s.audit.Record(ctx, domain.ActionProfileUpdated, actorID, target, meta, map[string]any{"fields": changed}); err != nil {
		logger.Error("profile updated but audit write failed", "beneficiaryID", beneficiaryID, "error", err)
	}

	return b, nil
}

func (s *BeneficiaryService) GetBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	return s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
}

func (s *BeneficiaryService) GetBeneficiaryByUserID(ctx context.Context, userID string) (*domain.Beneficiary, error) {
	return s.beneficiaryRepo.FindBeneficiaryByUserID(ctx, userID)
}
