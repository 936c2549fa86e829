package mapping

import (
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/models"
)

// ToModelBeneficiary converts a domain Beneficiary to its row model.
func ToModelBeneficiary(d domain.Beneficiary) models.Beneficiary {
	return models.Beneficiary{
		BeneficiaryID:     d.BeneficiaryID,
		UserID:            d.UserID,
		DisplayName:       d.DisplayName,
		MobileNumber:      d.MobileNumber,
		AadhaarNumber:     d.AadhaarNumber,
		Category:          d.Category,
		District:          d.District,
		BankAccountNumber: d.BankAccount.AccountNumber,
		BankIFSCCode:      d.BankAccount.IFSCCode,
		BankName:          d.BankAccount.BankName,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
}

// ToDomainBeneficiary converts a row model back to a domain Beneficiary.
func ToDomainBeneficiary(m models.Beneficiary) domain.Beneficiary {
	return domain.Beneficiary{
		BeneficiaryID: m.BeneficiaryID,
		UserID:        m.UserID,
		DisplayName:   m.DisplayName,
		MobileNumber:  m.MobileNumber,
		AadhaarNumber: m.AadhaarNumber,
		Category:      m.Category,
		District:      m.District,
		BankAccount: domain.BankAccount{
			AccountNumber: m.BankAccountNumber,
			IFSCCode:      m.BankIFSCCode,
			BankName:      m.BankName,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}
