package dto

import (
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/utils"
)

// BankAccountPayload carries disbursement account details.
type BankAccountPayload struct {
	AccountNumber string `json:"accountNumber" binding:"required"`
	IFSCCode      string `json:"ifscCode" binding:"required"`
	BankName      string `json:"bankName" binding:"required"`
}

// CreateBeneficiaryRequest defines the payload for registering a beneficiary profile.
type CreateBeneficiaryRequest struct {
	DisplayName   string             `json:"displayName" binding:"required"`
	MobileNumber  string             `json:"mobileNumber" binding:"required,indianmobile"`
	AadhaarNumber string             `json:"aadhaarNumber" binding:"required,len=12,numeric"`
	Category      string             `json:"category" binding:"required"`
	District      string             `json:"district" binding:"required"`
	BankAccount   BankAccountPayload `json:"bankAccount" binding:"required"`
}

// UpdateBeneficiaryRequest defines the mutable profile fields.
type UpdateBeneficiaryRequest struct {
	DisplayName *string             `json:"displayName,omitempty"`
	District    *string             `json:"district,omitempty"`
	BankAccount *BankAccountPayload `json:"bankAccount,omitempty"`
}

// BeneficiaryResponse defines the data returned for a profile. The Aadhaar
// number is always masked on the way out.
type BeneficiaryResponse struct {
	BeneficiaryID string `json:"beneficiaryID"`
	UserID        string `json:"userID"`
	DisplayName   string `json:"displayName"`
	MobileNumber  string `json:"mobileNumber"`
	AadhaarNumber string `json:"aadhaarNumber"`
	Category      string `json:"category"`
	District      string `json:"district"`
	BankName      string `json:"bankName"`
}

// ToBeneficiaryResponse converts a domain.Beneficiary to its response DTO.
func ToBeneficiaryResponse(b *domain.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		BeneficiaryID: b.BeneficiaryID,
		UserID:        b.UserID,
		DisplayName:   b.DisplayName,
		MobileNumber:  b.MobileNumber,
		AadhaarNumber: utils.MaskAadhaar(b.AadhaarNumber),
		Category:      b.Category,
		District:      b.District,
		BankName:      b.BankAccount.BankName,
	}
}
