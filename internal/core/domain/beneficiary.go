package domain

import "time"

// BankAccount holds the disbursement destination for a beneficiary.
type BankAccount struct {
	AccountNumber string `json:"accountNumber"`
	IFSCCode      string `json:"ifscCode"`
	BankName      string `json:"bankName"`
}

// Beneficiary is the citizen profile on whose behalf applications are filed.
// One beneficiary may hold many applications.
type Beneficiary struct {
	BeneficiaryID string      `json:"beneficiaryID"`
	UserID        string      `json:"userID"`
	DisplayName   string      `json:"displayName"`
	MobileNumber  string      `json:"mobileNumber"`
	AadhaarNumber string      `json:"aadhaarNumber"` // masked everywhere except storage
	Category      string      `json:"category"`
	District      string      `json:"district"`
	BankAccount   BankAccount `json:"bankAccount"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
