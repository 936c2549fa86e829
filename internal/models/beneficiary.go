package models

import "time"

// Beneficiary is the row shape of the beneficiaries table.
type Beneficiary struct {
	BeneficiaryID     string `db:"beneficiary_id"`
	UserID            string `db:"user_id"`
	DisplayName       string `db:"display_name"`
	MobileNumber      string `db:"mobile_number"`
	AadhaarNumber     string `db:"aadhaar_number"`
	Category          string `db:"category"`
	District          string `db:"district"`
	BankAccountNumber string `db:"bank_account_number"`
	BankIFSCCode      string `db:"bank_ifsc_code"`
	BankName          string `db:"bank_name"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
