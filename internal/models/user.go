package models

import "time"

// User is the row shape of the users table. Beneficiary accounts have no
// password hash; they authenticate via OTP.
type User struct {
	UserID       string  `db:"user_id"`
	Username     string  `db:"username"`
	PasswordHash *string `db:"password_hash"`
	Name         string  `db:"name"`
	MobileNumber string  `db:"mobile_number"`
	Role         string  `db:"role"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
