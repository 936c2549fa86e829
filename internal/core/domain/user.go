package domain

import "time"

// UserRole controls what a signed-in principal may do.
type UserRole string

const (
	RoleBeneficiary UserRole = "BENEFICIARY"
	RoleOfficer     UserRole = "OFFICER"
	RoleAdmin       UserRole = "ADMIN"
)

// User is an authenticated principal: a citizen signing in via OTP or an
// officer/admin signing in with a password.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	MobileNumber string   `json:"mobileNumber"`
	Role         UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
