package domain

import "time"

// AuditAction is the fixed vocabulary of state-changing actions recorded in
// the audit trail.
type AuditAction string

const (
	ActionApplicationSubmitted AuditAction = "APPLICATION_SUBMITTED"
	ActionApplicationReviewed  AuditAction = "APPLICATION_REVIEWED"
	ActionApplicationApproved  AuditAction = "APPLICATION_APPROVED"
	ActionApplicationRejected  AuditAction = "APPLICATION_REJECTED"
	ActionPaymentInitiated     AuditAction = "PAYMENT_INITIATED"
	ActionPaymentCompleted     AuditAction = "PAYMENT_COMPLETED"
	ActionPaymentFailed        AuditAction = "PAYMENT_FAILED"
	ActionDocumentUploaded     AuditAction = "DOCUMENT_UPLOADED"
	ActionDocumentVerified     AuditAction = "DOCUMENT_VERIFIED"
	ActionProfileUpdated       AuditAction = "PROFILE_UPDATED"
	ActionUserLogin            AuditAction = "USER_LOGIN"
	ActionUserLoginFailed      AuditAction = "USER_LOGIN_FAILED"
	ActionRoleChanged          AuditAction = "ROLE_CHANGED"
)

// SecurityActions is the allow-list used by the security-event read path.
var SecurityActions = []AuditAction{
	ActionUserLogin,
	ActionUserLoginFailed,
	ActionRoleChanged,
	ActionApplicationApproved,
	ActionApplicationRejected,
	ActionPaymentInitiated,
	ActionPaymentCompleted,
	ActionPaymentFailed,
}

// ResourceType identifies what kind of resource an audit entry targets.
type ResourceType string

const (
	ResourceApplication        ResourceType = "APPLICATION"
	ResourcePayment            ResourceType = "PAYMENT"
	ResourceUser               ResourceType = "USER"
	ResourceBeneficiaryProfile ResourceType = "BENEFICIARY_PROFILE"
)

// TargetResource is a polymorphic reference to the resource an action was
// performed on. No foreign-key relationship is enforced at write time so
// that auditing never blocks on a lookup.
type TargetResource struct {
	Type ResourceType `json:"type"`
	ID   string       `json:"id"`
}

// AuditLogEntry is one append-only record of a state-changing action.
// Entries are never updated; deletion happens only through the retention sweep.
type AuditLogEntry struct {
	EntryID        string         `json:"entryID"`
	Action         AuditAction    `json:"action"`
	PerformedBy    string         `json:"performedBy"`
	TargetResource TargetResource `json:"targetResource"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	IPAddress      string         `json:"ipAddress"`
	UserAgent      string         `json:"userAgent"`
	Timestamp      time.Time      `json:"timestamp"`
}
