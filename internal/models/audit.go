package models

import "time"

// AuditLogEntry is the row shape of the audit_log table. Rows are written
// once and only deleted by the retention sweep; no audit columns beyond the
// write timestamp are needed.
type AuditLogEntry struct {
	EntryID      string    `db:"entry_id"`
	Action       string    `db:"action"`
	PerformedBy  string    `db:"performed_by"`
	ResourceType string    `db:"resource_type"`
	ResourceID   string    `db:"resource_id"`
	Metadata     []byte    `db:"metadata"` // JSONB
	IPAddress    string    `db:"ip_address"`
	UserAgent    string    `db:"user_agent"`
	Timestamp    time.Time `db:"timestamp"`
}
