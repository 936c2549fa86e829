package dto

import (
	"time"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
)

// ListAuditEntriesParams defines pagination for the audit read endpoints.
type ListAuditEntriesParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// SecurityEventsParams defines the time window for the security-event feed.
type SecurityEventsParams struct {
	From  time.Time `form:"from" binding:"required"`
	To    time.Time `form:"to" binding:"required"`
	Limit int       `form:"limit,default=100" binding:"omitempty,min=1,max=500"`
}

// AuditSearchParams defines the filtered audit search query.
type AuditSearchParams struct {
	Action       string    `form:"action"`
	ResourceType string    `form:"resourceType"`
	IPAddress    string    `form:"ip"`
	From         time.Time `form:"from"`
	To           time.Time `form:"to"`
	Limit        int       `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	Offset       int       `form:"offset,default=0" binding:"omitempty,min=0"`
}

// PurgeAuditRequest defines the retention sweep payload. Zero means the
// default retention window (seven years).
type PurgeAuditRequest struct {
	RetentionDays int `json:"retentionDays" binding:"omitempty,min=1"`
}

// AuditEntryResponse defines the data returned for one audit entry.
type AuditEntryResponse struct {
	EntryID      string         `json:"entryID"`
	Action       string         `json:"action"`
	PerformedBy  string         `json:"performedBy"`
	ResourceType string         `json:"resourceType"`
	ResourceID   string         `json:"resourceID"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IPAddress    string         `json:"ipAddress"`
	UserAgent    string         `json:"userAgent"`
	Timestamp    time.Time      `json:"timestamp"`
}

// ListAuditEntriesResponse wraps a page of audit entries.
type ListAuditEntriesResponse struct {
	Entries []AuditEntryResponse `json:"entries"`
}

// PurgeAuditResponse reports the outcome of a retention sweep.
type PurgeAuditResponse struct {
	Deleted int64 `json:"deleted"`
}

// ToAuditEntryResponse converts a domain.AuditLogEntry to its response DTO.
func ToAuditEntryResponse(e *domain.AuditLogEntry) AuditEntryResponse {
	return AuditEntryResponse{
		EntryID:      e.EntryID,
		Action:       string(e.Action),
		PerformedBy:  e.PerformedBy,
		ResourceType: string(e.TargetResource.Type),
		ResourceID:   e.TargetResource.ID,
		Metadata:     e.Metadata,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
		Timestamp:    e.Timestamp,
	}
}

// ToAuditEntryResponses converts a slice of audit entries.
func ToAuditEntryResponses(entries []domain.AuditLogEntry) []AuditEntryResponse {
	responses := make([]AuditEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToAuditEntryResponse(&entries[i])
	}
	return responses
}
