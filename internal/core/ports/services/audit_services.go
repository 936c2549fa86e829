package services

import (
	"context"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/dto"
)

// AuditRecorderSvc is the single write path into the audit trail. It is a
// pure write-through: callers choose the action vocabulary term and the
// target resource shape, and no existence check is performed on the target
// so that auditing never blocks on a foreign lookup.
type AuditRecorderSvc interface {
	// Record persists one audit entry and returns the created record.
	Record(ctx context.Context, action domain.AuditAction, performedBy string, target domain.TargetResource, meta dto.RequestMeta, metadata map[string]any) (*domain.AuditLogEntry, error)
}

// AuditReaderSvc defines the query paths over the audit trail.
type AuditReaderSvc interface {
	// ListEntriesByUser lists entries performed by one principal, newest first.
	ListEntriesByUser(ctx context.Context, performedBy string, params dto.ListAuditEntriesParams) ([]domain.AuditLogEntry, error)

	// ListEntriesByTarget lists entries targeting one resource, newest first.
	ListEntriesByTarget(ctx context.Context, target domain.TargetResource, params dto.ListAuditEntriesParams) ([]domain.AuditLogEntry, error)

	// ListSecurityEvents lists security-relevant entries in a time window.
	ListSecurityEvents(ctx context.Context, params dto.SecurityEventsParams) ([]domain.AuditLogEntry, error)

	// SearchEntries lists entries matching the filter, newest first.
	SearchEntries(ctx context.Context, params dto.AuditSearchParams) ([]domain.AuditLogEntry, error)
}

// AuditRetentionSvc is the retention sweep.
type AuditRetentionSvc interface {
	// PurgeOlderThan deletes entries older than the given day count and
	// returns the number deleted. Zero days means the default retention
	// window of seven years.
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
}

// AuditSvcFacade combines all audit service interfaces.
type AuditSvcFacade interface {
	AuditRecorderSvc
	AuditReaderSvc
	AuditRetentionSvc
}
