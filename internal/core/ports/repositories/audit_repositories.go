package repositories

import (
	"context"
	"time"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
)

// AuditSearchFilter narrows the filtered audit search. Zero values mean
// "no constraint" for that field.
type AuditSearchFilter struct {
	Action       domain.AuditAction
	ResourceType domain.ResourceType
	IPAddress    string
	From         time.Time
	To           time.Time
}

// AuditAppender is the single write path into the audit trail.
type AuditAppender interface {
	// AppendEntry persists one audit entry. Entries are never updated.
	AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error
}

// AuditReader defines the query paths over the audit trail. Reads share no
// mutable state with the append path.
type AuditReader interface {
	// FindEntriesByUser retrieves entries performed by one principal,
	// newest first, offset-paginated.
	FindEntriesByUser(ctx context.Context, performedBy string, limit, offset int) ([]domain.AuditLogEntry, error)

	// FindEntriesByTarget retrieves entries targeting one resource,
	// newest first, offset-paginated.
	FindEntriesByTarget(ctx context.Context, target domain.TargetResource, limit, offset int) ([]domain.AuditLogEntry, error)

	// FindSecurityEvents retrieves entries within [from, to] whose action is
	// in the given allow-list, newest first.
	FindSecurityEvents(ctx context.Context, actions []domain.AuditAction, from, to time.Time, limit int) ([]domain.AuditLogEntry, error)

	// SearchEntries retrieves entries matching the filter, newest first.
	SearchEntries(ctx context.Context, filter AuditSearchFilter, limit, offset int) ([]domain.AuditLogEntry, error)
}

// AuditRetention is the only sanctioned delete path.
type AuditRetention interface {
	// DeleteEntriesBefore removes entries older than cutoff and returns the
	// number deleted.
	DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditRepositoryFacade combines all audit repository interfaces.
type AuditRepositoryFacade interface {
	AuditAppender
	AuditReader
	AuditRetention
}
