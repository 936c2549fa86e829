package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/models"
)

// ToModelAuditEntry converts a domain AuditLogEntry to its row model.
func ToModelAuditEntry(d domain.AuditLogEntry) (models.AuditLogEntry, error) {
	var metadata []byte
	if d.Metadata != nil {
		b, err := json.Marshal(d.Metadata)
		if err != nil {
			return models.AuditLogEntry{}, fmt.Errorf("failed to marshal audit metadata: %w", err)
		}
		metadata = b
	}

	return models.AuditLogEntry{
		EntryID:      d.EntryID,
		Action:       string(d.Action),
		PerformedBy:  d.PerformedBy,
		ResourceType: string(d.TargetResource.Type),
		ResourceID:   d.TargetResource.ID,
		Metadata:     metadata,
		IPAddress:    d.IPAddress,
		UserAgent:    d.UserAgent,
		Timestamp:    d.Timestamp,
	}, nil
}

// ToDomainAuditEntry converts a row model back to a domain AuditLogEntry.
func ToDomainAuditEntry(m models.AuditLogEntry) (domain.AuditLogEntry, error) {
	d := domain.AuditLogEntry{
		EntryID:     m.EntryID,
		Action:      domain.AuditAction(m.Action),
		PerformedBy: m.PerformedBy,
		TargetResource: domain.TargetResource{
			Type: domain.ResourceType(m.ResourceType),
			ID:   m.ResourceID,
		},
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		Timestamp: m.Timestamp,
	}

	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &d.Metadata); err != nil {
			return domain.AuditLogEntry{}, fmt.Errorf("failed to unmarshal audit metadata for %s: %w", m.EntryID, err)
		}
	}

	return d, nil
}

// ToDomainAuditEntrySlice converts a slice of row models.
func ToDomainAuditEntrySlice(ms []models.AuditLogEntry) ([]domain.AuditLogEntry, error) {
	ds := make([]domain.AuditLogEntry, len(ms))
	for i, m := range ms {
		d, err := ToDomainAuditEntry(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
