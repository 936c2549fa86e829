package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/metrics"
	"github.com/janseva/benefits_portal_app/internal/middleware"
)

// AuditService is the single write path into the audit trail plus its read
// and retention surfaces. Writes are append-only; the retention sweep is the
// only delete path.
type AuditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
	metrics   *metrics.Metrics
}

func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade, m *metrics.Metrics) *AuditService {
	return &AuditService{auditRepo: auditRepo, metrics: m}
}

// defaultRetentionDays is seven years, the statutory minimum for
// disbursement records.
const defaultRetentionDays = 2555

func (s *AuditService) Record(ctx context.Context, action domain.AuditAction, performedBy string, target domain.TargetResource, meta dto.RequestMeta, metadata map[string]any) (*domain.AuditLogEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ip := meta.IPAddress
	if ip == "" {
		ip = "127.0.0.1"
	}

	if meta.UserAgent != "" {
		if metadata == nil {
			metadata = map[string]any{}
		}
		if _, exists := metadata["device"]; !exists {
			metadata["device"] = summarizeUserAgent(meta.UserAgent)
		}
	}

	entry := domain.AuditLogEntry{
		EntryID:        uuid.NewString(),
		Action:         action,
		PerformedBy:    performedBy,
		TargetResource: target,
		Metadata:       metadata,
		IPAddress:      ip,
		UserAgent:      meta.UserAgent,
		Timestamp:      time.Now(),
	}

	if err := s.auditRepo.AppendEntry(ctx, entry); err != nil {
		logger.Error("failed to append audit entry", "action", string(action), "error", err)
		return nil, fmt.Errorf("failed to record audit entry: %w", err)
	}

	s.metrics.IncrementAuditEntry(string(action))
	return &entry, nil
}

func (s *AuditService) ListEntriesByUser(ctx context.Context, performedBy string, params dto.ListAuditEntriesParams) ([]domain.AuditLogEntry, error) {
	return s.auditRepo.FindEntriesByUser(ctx, performedBy, params.Limit, params.Offset)
}

func (s *AuditService) ListEntriesByTarget(ctx context.Context, target domain.TargetResource, params dto.ListAuditEntriesParams) ([]domain.AuditLogEntry, error) {
	return s.auditRepo.FindEntriesByTarget(ctx, target, params.Limit, params.Offset)
}

func (s *AuditService) ListSecurityEvents(ctx context.Context, params dto.SecurityEventsParams) ([]domain.AuditLogEntry, error) {
	return s.auditRepo.FindSecurityEvents(ctx, domain.SecurityActions, params.From, params.To, params.Limit)
}

func (s *AuditService) SearchEntries(ctx context.Context, params dto.AuditSearchParams) ([]domain.AuditLogEntry, error) {
	filter := portsrepo.AuditSearchFilter{
		Action:       domain.AuditAction(params.Action),
		ResourceType: domain.ResourceType(params.ResourceType),
		IPAddress:    params.IPAddress,
		From:         params.From,
		To:           params.To,
	}
	return s.auditRepo.SearchEntries(ctx, filter, params.Limit, params.Offset)
}

func (s *AuditService) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if days <= 0 {
		days = defaultRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	deleted, err := s.auditRepo.DeleteEntriesBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit entries: %w", err)
	}

	logger.Info("purged audit entries", "cutoff", cutoff, "deleted", deleted)
	return deleted, nil
}

// summarizeUserAgent renders "Chrome 120 on Windows 10" style strings for
// the metadata payload; raw user agents stay on the entry itself.
func summarizeUserAgent(raw string) string {
	ua := useragent.New(raw)
	name, version := ua.Browser()
	if name == "" {
		return raw
	}
	summary := name
	if version != "" {
		summary += " " + version
	}
	if os := ua.OS(); os != "" {
		summary += " on " + os
	}
	return summary
}
