package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/janseva/benefits_portal_app/internal/apperrors"
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
	"github.com/janseva/benefits_portal_app/internal/models"
	"github.com/janseva/benefits_portal_app/internal/utils/mapping"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(db *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository{Pool: db}}
}

// Ensure PgxAuditRepository implements the facade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

const auditColumns = `
	entry_id, action, performed_by, resource_type, resource_id,
	metadata, ip_address, user_agent, "timestamp"`

func scanAuditRow(row pgx.Row) (models.AuditLogEntry, error) {
	var m models.AuditLogEntry
	err := row.Scan(
		&m.EntryID,
		&m.Action,
		&m.PerformedBy,
		&m.ResourceType,
		&m.ResourceID,
		&m.Metadata,
		&m.IPAddress,
		&m.UserAgent,
		&m.Timestamp,
	)
	return m, err
}

func (r *PgxAuditRepository) AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	m, err := mapping.ToModelAuditEntry(entry)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO audit_log (
			entry_id, action, performed_by, resource_type, resource_id,
			metadata, ip_address, user_agent, "timestamp"
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.EntryID,
		m.Action,
		m.PerformedBy,
		m.ResourceType,
		m.ResourceID,
		m.Metadata,
		m.IPAddress,
		m.UserAgent,
		m.Timestamp,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("audit entry %s: %w", entry.EntryID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (r *PgxAuditRepository) FindEntriesByUser(ctx context.Context, performedBy string, limit, offset int) ([]domain.AuditLogEntry, error) {
	query := `SELECT ` + auditColumns + `
		FROM audit_log
		WHERE performed_by = $1
		ORDER BY "timestamp" DESC, entry_id DESC
		LIMIT $2 OFFSET $3;`
	return r.queryEntries(ctx, query, performedBy, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *PgxAuditRepository) FindEntriesByTarget(ctx context.Context, target domain.TargetResource, limit, offset int) ([]domain.AuditLogEntry, error) {
	query := `SELECT ` + auditColumns + `
		FROM audit_log
		WHERE resource_type = $1 AND resource_id = $2
		ORDER BY "timestamp" DESC, entry_id DESC
		LIMIT $3 OFFSET $4;`
	return r.queryEntries(ctx, query, string(target.Type), target.ID, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *PgxAuditRepository) FindSecurityEvents(ctx context.Context, actions []domain.AuditAction, from, to time.Time, limit int) ([]domain.AuditLogEntry, error) {
	actionStrs := make([]string, len(actions))
	for i, a := range actions {
		actionStrs[i] = string(a)
	}

	query := `SELECT ` + auditColumns + `
		FROM audit_log
		WHERE action = ANY($1) AND "timestamp" >= $2 AND "timestamp" <= $3
		ORDER BY "timestamp" DESC, entry_id DESC
		LIMIT $4;`
	return r.queryEntries(ctx, query, actionStrs, from, to, normalizeLimit(limit))
}

// SearchEntries builds the WHERE clause from the non-zero filter fields.
func (r *PgxAuditRepository) SearchEntries(ctx context.Context, filter portsrepo.AuditSearchFilter, limit, offset int) ([]domain.AuditLogEntry, error) {
	conditions := []string{}
	args := []any{}

	addCondition := func(clause string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Action != "" {
		addCondition(`action = $%d`, string(filter.Action))
	}
	if filter.ResourceType != "" {
		addCondition(`resource_type = $%d`, string(filter.ResourceType))
	}
	if filter.IPAddress != "" {
		addCondition(`ip_address = $%d`, filter.IPAddress)
	}
	if !filter.From.IsZero() {
		addCondition(`"timestamp" >= $%d`, filter.From)
	}
	if !filter.To.IsZero() {
		addCondition(`"timestamp" <= $%d`, filter.To)
	}

	query := `SELECT ` + auditColumns + ` FROM audit_log`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += fmt.Sprintf(` ORDER BY "timestamp" DESC, entry_id DESC LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)
	args = append(args, normalizeLimit(limit), normalizeOffset(offset))

	return r.queryEntries(ctx, query, args...)
}

func (r *PgxAuditRepository) DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM audit_log WHERE "timestamp" < $1;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete audit entries before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *PgxAuditRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.AuditLogEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditLogEntry{}
	for rows.Next() {
		m, err := scanAuditRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		d, err := mapping.ToDomainAuditEntry(m)
		if err != nil {
			return nil, err
		}
		entries = append(entries, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit rows: %w", rows.Err())
	}
	return entries, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
