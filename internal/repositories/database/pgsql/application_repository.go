package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/janseva/benefits_portal_app/internal/apperrors"
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
	"github.com/janseva/benefits_portal_app/internal/models"
	"github.com/janseva/benefits_portal_app/internal/utils/mapping"
	"github.com/janseva/benefits_portal_app/internal/utils/pagination"
)

type PgxApplicationRepository struct {
	BaseRepository
}

func newPgxApplicationRepository(db *pgxpool.Pool) portsrepo.ApplicationRepositoryFacade {
	return &PgxApplicationRepository{BaseRepository{Pool: db}}
}

// Ensure PgxApplicationRepository implements the facade
var _ portsrepo.ApplicationRepositoryFacade = (*PgxApplicationRepository)(nil)

const applicationColumns = `
	application_id, application_type, beneficiary_id, application_status,
	assigned_officer, submitted_at, reviewed_at, approved_amount, rejection_reason,
	documents, marriage_details, fir_details, version,
	created_at, created_by, last_updated_at, last_updated_by`

func scanApplicationRow(row pgx.Row) (models.Application, error) {
	var m models.Application
	err := row.Scan(
		&m.ApplicationID,
		&m.ApplicationType,
		&m.BeneficiaryID,
		&m.ApplicationStatus,
		&m.AssignedOfficer,
		&m.SubmittedAt,
		&m.ReviewedAt,
		&m.ApprovedAmount,
		&m.RejectionReason,
		&m.Documents,
		&m.MarriageDetails,
		&m.FIRDetails,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxApplicationRepository) SaveApplication(ctx context.Context, app domain.Application) error {
	m, err := mapping.ToModelApplication(app)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO applications (
			application_id, application_type, beneficiary_id, application_status,
			assigned_officer, submitted_at, reviewed_at, approved_amount, rejection_reason,
			documents, marriage_details, fir_details, version,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ApplicationID,
		m.ApplicationType,
		m.BeneficiaryID,
		m.ApplicationStatus,
		m.AssignedOfficer,
		m.SubmittedAt,
		m.ReviewedAt,
		m.ApprovedAmount,
		m.RejectionReason,
		m.Documents,
		m.MarriageDetails,
		m.FIRDetails,
		m.Version,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("application id %s: %w", app.ApplicationID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

// UpdateApplication persists the mutable fields using optimistic concurrency:
// the row is matched on (application_id, version) and the version advances by
// one. Zero rows affected means either a missing row or a lost race.
func (r *PgxApplicationRepository) UpdateApplication(ctx context.Context, app domain.Application) error {
	m, err := mapping.ToModelApplication(app)
	if err != nil {
		return err
	}

	query := `
		UPDATE applications
		SET application_status = $1,
			assigned_officer = $2,
			submitted_at = $3,
			reviewed_at = $4,
			approved_amount = $5,
			rejection_reason = $6,
			documents = $7,
			marriage_details = $8,
			fir_details = $9,
			version = version + 1,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE application_id = $12 AND version = $13;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ApplicationStatus,
		m.AssignedOfficer,
		m.SubmittedAt,
		m.ReviewedAt,
		m.ApprovedAmount,
		m.RejectionReason,
		m.Documents,
		m.MarriageDetails,
		m.FIRDetails,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ApplicationID,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update application %s: %w", app.ApplicationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing row from a version mismatch.
		var exists bool
		if checkErr := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM applications WHERE application_id = $1)`, app.ApplicationID).Scan(&exists); checkErr != nil {
			return fmt.Errorf("failed to update application %s: %w", app.ApplicationID, checkErr)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("application %s was modified concurrently: %w", app.ApplicationID, apperrors.ErrConflict)
	}
	return nil
}

func (r *PgxApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE application_id = $1;`

	m, err := scanApplicationRow(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application by ID %s: %w", applicationID, err)
	}

	d, err := mapping.ToDomainApplication(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxApplicationRepository) ListApplicationsByBeneficiary(ctx context.Context, beneficiaryID string, limit int, nextToken *string) ([]domain.Application, *string, error) {
	return r.listApplications(ctx, `beneficiary_id = $1`, beneficiaryID, limit, nextToken)
}

func (r *PgxApplicationRepository) ListApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus, limit int, nextToken *string) ([]domain.Application, *string, error) {
	return r.listApplications(ctx, `application_status = $1`, string(status), limit, nextToken)
}

// listApplications runs a keyset-paginated query ordered by
// (created_at DESC, application_id DESC); the token carries the last row's
// sort key.
func (r *PgxApplicationRepository) listApplications(ctx context.Context, where string, whereArg string, limit int, nextToken *string) ([]domain.Application, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{whereArg}
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE ` + where

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, application_id) < ($2, $3)`
		args = append(args, createdAt, id)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, application_id DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	modelApps := []models.Application{}
	for rows.Next() {
		m, err := scanApplicationRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		modelApps = append(modelApps, m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating application rows: %w", rows.Err())
	}

	var token *string
	if len(modelApps) > limit {
		modelApps = modelApps[:limit]
		last := modelApps[len(modelApps)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.ApplicationID)
		token = &t
	}

	apps, err := mapping.ToDomainApplicationSlice(modelApps)
	if err != nil {
		return nil, nil, err
	}
	return apps, token, nil
}

func (r *PgxApplicationRepository) AppendDocument(ctx context.Context, applicationID string, doc domain.ApplicationDocument) error {
	docJSON, err := json.Marshal([]domain.ApplicationDocument{doc})
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	query := `
		UPDATE applications
		SET documents = COALESCE(documents, '[]'::jsonb) || $1::jsonb,
			last_updated_at = $2
		WHERE application_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, docJSON, doc.UploadedAt, applicationID)
	if err != nil {
		return fmt.Errorf("failed to append document to %s: %w", applicationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateDocumentVerification rewrites the document list in Go rather than
// reaching for index-addressed jsonb_set gymnastics; the row is locked for
// the duration of the read-modify-write.
func (r *PgxApplicationRepository) UpdateDocumentVerification(ctx context.Context, applicationID string, documentID string, status domain.VerificationStatus) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var docsRaw []byte
	err = tx.QueryRow(ctx, `SELECT documents FROM applications WHERE application_id = $1 FOR UPDATE`, applicationID).Scan(&docsRaw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load documents for %s: %w", applicationID, err)
	}

	docs := []domain.ApplicationDocument{}
	if len(docsRaw) > 0 {
		if err := json.Unmarshal(docsRaw, &docs); err != nil {
			return fmt.Errorf("failed to unmarshal documents for %s: %w", applicationID, err)
		}
	}

	found := false
	for i := range docs {
		if docs[i].DocumentID == documentID {
			docs[i].VerificationStatus = status
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("document %s not found on application %s: %w", documentID, applicationID, apperrors.ErrNotFound)
	}

	docsJSON, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to marshal documents: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE applications SET documents = $1 WHERE application_id = $2`, docsJSON, applicationID); err != nil {
		return fmt.Errorf("failed to update document verification on %s: %w", applicationID, err)
	}
	return r.Commit(ctx, tx)
}
