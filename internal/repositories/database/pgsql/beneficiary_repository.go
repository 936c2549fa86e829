package pgsql

import (
	"context"
	"errors"
	"fmt"
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

type PgxBeneficiaryRepository struct {
	BaseRepository
}

func newPgxBeneficiaryRepository(db *pgxpool.Pool) portsrepo.BeneficiaryRepositoryFacade {
	return &PgxBeneficiaryRepository{BaseRepository{Pool: db}}
}

// Ensure PgxBeneficiaryRepository implements the facade
var _ portsrepo.BeneficiaryRepositoryFacade = (*PgxBeneficiaryRepository)(nil)

const beneficiaryColumns = `
	beneficiary_id, user_id, display_name, mobile_number, aadhaar_number,
	category, district, bank_account_number, bank_ifsc_code, bank_name,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanBeneficiaryRow(row pgx.Row) (models.Beneficiary, error) {
	var m models.Beneficiary
	err := row.Scan(
		&m.BeneficiaryID,
		&m.UserID,
		&m.DisplayName,
		&m.MobileNumber,
		&m.AadhaarNumber,
		&m.Category,
		&m.District,
		&m.BankAccountNumber,
		&m.BankIFSCCode,
		&m.BankName,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxBeneficiaryRepository) SaveBeneficiary(ctx context.Context, b domain.Beneficiary) error {
	m := mapping.ToModelBeneficiary(b)

	query := `
		INSERT INTO beneficiaries (
			beneficiary_id, user_id, display_name, mobile_number, aadhaar_number,
			category, district, bank_account_number, bank_ifsc_code, bank_name,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BeneficiaryID,
		m.UserID,
		m.DisplayName,
		m.MobileNumber,
		m.AadhaarNumber,
		m.Category,
		m.District,
		m.BankAccountNumber,
		m.BankIFSCCode,
		m.BankName,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("beneficiary %s: %w", b.BeneficiaryID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save beneficiary: %w", err)
	}
	return nil
}

func (r *PgxBeneficiaryRepository) UpdateBeneficiary(ctx context.Context, b domain.Beneficiary) error {
	m := mapping.ToModelBeneficiary(b)

	query := `
		UPDATE beneficiaries
		SET display_name = $1,
			mobile_number = $2,
			category = $3,
			district = $4,
			bank_account_number = $5,
			bank_ifsc_code = $6,
			bank_name = $7,
			last_updated_at = $8,
			last_updated_by = $9
		WHERE beneficiary_id = $10 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.DisplayName,
		m.MobileNumber,
		m.Category,
		m.District,
		m.BankAccountNumber,
		m.BankIFSCCode,
		m.BankName,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.BeneficiaryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update beneficiary %s: %w", b.BeneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBeneficiaryRepository) MarkBeneficiaryDeleted(ctx context.Context, beneficiaryID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE beneficiaries
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE beneficiary_id = $3 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, beneficiaryID)
	if err != nil {
		return fmt.Errorf("failed to mark beneficiary %s deleted: %w", beneficiaryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE beneficiary_id = $1 AND deleted_at IS NULL;`
	return r.findOne(ctx, query, beneficiaryID)
}

func (r *PgxBeneficiaryRepository) FindBeneficiaryByUserID(ctx context.Context, userID string) (*domain.Beneficiary, error) {
	query := `SELECT ` + beneficiaryColumns + ` FROM beneficiaries WHERE user_id = $1 AND deleted_at IS NULL;`
	return r.findOne(ctx, query, userID)
}

func (r *PgxBeneficiaryRepository) findOne(ctx context.Context, query string, arg string) (*domain.Beneficiary, error) {
	m, err := scanBeneficiaryRow(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find beneficiary: %w", err)
	}
	d := mapping.ToDomainBeneficiary(m)
	return &d, nil
}
