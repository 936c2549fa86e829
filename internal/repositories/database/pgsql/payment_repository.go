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

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: db}}
}

// Ensure PgxPaymentRepository implements the facade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `
	transaction_id, application_id, beneficiary_id, amount, payment_status,
	remarks, initiated_at, completed_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPaymentRow(row pgx.Row) (models.PaymentTransaction, error) {
	var m models.PaymentTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.ApplicationID,
		&m.BeneficiaryID,
		&m.Amount,
		&m.PaymentStatus,
		&m.Remarks,
		&m.InitiatedAt,
		&m.CompletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentTransaction) error {
	m := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payment_transactions (
			transaction_id, application_id, beneficiary_id, amount, payment_status,
			remarks, initiated_at, completed_at,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.ApplicationID,
		m.BeneficiaryID,
		m.Amount,
		m.PaymentStatus,
		m.Remarks,
		m.InitiatedAt,
		m.CompletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("transaction id %s: %w", payment.TransactionID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

// UpdatePaymentStatus writes the new status and remarks. The completion time
// uses COALESCE so the first recorded value wins across repeated settlement
// callbacks.
func (r *PgxPaymentRepository) UpdatePaymentStatus(ctx context.Context, transactionID string, status domain.PaymentStatus, remarks string, completedAt *time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE payment_transactions
		SET payment_status = $1,
			remarks = $2,
			completed_at = COALESCE(completed_at, $3),
			last_updated_at = $4,
			last_updated_by = $5
		WHERE transaction_id = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), remarks, completedAt, updatedAt, updatedBy, transactionID)
	if err != nil {
		return fmt.Errorf("failed to update payment status for %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE transaction_id = $1;`

	m, err := scanPaymentRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by transaction ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

func (r *PgxPaymentRepository) FindPaymentsByApplicationID(ctx context.Context, applicationID string) ([]domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE application_id = $1 ORDER BY initiated_at DESC, transaction_id DESC;`

	rows, err := r.Pool.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for application %s: %w", applicationID, err)
	}
	defer rows.Close()

	payments := []domain.PaymentTransaction{}
	for rows.Next() {
		m, err := scanPaymentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, nil
}
