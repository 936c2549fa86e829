package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository to one shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ApplicationRepo: newPgxApplicationRepository(db),
		PaymentRepo:     newPgxPaymentRepository(db),
		AuditRepo:       newPgxAuditRepository(db),
		BeneficiaryRepo: newPgxBeneficiaryRepository(db),
		UserRepo:        newPgxUserRepository(db),
	}
}
