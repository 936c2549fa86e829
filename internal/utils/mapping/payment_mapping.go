package mapping

import (
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/models"
)

// ToModelPayment converts a domain PaymentTransaction to its row model.
func ToModelPayment(d domain.PaymentTransaction) models.PaymentTransaction {
	return models.PaymentTransaction{
		TransactionID: d.TransactionID,
		ApplicationID: d.ApplicationID,
		BeneficiaryID: d.BeneficiaryID,
		Amount:        d.Amount,
		PaymentStatus: string(d.PaymentStatus),
		Remarks:       d.Remarks,
		InitiatedAt:   d.InitiatedAt,
		CompletedAt:   d.CompletedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainPayment converts a row model back to a domain PaymentTransaction.
func ToDomainPayment(m models.PaymentTransaction) domain.PaymentTransaction {
	return domain.PaymentTransaction{
		TransactionID: m.TransactionID,
		ApplicationID: m.ApplicationID,
		BeneficiaryID: m.BeneficiaryID,
		Amount:        m.Amount,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		Remarks:       m.Remarks,
		InitiatedAt:   m.InitiatedAt,
		CompletedAt:   m.CompletedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainPaymentSlice converts a slice of row models.
func ToDomainPaymentSlice(ms []models.PaymentTransaction) []domain.PaymentTransaction {
	ds := make([]domain.PaymentTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
