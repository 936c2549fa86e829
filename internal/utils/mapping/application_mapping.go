package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/models"
)

// ToModelApplication converts a domain Application to its row model,
// marshalling the document list and variant sub-document to JSONB.
func ToModelApplication(d domain.Application) (models.Application, error) {
	docs, err := json.Marshal(d.Documents)
	if err != nil {
		return models.Application{}, fmt.Errorf("failed to marshal documents: %w", err)
	}

	m := models.Application{
		ApplicationID:     d.ApplicationID,
		ApplicationType:   string(d.ApplicationType),
		BeneficiaryID:     d.BeneficiaryID,
		ApplicationStatus: string(d.ApplicationStatus),
		AssignedOfficer:   d.AssignedOfficer,
		SubmittedAt:       d.SubmittedAt,
		ReviewedAt:        d.ReviewedAt,
		ApprovedAmount:    d.ApprovedAmount,
		RejectionReason:   d.RejectionReason,
		Documents:         docs,
		Version:           d.Version,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}

	if d.MarriageDetails != nil {
		b, err := json.Marshal(d.MarriageDetails)
		if err != nil {
			return models.Application{}, fmt.Errorf("failed to marshal marriage details: %w", err)
		}
		m.MarriageDetails = b
	}
	if d.FIRDetails != nil {
		b, err := json.Marshal(d.FIRDetails)
		if err != nil {
			return models.Application{}, fmt.Errorf("failed to marshal FIR details: %w", err)
		}
		m.FIRDetails = b
	}

	return m, nil
}

// ToDomainApplication converts a row model back to a domain Application.
func ToDomainApplication(m models.Application) (domain.Application, error) {
	d := domain.Application{
		ApplicationID:     m.ApplicationID,
		ApplicationType:   domain.ApplicationType(m.ApplicationType),
		BeneficiaryID:     m.BeneficiaryID,
		ApplicationStatus: domain.ApplicationStatus(m.ApplicationStatus),
		AssignedOfficer:   m.AssignedOfficer,
		SubmittedAt:       m.SubmittedAt,
		ReviewedAt:        m.ReviewedAt,
		ApprovedAmount:    m.ApprovedAmount,
		RejectionReason:   m.RejectionReason,
		Version:           m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}

	if len(m.Documents) > 0 {
		if err := json.Unmarshal(m.Documents, &d.Documents); err != nil {
			return domain.Application{}, fmt.Errorf("failed to unmarshal documents for %s: %w", m.ApplicationID, err)
		}
	}
	if len(m.MarriageDetails) > 0 {
		d.MarriageDetails = &domain.MarriageDetails{}
		if err := json.Unmarshal(m.MarriageDetails, d.MarriageDetails); err != nil {
			return domain.Application{}, fmt.Errorf("failed to unmarshal marriage details for %s: %w", m.ApplicationID, err)
		}
	}
	if len(m.FIRDetails) > 0 {
		d.FIRDetails = &domain.FIRDetails{}
		if err := json.Unmarshal(m.FIRDetails, d.FIRDetails); err != nil {
			return domain.Application{}, fmt.Errorf("failed to unmarshal FIR details for %s: %w", m.ApplicationID, err)
		}
	}

	return d, nil
}

// ToDomainApplicationSlice converts a slice of row models.
func ToDomainApplicationSlice(ms []models.Application) ([]domain.Application, error) {
	ds := make([]domain.Application, len(ms))
	for i, m := range ms {
		d, err := ToDomainApplication(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
