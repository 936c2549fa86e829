package services

import (
	"context"
	"fmt"
	"time"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
	"github.com/janseva/benefits_portal_app/internal/dto"
)

// TimelineService reconstructs a human-readable history for one application
// from the entity's own timestamps and its payment records. Read-only.
type TimelineService struct {
	applicationRepo portsrepo.ApplicationReader
	paymentRepo     portsrepo.PaymentReader
}

func NewTimelineService(applicationRepo portsrepo.ApplicationReader, paymentRepo portsrepo.PaymentReader) *TimelineService {
	return &TimelineService{applicationRepo: applicationRepo, paymentRepo: paymentRepo}
}

func (s *TimelineService) ProjectTimeline(ctx context.Context, applicationID string) (*dto.TimelineResponse, error) {
	app, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindPaymentsByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for timeline of %s: %w", applicationID, err)
	}

	stages := []dto.TimelineStage{}

	submittedDate := app.CreatedAt
	if app.SubmittedAt != nil {
		submittedDate = *app.SubmittedAt
	}
	stages = append(stages, dto.TimelineStage{
		Stage:       "Application Submitted",
		Description: fmt.Sprintf("Application filed under %s", app.ApplicationType.SchemeName()),
		Date:        submittedDate,
	})

	status := app.ApplicationStatus
	if status != domain.StatusSubmitted && status != domain.StatusDraft {
		// No separate entered-review timestamp is tracked; the stage shares
		// the submission date.
		stages = append(stages, dto.TimelineStage{
			Stage:       "Under Review",
			Description: "Application taken up for verification by the reviewing authority",
			Date:        submittedDate,
		})
	}

	if status == domain.StatusApproved || status == domain.StatusRejected ||
		status == domain.StatusPaymentInitiated || status == domain.StatusCompleted {
		decisionDate := time.Now()
		if app.ReviewedAt != nil {
			decisionDate = *app.ReviewedAt
		}
		if status == domain.StatusRejected {
			description := "Application rejected"
			if app.RejectionReason != nil {
				description = fmt.Sprintf("Application rejected: %s", *app.RejectionReason)
			}
			stages = append(stages, dto.TimelineStage{
				Stage:       "Application Rejected",
				Description: description,
				Date:        decisionDate,
			})
		} else {
			description := "Application approved for disbursement"
			if app.ApprovedAmount != nil {
				description = fmt.Sprintf("Application approved for Rs. %s", app.ApprovedAmount.StringFixed(2))
			}
			stages = append(stages, dto.TimelineStage{
				Stage:       "Application Approved",
				Description: description,
				Date:        decisionDate,
			})
		}
	}

	if status == domain.StatusPaymentInitiated || status == domain.StatusCompleted {
		if p := findPaymentByStatus(payments, domain.PaymentInitiated, domain.PaymentProcessing); p != nil {
			stages = append(stages, dto.TimelineStage{
				Stage:       "Payment Initiated",
				Description: fmt.Sprintf("DBT transfer %s of Rs. %s initiated", p.TransactionID, p.Amount.StringFixed(2)),
				Date:        p.InitiatedAt,
			})
		}
	}

	if status == domain.StatusCompleted {
		if p := findPaymentByStatus(payments, domain.PaymentSuccess); p != nil {
			date := p.InitiatedAt
			if p.CompletedAt != nil {
				date = *p.CompletedAt
			}
			stages = append(stages, dto.TimelineStage{
				Stage:       "Payment Completed",
				Description: fmt.Sprintf("Rs. %s credited via transaction %s", p.Amount.StringFixed(2), p.TransactionID),
				Date:        date,
			})
		}
	}

	return &dto.TimelineResponse{ApplicationID: applicationID, Stages: stages}, nil
}

func findPaymentByStatus(payments []domain.PaymentTransaction, statuses ...domain.PaymentStatus) *domain.PaymentTransaction {
	for i := range payments {
		for _, st := range statuses {
			if payments[i].PaymentStatus == st {
				return &payments[i]
			}
		}
	}
	return nil
}
