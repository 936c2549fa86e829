package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/janseva/benefits_portal_app/internal/apperrors"
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/core/services"
)

type TimelineServiceTestSuite struct {
	suite.Suite
	mockAppRepo     *MockApplicationRepository
	mockPaymentRepo *MockPaymentRepository
	service         *services.TimelineService
}

func (suite *TimelineServiceTestSuite) SetupTest() {
	suite.mockAppRepo = new(MockApplicationRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.service = services.NewTimelineService(suite.mockAppRepo, suite.mockPaymentRepo)
}

func (suite *TimelineServiceTestSuite) stubApplication(app *domain.Application, payments []domain.PaymentTransaction) {
	suite.mockAppRepo.FindApplicationByIDFn = func(ctx context.Context, id string) (*domain.Application, error) {
		return app, nil
	}
	suite.mockPaymentRepo.FindPaymentsByApplicationIDFn = func(ctx context.Context, id string) ([]domain.PaymentTransaction, error) {
		return payments, nil
	}
}

func (suite *TimelineServiceTestSuite) TestProjectTimeline_NotFound() {
	ctx := context.Background()
	suite.mockAppRepo.FindApplicationByIDFn = func(ctx context.Context, id string) (*domain.Application, error) {
		return nil, apperrors.ErrNotFound
	}

	timeline, err := suite.service.ProjectTimeline(ctx, "MAR_2025_000000")

	suite.Require().Error(err)
	suite.Nil(timeline)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TimelineServiceTestSuite) TestProjectTimeline_SubmittedHasSingleStage() {
	ctx := context.Background()
	submitted := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	app := &domain.Application{
		ApplicationID:     "MAR_2025_123456",
		ApplicationType:   domain.MarriageIncentive,
		ApplicationStatus: domain.StatusSubmitted,
		SubmittedAt:       &submitted,
		AuditFields:       domain.AuditFields{CreatedAt: submitted.Add(-time.Hour)},
	}
	suite.stubApplication(app, nil)

	timeline, err := suite.service.ProjectTimeline(ctx, app.ApplicationID)

	suite.Require().NoError(err)
	suite.Equal(app.ApplicationID, timeline.ApplicationID)
	suite.Require().Len(timeline.Stages, 1)
	suite.Equal("Application Submitted", timeline.Stages[0].Stage)
	suite.True(timeline.Stages[0].Date.Equal(submitted))
	suite.Contains(timeline.Stages[0].Description, "Inter-Caste Marriage Incentive Scheme")
}

func (suite *TimelineServiceTestSuite) TestProjectTimeline_DraftFallsBackToCreatedAt() {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	app := &domain.Application{
		ApplicationID:     "ATR_2025_654321",
		ApplicationType:   domain.AtrocityRelief,
		ApplicationStatus: domain.StatusDraft,
		AuditFields:       domain.AuditFields{CreatedAt: created},
	}
	suite.stubApplication(app, nil)

	timeline, err := suite.service.ProjectTimeline(ctx, app.ApplicationID)

	suite.Require().NoError(err)
	suite.Require().Len(timeline.Stages, 1)
	suite.True(timeline.Stages[0].Date.Equal(created))
}

func (suite *TimelineServiceTestSuite) TestProjectTimeline_UnderReviewSharesSubmissionDate() {
	ctx := context.Background()
	submitted := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	app := &domain.Application{
		ApplicationID:     "MAR_2025_123456",
		ApplicationType:   domain.MarriageIncentive,
		ApplicationStatus: domain.StatusUnderReview,
		SubmittedAt:       &submitted,
		AuditFields:       domain.AuditFields{CreatedAt: submitted},
	}
	suite.stubApplication(app, nil)

	timeline, err := suite.service.ProjectTimeline(ctx, app.ApplicationID)

	suite.Require().NoError(err)
	suite.Require().Len(timeline.Stages, 2)
	suite.Equal("Under Review", timeline.Stages[1].Stage)
	suite.True(timeline.Stages[1].Date.Equal(submitted))
}

func (suite *TimelineServiceTestSuite) TestProjectTimeline_RejectedIncludesReason() {
	ctx := context.Background()
	submitted := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reviewed := submitted.Add(48 * time.Hour)
	reason := "FIR could not be verified"
	app := &domain.Application{
		ApplicationID:     "ATR_2025_654321",
		ApplicationType:   domain.AtrocityRelief,
		ApplicationStatus: domain.StatusRejected,
		SubmittedAt:       &submitted,
		ReviewedAt:        &reviewed,
		RejectionReason:   &reason,
		AuditFields:       domain.AuditFields{CreatedAt: submitted},
	}
	suite.stubApplication(app, nil)

	timeline, err := suite.service.ProjectTimeline(ctx, app.ApplicationID)

	suite.Require().NoError(err)
	suite.Require().Len(timeline.Stages, 3)
	suite.Equal("Application Rejected", timeline.Stages[2].Stage)
	suite.Contains(timeline.Stages[2].Description, reason)
	suite.True(timeline.Stages[2].Date.Equal(reviewed))
}

func (suite *TimelineServiceTestSuite) TestProjectTimeline_PaymentInitiatedHasFourStages() {
	ctx := context.Background()
	submitted := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reviewed := submitted.Add(24 * time.Hour)
	initiated := reviewed.Add(24 * time.Hour)
	amount := decimal.NewFromInt(250000)
	app := &domain.Application{
		ApplicationID:     "MAR_2025_123456",
		ApplicationType:   domain.MarriageIncentive,
		ApplicationStatus: domain.StatusPaymentInitiated,
		SubmittedAt:       &submitted,
		ReviewedAt:        &reviewed,
		ApprovedAmount:    &amount,
		AuditFields:       domain.AuditFields{CreatedAt: submitted},
	}
	payments := []domain.PaymentTransaction{{
		TransactionID: "TXN_DBT_1700000000000_7",
		ApplicationID: app.ApplicationID,
		Amount:        amount,
		PaymentStatus: domain.PaymentInitiated,
		InitiatedAt:   initiated,
	}}
	suite.stubApplication(app, payments)

	timeline, err := suite.service.ProjectTimeline(ctx, app.ApplicationID)

	suite.Require().NoError(err)
	suite.Require().Len(timeline.Stages, 4)
	suite.Equal("Application Approved", timeline.Stages[2].Stage)
	suite.Contains(timeline.Stages[2].Description, "250000.00")
	suite.Equal("Payment Initiated", timeline.Stages[3].Stage)
	suite.Contains(timeline.Stages[3].Description, "TXN_DBT_1700000000000_7")
	suite.True(timeline.Stages[3].Date.Equal(initiated))
}

func (suite *TimelineServiceTestSuite) TestProjectTimeline_CompletedWithRetryHasFiveStages() {
	ctx := context.Background()
	submitted := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reviewed := submitted.Add(24 * time.Hour)
	initiated := reviewed.Add(24 * time.Hour)
	completed := initiated.Add(2 * time.Hour)
	amount := decimal.NewFromInt(825000)
	app := &domain.Application{
		ApplicationID:     "ATR_2025_654321",
		ApplicationType:   domain.AtrocityRelief,
		ApplicationStatus: domain.StatusCompleted,
		SubmittedAt:       &submitted,
		ReviewedAt:        &reviewed,
		ApprovedAmount:    &amount,
		AuditFields:       domain.AuditFields{CreatedAt: submitted},
	}
	payments := []domain.PaymentTransaction{
		{
			TransactionID: "TXN_DBT_1700000000001_2",
			PaymentStatus: domain.PaymentProcessing,
			Amount:        amount,
			InitiatedAt:   initiated,
		},
		{
			TransactionID: "TXN_DBT_1700000000000_7",
			PaymentStatus: domain.PaymentSuccess,
			Amount:        amount,
			InitiatedAt:   initiated.Add(-time.Hour),
			CompletedAt:   &completed,
		},
	}
	suite.stubApplication(app, payments)

	timeline, err := suite.service.ProjectTimeline(ctx, app.ApplicationID)

	suite.Require().NoError(err)
	suite.Require().Len(timeline.Stages, 5)
	suite.Equal("Payment Completed", timeline.Stages[4].Stage)
	suite.Contains(timeline.Stages[4].Description, "TXN_DBT_1700000000000_7")
	suite.True(timeline.Stages[4].Date.Equal(completed))
}

func (suite *TimelineServiceTestSuite) TestProjectTimeline_CompletedWithoutPendingPaymentSkipsInitiatedStage() {
	ctx := context.Background()
	submitted := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reviewed := submitted.Add(24 * time.Hour)
	completed := reviewed.Add(24 * time.Hour)
	amount := decimal.NewFromInt(250000)
	app := &domain.Application{
		ApplicationID:     "MAR_2025_123456",
		ApplicationType:   domain.MarriageIncentive,
		ApplicationStatus: domain.StatusCompleted,
		SubmittedAt:       &submitted,
		ReviewedAt:        &reviewed,
		ApprovedAmount:    &amount,
		AuditFields:       domain.AuditFields{CreatedAt: submitted},
	}
	payments := []domain.PaymentTransaction{{
		TransactionID: "TXN_DBT_1700000000000_7",
		PaymentStatus: domain.PaymentSuccess,
		Amount:        amount,
		InitiatedAt:   reviewed.Add(12 * time.Hour),
		CompletedAt:   &completed,
	}}
	suite.stubApplication(app, payments)

	timeline, err := suite.service.ProjectTimeline(ctx, app.ApplicationID)

	suite.Require().NoError(err)
	suite.Require().Len(timeline.Stages, 4)
	suite.Equal("Payment Completed", timeline.Stages[3].Stage)
}

func TestTimelineService(t *testing.T) {
	suite.Run(t, new(TimelineServiceTestSuite))
}
