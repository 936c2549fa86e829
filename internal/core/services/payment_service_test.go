package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/janseva/benefits_portal_app/internal/apperrors"
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/core/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockLifecycle   *MockLifecycle
	mockAudit       *MockAuditRecorder
	service         *services.PaymentService
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockLifecycle = new(MockLifecycle)
	suite.mockAudit = new(MockAuditRecorder)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockLifecycle, suite.mockAudit)
}

func (suite *PaymentServiceTestSuite) initiatedPayment() *domain.PaymentTransaction {
	initiated := time.Now().Add(-time.Hour)
	return &domain.PaymentTransaction{
		TransactionID: "TXN_DBT_1700000000000_7",
		ApplicationID: "MAR_2025_123456",
		BeneficiaryID: "ben-1",
		Amount:        decimal.NewFromInt(250000),
		PaymentStatus: domain.PaymentInitiated,
		InitiatedAt:   initiated,
		AuditFields: domain.AuditFields{
			CreatedAt:     initiated,
			CreatedBy:     "officer-1",
			LastUpdatedAt: initiated,
			LastUpdatedBy: "officer-1",
		},
	}
}

func (suite *PaymentServiceTestSuite) TestUpdatePaymentStatus_UnknownStatus() {
	ctx := context.Background()

	payment, err := suite.service.UpdatePaymentStatus(ctx, "TXN_DBT_1700000000000_7", dto.UpdatePaymentStatusRequest{
		Status: domain.PaymentStatus("SETTLED"),
	}, "officer-1", dto.RequestMeta{})

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestUpdatePaymentStatus_NotFound() {
	ctx := context.Background()
	suite.mockPaymentRepo.FindPaymentByTransactionIDFn = func(ctx context.Context, id string) (*domain.PaymentTransaction, error) {
		return nil, apperrors.ErrNotFound
	}

	payment, err := suite.service.UpdatePaymentStatus(ctx, "TXN_DBT_0_0", dto.UpdatePaymentStatusRequest{
		Status: domain.PaymentSuccess,
	}, "officer-1", dto.RequestMeta{})

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestUpdatePaymentStatus_ProcessingLeavesCompletionOpen() {
	ctx := context.Background()
	stored := suite.initiatedPayment()

	suite.mockPaymentRepo.FindPaymentByTransactionIDFn = func(ctx context.Context, id string) (*domain.PaymentTransaction, error) {
		return stored, nil
	}
	var passedCompletedAt *time.Time
	completedAtSet := false
	suite.mockPaymentRepo.UpdatePaymentStatusFn = func(ctx context.Context, id string, status domain.PaymentStatus, remarks string, completedAt *time.Time, updatedBy string, updatedAt time.Time) error {
		passedCompletedAt = completedAt
		completedAtSet = true
		return nil
	}

	lifecycleCalled := false
	suite.mockLifecycle.TransitionFn = func(ctx context.Context, applicationID string, req dto.TransitionRequest) (*domain.Application, error) {
		lifecycleCalled = true
		return nil, nil
	}

	payment, err := suite.service.UpdatePaymentStatus(ctx, stored.TransactionID, dto.UpdatePaymentStatusRequest{
		Status:  domain.PaymentProcessing,
		Remarks: "sent to bank",
	}, "officer-1", dto.RequestMeta{})

	suite.Require().NoError(err)
	suite.True(completedAtSet)
	suite.Nil(passedCompletedAt)
	suite.Nil(payment.CompletedAt)
	suite.Equal(domain.PaymentProcessing, payment.PaymentStatus)
	suite.Equal("sent to bank", payment.Remarks)
	suite.False(lifecycleCalled)
}

func (suite *PaymentServiceTestSuite) TestUpdatePaymentStatus_SuccessCompletesApplication() {
	ctx := context.Background()
	stored := suite.initiatedPayment()

	suite.mockPaymentRepo.FindPaymentByTransactionIDFn = func(ctx context.Context, id string) (*domain.PaymentTransaction, error) {
		return stored, nil
	}
	var passedCompletedAt *time.Time
	suite.mockPaymentRepo.UpdatePaymentStatusFn = func(ctx context.Context, id string, status domain.PaymentStatus, remarks string, completedAt *time.Time, updatedBy string, updatedAt time.Time) error {
		suite.Equal(domain.PaymentSuccess, status)
		passedCompletedAt = completedAt
		return nil
	}
	suite.mockAudit.RecordFn = func(ctx context.Context, action domain.AuditAction, performedBy string, target domain.TargetResource, meta dto.RequestMeta, metadata map[string]any) (*domain.AuditLogEntry, error) {
		suite.Equal(domain.ActionPaymentCompleted, action)
		suite.Equal(domain.ResourcePayment, target.Type)
		suite.Equal(stored.TransactionID, target.ID)
		return &domain.AuditLogEntry{}, nil
	}

	var transitionReq dto.TransitionRequest
	var transitionAppID string
	suite.mockLifecycle.TransitionFn = func(ctx context.Context, applicationID string, req dto.TransitionRequest) (*domain.Application, error) {
		transitionAppID = applicationID
		transitionReq = req
		return &domain.Application{}, nil
	}

	payment, err := suite.service.UpdatePaymentStatus(ctx, stored.TransactionID, dto.UpdatePaymentStatusRequest{
		Status: domain.PaymentSuccess,
	}, "officer-1", dto.RequestMeta{})

	suite.Require().NoError(err)
	suite.NotNil(passedCompletedAt)
	suite.NotNil(payment.CompletedAt)
	suite.Equal(domain.PaymentSuccess, payment.PaymentStatus)
	suite.Equal(stored.ApplicationID, transitionAppID)
	suite.Equal(domain.StatusCompleted, transitionReq.NewStatus)
	suite.Equal(stored.TransactionID, transitionReq.TransactionID)
	suite.Equal("officer-1", transitionReq.ActorID)
}

func (suite *PaymentServiceTestSuite) TestUpdatePaymentStatus_CompletedAtIsPreserved() {
	ctx := context.Background()
	stored := suite.initiatedPayment()
	firstCompletion := time.Now().Add(-30 * time.Minute)
	stored.CompletedAt = &firstCompletion
	stored.PaymentStatus = domain.PaymentSuccess

	suite.mockPaymentRepo.FindPaymentByTransactionIDFn = func(ctx context.Context, id string) (*domain.PaymentTransaction, error) {
		return stored, nil
	}
	suite.mockPaymentRepo.UpdatePaymentStatusFn = func(ctx context.Context, id string, status domain.PaymentStatus, remarks string, completedAt *time.Time, updatedBy string, updatedAt time.Time) error {
		return nil
	}
	suite.mockAudit.RecordFn = func(ctx context.Context, action domain.AuditAction, performedBy string, target domain.TargetResource, meta dto.RequestMeta, metadata map[string]any) (*domain.AuditLogEntry, error) {
		suite.Equal(domain.ActionPaymentFailed, action)
		return &domain.AuditLogEntry{}, nil
	}

	payment, err := suite.service.UpdatePaymentStatus(ctx, stored.TransactionID, dto.UpdatePaymentStatusRequest{
		Status:  domain.PaymentReversed,
		Remarks: "credited to wrong account",
	}, "officer-1", dto.RequestMeta{})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentReversed, payment.PaymentStatus)
	suite.Require().NotNil(payment.CompletedAt)
	suite.True(payment.CompletedAt.Equal(firstCompletion))
}

func (suite *PaymentServiceTestSuite) TestUpdatePaymentStatus_FailedRecordsFailureAction() {
	ctx := context.Background()
	stored := suite.initiatedPayment()

	suite.mockPaymentRepo.FindPaymentByTransactionIDFn = func(ctx context.Context, id string) (*domain.PaymentTransaction, error) {
		return stored, nil
	}
	suite.mockPaymentRepo.UpdatePaymentStatusFn = func(ctx context.Context, id string, status domain.PaymentStatus, remarks string, completedAt *time.Time, updatedBy string, updatedAt time.Time) error {
		return nil
	}

	var recordedAction domain.AuditAction
	var recordedMetadata map[string]any
	suite.mockAudit.RecordFn = func(ctx context.Context, action domain.AuditAction, performedBy string, target domain.TargetResource, meta dto.RequestMeta, metadata map[string]any) (*domain.AuditLogEntry, error) {
		recordedAction = action
		recordedMetadata = metadata
		return &domain.AuditLogEntry{}, nil
	}

	lifecycleCalled := false
	suite.mockLifecycle.TransitionFn = func(ctx context.Context, applicationID string, req dto.TransitionRequest) (*domain.Application, error) {
		lifecycleCalled = true
		return nil, nil
	}

	payment, err := suite.service.UpdatePaymentStatus(ctx, stored.TransactionID, dto.UpdatePaymentStatusRequest{
		Status:  domain.PaymentFailed,
		Remarks: "account closed",
	}, "officer-1", dto.RequestMeta{})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentFailed, payment.PaymentStatus)
	suite.Equal(domain.ActionPaymentFailed, recordedAction)
	suite.Equal("account closed", recordedMetadata["remarks"])
	suite.False(lifecycleCalled)
}

func (suite *PaymentServiceTestSuite) TestUpdatePaymentStatus_CompletionFailureIsNonFatal() {
	ctx := context.Background()
	stored := suite.initiatedPayment()

	suite.mockPaymentRepo.FindPaymentByTransactionIDFn = func(ctx context.Context, id string) (*domain.PaymentTransaction, error) {
		return stored, nil
	}
	suite.mockPaymentRepo.UpdatePaymentStatusFn = func(ctx context.Context, id string, status domain.PaymentStatus, remarks string, completedAt *time.Time, updatedBy string, updatedAt time.Time) error {
		return nil
	}
	suite.mockAudit.RecordFn = func(ctx context.Context, action domain.AuditAction, performedBy string, target domain.TargetResource, meta dto.RequestMeta, metadata map[string]any) (*domain.AuditLogEntry, error) {
		return &domain.AuditLogEntry{}, nil
	}
	suite.mockLifecycle.TransitionFn = func(ctx context.Context, applicationID string, req dto.TransitionRequest) (*domain.Application, error) {
		return nil, assert.AnError
	}

	payment, err := suite.service.UpdatePaymentStatus(ctx, stored.TransactionID, dto.UpdatePaymentStatusRequest{
		Status: domain.PaymentSuccess,
	}, "", dto.RequestMeta{})

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentSuccess, payment.PaymentStatus)
	suite.Equal("SYSTEM", payment.LastUpdatedBy)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByTransactionID() {
	ctx := context.Background()
	stored := suite.initiatedPayment()
	suite.mockPaymentRepo.On("FindPaymentByTransactionID", ctx, stored.TransactionID).Return(stored, nil).Once()

	payment, err := suite.service.GetPaymentByTransactionID(ctx, stored.TransactionID)

	suite.Require().NoError(err)
	suite.Equal(stored, payment)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
