package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portsrepo "github.com/janseva/benefits_portal_app/internal/core/ports/repositories"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
)

// Shared mocks for the service suites. Each method prefers its Fn override
// when set and falls back to testify expectations otherwise.

// --- MockApplicationRepository ---

type MockApplicationRepository struct {
	mock.Mock
	FindApplicationByIDFn           func(ctx context.Context, applicationID string) (*domain.Application, error)
	ListApplicationsByBeneficiaryFn func(ctx context.Context, beneficiaryID string, limit int, nextToken *string) ([]domain.Application, *string, error)
	ListApplicationsByStatusFn      func(ctx context.Context, status domain.ApplicationStatus, limit int, nextToken *string) ([]domain.Application, *string, error)
	SaveApplicationFn               func(ctx context.Context, app domain.Application) error
	UpdateApplicationFn             func(ctx context.Context, app domain.Application) error
	AppendDocumentFn                func(ctx context.Context, applicationID string, doc domain.ApplicationDocument) error
	UpdateDocumentVerificationFn    func(ctx context.Context, applicationID string, documentID string, status domain.VerificationStatus) error
}

func (m *MockApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.FindApplicationByIDFn != nil {
		return m.FindApplicationByIDFn(ctx, applicationID)
	}
	args := m.Called(ctx, applicationID)
	var app *domain.Application
	if args.Get(0) != nil {
		app = args.Get(0).(*domain.Application)
	}
	return app, args.Error(1)
}

func (m *MockApplicationRepository) ListApplicationsByBeneficiary(ctx context.Context, beneficiaryID string, limit int, nextToken *string) ([]domain.Application, *string, error) {
	if m.ListApplicationsByBeneficiaryFn != nil {
		return m.ListApplicationsByBeneficiaryFn(ctx, beneficiaryID, limit, nextToken)
	}
	args := m.Called(ctx, beneficiaryID, limit, nextToken)
	var apps []domain.Application
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.Application)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return apps, token, args.Error(2)
}

func (m *MockApplicationRepository) ListApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus, limit int, nextToken *string) ([]domain.Application, *string, error) {
	if m.ListApplicationsByStatusFn != nil {
		return m.ListApplicationsByStatusFn(ctx, status, limit, nextToken)
	}
	args := m.Called(ctx, status, limit, nextToken)
	var apps []domain.Application
	if args.Get(0) != nil {
		apps = args.Get(0).([]domain.Application)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return apps, token, args.Error(2)
}

func (m *MockApplicationRepository) SaveApplication(ctx context.Context, app domain.Application) error {
	if m.SaveApplicationFn != nil {
		return m.SaveApplicationFn(ctx, app)
	}
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdateApplication(ctx context.Context, app domain.Application) error {
	if m.UpdateApplicationFn != nil {
		return m.UpdateApplicationFn(ctx, app)
	}
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) AppendDocument(ctx context.Context, applicationID string, doc domain.ApplicationDocument) error {
	if m.AppendDocumentFn != nil {
		return m.AppendDocumentFn(ctx, applicationID, doc)
	}
	args := m.Called(ctx, applicationID, doc)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdateDocumentVerification(ctx context.Context, applicationID string, documentID string, status domain.VerificationStatus) error {
	if m.UpdateDocumentVerificationFn != nil {
		return m.UpdateDocumentVerificationFn(ctx, applicationID, documentID, status)
	}
	args := m.Called(ctx, applicationID, documentID, status)
	return args.Error(0)
}

// --- MockPaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
	FindPaymentByTransactionIDFn  func(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error)
	FindPaymentsByApplicationIDFn func(ctx context.Context, applicationID string) ([]domain.PaymentTransaction, error)
	SavePaymentFn                 func(ctx context.Context, payment domain.PaymentTransaction) error
	UpdatePaymentStatusFn         func(ctx context.Context, transactionID string, status domain.PaymentStatus, remarks string, completedAt *time.Time, updatedBy string, updatedAt time.Time) error
}

func (m *MockPaymentRepository) FindPaymentByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error) {
	if m.FindPaymentByTransactionIDFn != nil {
		return m.FindPaymentByTransactionIDFn(ctx, transactionID)
	}
	args := m.Called(ctx, transactionID)
	var payment *domain.PaymentTransaction
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.PaymentTransaction)
	}
	return payment, args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByApplicationID(ctx context.Context, applicationID string) ([]domain.PaymentTransaction, error) {
	if m.FindPaymentsByApplicationIDFn != nil {
		return m.FindPaymentsByApplicationIDFn(ctx, applicationID)
	}
	args := m.Called(ctx, applicationID)
	var payments []domain.PaymentTransaction
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.PaymentTransaction)
	}
	return payments, args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentTransaction) error {
	if m.SavePaymentFn != nil {
		return m.SavePaymentFn(ctx, payment)
	}
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePaymentStatus(ctx context.Context, transactionID string, status domain.PaymentStatus, remarks string, completedAt *time.Time, updatedBy string, updatedAt time.Time) error {
	if m.UpdatePaymentStatusFn != nil {
		return m.UpdatePaymentStatusFn(ctx, transactionID, status, remarks, completedAt, updatedBy, updatedAt)
	}
	args := m.Called(ctx, transactionID, status, remarks, completedAt, updatedBy, updatedAt)
	return args.Error(0)
}

// --- MockBeneficiaryRepository ---

type MockBeneficiaryRepository struct {
	mock.Mock
	FindBeneficiaryByIDFn     func(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error)
	FindBeneficiaryByUserIDFn func(ctx context.Context, userID string) (*domain.Beneficiary, error)
	SaveBeneficiaryFn         func(ctx context.Context, b domain.Beneficiary) error
	UpdateBeneficiaryFn       func(ctx context.Context, b domain.Beneficiary) error
	MarkBeneficiaryDeletedFn  func(ctx context.Context, beneficiaryID string, deletedAt time.Time, deletedBy string) error
}

func (m *MockBeneficiaryRepository) FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	if m.FindBeneficiaryByIDFn != nil {
		return m.FindBeneficiaryByIDFn(ctx, beneficiaryID)
	}
	args := m.Called(ctx, beneficiaryID)
	var b *domain.Beneficiary
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Beneficiary)
	}
	return b, args.Error(1)
}

func (m *MockBeneficiaryRepository) FindBeneficiaryByUserID(ctx context.Context, userID string) (*domain.Beneficiary, error) {
	if m.FindBeneficiaryByUserIDFn != nil {
		return m.FindBeneficiaryByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var b *domain.Beneficiary
	if args.Get(0) != nil {
		b = args.Get(0).(*domain.Beneficiary)
	}
	return b, args.Error(1)
}

func (m *MockBeneficiaryRepository) SaveBeneficiary(ctx context.Context, b domain.Beneficiary) error {
	if m.SaveBeneficiaryFn != nil {
		return m.SaveBeneficiaryFn(ctx, b)
	}
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBeneficiaryRepository) UpdateBeneficiary(ctx context.Context, b domain.Beneficiary) error {
	if m.UpdateBeneficiaryFn != nil {
		return m.UpdateBeneficiaryFn(ctx, b)
	}
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBeneficiaryRepository) MarkBeneficiaryDeleted(ctx context.Context, beneficiaryID string, deletedAt time.Time, deletedBy string) error {
	if m.MarkBeneficiaryDeletedFn != nil {
		return m.MarkBeneficiaryDeletedFn(ctx, beneficiaryID, deletedAt, deletedBy)
	}
	args := m.Called(ctx, beneficiaryID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- MockAuditRepository ---

type MockAuditRepository struct {
	mock.Mock
	AppendEntryFn         func(ctx context.Context, entry domain.AuditLogEntry) error
	FindEntriesByUserFn   func(ctx context.Context, performedBy string, limit, offset int) ([]domain.AuditLogEntry, error)
	FindEntriesByTargetFn func(ctx context.Context, target domain.TargetResource, limit, offset int) ([]domain.AuditLogEntry, error)
	FindSecurityEventsFn  func(ctx context.Context, actions []domain.AuditAction, from, to time.Time, limit int) ([]domain.AuditLogEntry, error)
	SearchEntriesFn       func(ctx context.Context, filter portsrepo.AuditSearchFilter, limit, offset int) ([]domain.AuditLogEntry, error)
	DeleteEntriesBeforeFn func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockAuditRepository) AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	if m.AppendEntryFn != nil {
		return m.AppendEntryFn(ctx, entry)
	}
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) FindEntriesByUser(ctx context.Context, performedBy string, limit, offset int) ([]domain.AuditLogEntry, error) {
	if m.FindEntriesByUserFn != nil {
		return m.FindEntriesByUserFn(ctx, performedBy, limit, offset)
	}
	args := m.Called(ctx, performedBy, limit, offset)
	var entries []domain.AuditLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLogEntry)
	}
	return entries, args.Error(1)
}

func (m *MockAuditRepository) FindEntriesByTarget(ctx context.Context, target domain.TargetResource, limit, offset int) ([]domain.AuditLogEntry, error) {
	if m.FindEntriesByTargetFn != nil {
		return m.FindEntriesByTargetFn(ctx, target, limit, offset)
	}
	args := m.Called(ctx, target, limit, offset)
	var entries []domain.AuditLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLogEntry)
	}
	return entries, args.Error(1)
}

func (m *MockAuditRepository) FindSecurityEvents(ctx context.Context, actions []domain.AuditAction, from, to time.Time, limit int) ([]domain.AuditLogEntry, error) {
	if m.FindSecurityEventsFn != nil {
		return m.FindSecurityEventsFn(ctx, actions, from, to, limit)
	}
	args := m.Called(ctx, actions, from, to, limit)
	var entries []domain.AuditLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLogEntry)
	}
	return entries, args.Error(1)
}

func (m *MockAuditRepository) SearchEntries(ctx context.Context, filter portsrepo.AuditSearchFilter, limit, offset int) ([]domain.AuditLogEntry, error) {
	if m.SearchEntriesFn != nil {
		return m.SearchEntriesFn(ctx, filter, limit, offset)
	}
	args := m.Called(ctx, filter, limit, offset)
	var entries []domain.AuditLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditLogEntry)
	}
	return entries, args.Error(1)
}

func (m *MockAuditRepository) DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteEntriesBeforeFn != nil {
		return m.DeleteEntriesBeforeFn(ctx, cutoff)
	}
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockUserRepository ---

type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	FindUserByMobileFn   func(ctx context.Context, mobileNumber string) (*domain.User, error)
	FindUsersFn          func(ctx context.Context, limit int, offset int) ([]domain.User, error)
	SaveUserFn           func(ctx context.Context, user domain.User) error
	UpdateUserFn         func(ctx context.Context, user domain.User) error
	MarkUserDeletedFn    func(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByMobile(ctx context.Context, mobileNumber string) (*domain.User, error) {
	if m.FindUserByMobileFn != nil {
		return m.FindUserByMobileFn(ctx, mobileNumber)
	}
	args := m.Called(ctx, mobileNumber)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if m.FindUsersFn != nil {
		return m.FindUsersFn(ctx, limit, offset)
	}
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	if m.MarkUserDeletedFn != nil {
		return m.MarkUserDeletedFn(ctx, userID, deletedAt, deletedBy)
	}
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- MockAuditRecorder ---

type MockAuditRecorder struct {
	mock.Mock
	RecordFn func(ctx context.Context, action domain.AuditAction, performedBy string, target domain.TargetResource, meta dto.RequestMeta, metadata map[string]any) (*domain.AuditLogEntry, error)
}

func (m *MockAuditRecorder) Record(ctx context.Context, action domain.AuditAction, performedBy string, target domain.TargetResource, meta dto.RequestMeta, metadata map[string]any) (*domain.AuditLogEntry, error) {
	if m.RecordFn != nil {
		return m.RecordFn(ctx, action, performedBy, target, meta, metadata)
	}
	args := m.Called(ctx, action, performedBy, target, meta, metadata)
	var entry *domain.AuditLogEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.AuditLogEntry)
	}
	return entry, args.Error(1)
}

// --- MockNotifier ---

type MockNotifier struct {
	mock.Mock
	SendApplicationUpdateFn func(ctx context.Context, mobileNumber string, kind portssvc.ApplicationUpdateKind, details portssvc.ApplicationUpdateDetails) error
	SendOTPFn               func(ctx context.Context, mobileNumber string, code string) error
}

func (m *MockNotifier) SendApplicationUpdate(ctx context.Context, mobileNumber string, kind portssvc.ApplicationUpdateKind, details portssvc.ApplicationUpdateDetails) error {
	if m.SendApplicationUpdateFn != nil {
		return m.SendApplicationUpdateFn(ctx, mobileNumber, kind, details)
	}
	args := m.Called(ctx, mobileNumber, kind, details)
	return args.Error(0)
}

func (m *MockNotifier) SendOTP(ctx context.Context, mobileNumber string, code string) error {
	if m.SendOTPFn != nil {
		return m.SendOTPFn(ctx, mobileNumber, code)
	}
	args := m.Called(ctx, mobileNumber, code)
	return args.Error(0)
}

// --- MockLifecycle ---

type MockLifecycle struct {
	mock.Mock
	TransitionFn func(ctx context.Context, applicationID string, req dto.TransitionRequest) (*domain.Application, error)
}

func (m *MockLifecycle) Transition(ctx context.Context, applicationID string, req dto.TransitionRequest) (*domain.Application, error) {
	if m.TransitionFn != nil {
		return m.TransitionFn(ctx, applicationID, req)
	}
	args := m.Called(ctx, applicationID, req)
	var app *domain.Application
	if args.Get(0) != nil {
		app = args.Get(0).(*domain.Application)
	}
	return app, args.Error(1)
}
