package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/janseva/benefits_portal_app/internal/apperrors"
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/core/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()

	var saved domain.User
	suite.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	req := dto.CreateUserRequest{
		Username:     "officer.kulkarni",
		Password:     "s3cret-password",
		Name:         "A Kulkarni",
		MobileNumber: "9123456780",
		Role:         domain.RoleOfficer,
	}
	user, err := suite.service.CreateUser(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal("officer.kulkarni", user.Username)
	suite.Equal(domain.RoleOfficer, user.Role)
	suite.NotEmpty(saved.PasswordHash)
	suite.NotEqual("s3cret-password", saved.PasswordHash)
	suite.Equal("admin-1", saved.CreatedBy)
}

func (suite *UserServiceTestSuite) TestEnsureBeneficiaryUser_ReturnsExisting() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", MobileNumber: "9123456780", Role: domain.RoleBeneficiary}
	suite.mockUserRepo.FindUserByMobileFn = func(ctx context.Context, mobile string) (*domain.User, error) {
		return existing, nil
	}

	saveCalled := false
	suite.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saveCalled = true
		return nil
	}

	user, err := suite.service.EnsureBeneficiaryUser(ctx, "9123456780")

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.False(saveCalled)
}

func (suite *UserServiceTestSuite) TestEnsureBeneficiaryUser_CreatesOnFirstSignIn() {
	ctx := context.Background()
	suite.mockUserRepo.FindUserByMobileFn = func(ctx context.Context, mobile string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	var saved domain.User
	suite.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user, err := suite.service.EnsureBeneficiaryUser(ctx, "9123456780")

	suite.Require().NoError(err)
	suite.Equal("citizen_9123456780", user.Username)
	suite.Equal(domain.RoleBeneficiary, user.Role)
	suite.Empty(user.PasswordHash)
	suite.Equal("SYSTEM", saved.CreatedBy)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	suite.mockUserRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
		return &domain.User{UserID: "user-1", Username: username, PasswordHash: hash, Role: domain.RoleOfficer}, nil
	}

	user, err := suite.service.AuthenticateUser(ctx, "officer.kulkarni", "correct-password")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	suite.mockUserRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
		return &domain.User{UserID: "user-1", Username: username, PasswordHash: hash}, nil
	}

	user, err := suite.service.AuthenticateUser(ctx, "officer.kulkarni", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserGetsSameError() {
	ctx := context.Background()
	suite.mockUserRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	user, err := suite.service.AuthenticateUser(ctx, "no-such-user", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_PasswordlessAccountRejected() {
	ctx := context.Background()
	suite.mockUserRepo.FindUserByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
		return &domain.User{UserID: "user-1", Username: username, Role: domain.RoleBeneficiary}, nil
	}

	user, err := suite.service.AuthenticateUser(ctx, "citizen_9123456780", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestUpdateUser_AppliesPartialChanges() {
	ctx := context.Background()
	suite.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Name: "Old Name", MobileNumber: "9000000000"}, nil
	}

	var updated domain.User
	suite.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		updated = user
		return nil
	}

	newName := "New Name"
	user, err := suite.service.UpdateUser(ctx, "user-1", dto.UpdateUserRequest{Name: &newName}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("New Name", user.Name)
	suite.Equal("9000000000", user.MobileNumber)
	suite.Equal("admin-1", updated.LastUpdatedBy)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
