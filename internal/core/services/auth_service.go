package services

import (
	"context"
	"fmt"

	"github.com/janseva/benefits_portal_app/internal/apperrors"
	"github.com/janseva/benefits_portal_app/internal/core/domain"
	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/dto"
	"github.com/janseva/benefits_portal_app/internal/middleware"
	"github.com/janseva/benefits_portal_app/internal/utils"
)

// AuthService bundles the two sign-in flows. Both success and failure are
// recorded in the audit trail so the security feed sees them.
type AuthService struct {
	users portssvc.UserSvcFacade
	token portssvc.TokenSvcFacade
	otp   portssvc.OTPSvcFacade
	audit portssvc.AuditRecorderSvc
}

func NewAuthService(users portssvc.UserSvcFacade, token portssvc.TokenSvcFacade, otp portssvc.OTPSvcFacade, audit portssvc.AuditRecorderSvc) *AuthService {
	return &AuthService{users: users, token: token, otp: otp, audit: audit}
}

func (s *AuthService) OfficerLogin(ctx context.Context, req dto.OfficerLoginRequest, meta dto.RequestMeta) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.users.AuthenticateUser(ctx, req.Username, req.Password)
	if err != nil {
		s.recordLogin(ctx, domain.ActionUserLoginFailed, req.Username, meta, map[string]any{"method": "password"})
		return nil, err
	}

	if user.Role != domain.RoleOfficer && user.Role != domain.RoleAdmin {
		s.recordLogin(ctx, domain.ActionUserLoginFailed, user.UserID, meta, map[string]any{"method": "password", "reason": "role"})
		return nil, fmt.Errorf("password sign-in is for officer accounts: %w", apperrors.ErrForbidden)
	}

	token, expiresAt, err := s.token.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.recordLogin(ctx, domain.ActionUserLogin, user.UserID, meta, map[string]any{"method": "password"})
	logger.Info("officer signed in", "userID", user.UserID)

	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)}, nil
}

func (s *AuthService) RequestOTP(ctx context.Context, req dto.RequestOTPRequest, meta dto.RequestMeta) error {
	return s.otp.IssueOTP(ctx, req.MobileNumber)
}

func (s *AuthService) VerifyOTPLogin(ctx context.Context, req dto.VerifyOTPRequest, meta dto.RequestMeta) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ok, err := s.otp.VerifyOTP(ctx, req.MobileNumber, req.Code)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.recordLogin(ctx, domain.ActionUserLoginFailed, utils.MaskMobile(req.MobileNumber), meta, map[string]any{"method": "otp"})
		return nil, fmt.Errorf("invalid or expired code: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.users.EnsureBeneficiaryUser(ctx, req.MobileNumber)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.token.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.recordLogin(ctx, domain.ActionUserLogin, user.UserID, meta, map[string]any{"method": "otp"})
	logger.Info("citizen signed in", "userID", user.UserID)

	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)}, nil
}

func (s *AuthService) recordLogin(ctx context.Context, action domain.AuditAction, principal string, meta dto.RequestMeta, metadata map[string]any) {
	logger := middleware.GetLoggerFromCtx(ctx)

	target := domain.TargetResource{Type: domain.ResourceUser, ID: principal}
	if _, err := s.audit.Record(ctx, action, principal, target, meta, metadata); err != nil {
		logger.Error("failed to record sign-in audit entry", "action", string(action), "error", err)
	}
}
