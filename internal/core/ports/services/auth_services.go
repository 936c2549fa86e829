package services

import (
	"context"
	"time"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/janseva/benefits_portal_app/internal/dto"
)

// TokenSvcFacade issues access tokens for authenticated principals.
type TokenSvcFacade interface {
	// GenerateToken creates a signed JWT for the user.
	GenerateToken(user *domain.User) (string, time.Time, error)
}

// OTPSvcFacade manages short-lived one-time sign-in codes.
type OTPSvcFacade interface {
	// IssueOTP generates a code for the mobile number, stores it with a TTL
	// and hands it to the notification sender.
	IssueOTP(ctx context.Context, mobileNumber string) error

	// VerifyOTP checks a code and consumes it on success.
	VerifyOTP(ctx context.Context, mobileNumber string, code string) (bool, error)
}

// AuthSvcFacade bundles the two sign-in flows. Both outcomes are audited.
type AuthSvcFacade interface {
	// OfficerLogin verifies a username/password pair and issues a token.
	OfficerLogin(ctx context.Context, req dto.OfficerLoginRequest, meta dto.RequestMeta) (*dto.LoginResponse, error)

	// RequestOTP starts the citizen sign-in flow.
	RequestOTP(ctx context.Context, req dto.RequestOTPRequest, meta dto.RequestMeta) error

	// VerifyOTPLogin completes the citizen sign-in flow and issues a token.
	VerifyOTPLogin(ctx context.Context, req dto.VerifyOTPRequest, meta dto.RequestMeta) (*dto.LoginResponse, error)
}
