package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/middleware"
)

// OTPService stores one-time sign-in codes in redis under a per-mobile key
// with a TTL. A code is consumed atomically on successful verification.
type OTPService struct {
	client   *redis.Client
	notifier portssvc.NotificationSvcFacade
	ttl      time.Duration
}

func NewOTPService(client *redis.Client, notifier portssvc.NotificationSvcFacade, ttl time.Duration) *OTPService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &OTPService{client: client, notifier: notifier, ttl: ttl}
}

func otpKey(mobileNumber string) string {
	return "otp:" + mobileNumber
}

func (s *OTPService) IssueOTP(ctx context.Context, mobileNumber string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := s.client.SetEx(ctx, otpKey(mobileNumber), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := s.notifier.SendOTP(ctx, mobileNumber, code); err != nil {
		// The code stays valid; the citizen can re-request delivery.
		logger.Warn("OTP stored but delivery failed", "error", err)
	}
	return nil
}

// VerifyOTP checks a code and consumes it on success. A wrong attempt
// leaves the stored code in place until its TTL runs out.
func (s *OTPService) VerifyOTP(ctx context.Context, mobileNumber string, code string) (bool, error) {
	stored, err := s.client.Get(ctx, otpKey(mobileNumber)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify OTP: %w", err)
	}
	if stored != code {
		return false, nil
	}
	if err := s.client.Del(ctx, otpKey(mobileNumber)).Err(); err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}
	return true, nil
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
