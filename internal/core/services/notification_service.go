package services

import (
	"context"
	"fmt"

	portssvc "github.com/janseva/benefits_portal_app/internal/core/ports/services"
	"github.com/janseva/benefits_portal_app/internal/metrics"
	"github.com/janseva/benefits_portal_app/internal/middleware"
	"github.com/janseva/benefits_portal_app/internal/utils"
)

// Sender delivers one rendered SMS. Implementations may talk to a gateway;
// the default just logs, which is enough for the simulated DBT flow.
type Sender interface {
	Send(ctx context.Context, mobileNumber string, message string) error
}

// LogSender writes every message to the request log instead of a gateway.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, mobileNumber string, message string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("sms dispatched", "to", utils.MaskMobile(mobileNumber), "message", message)
	return nil
}

// NotificationService renders beneficiary-facing SMS templates and hands
// them to the configured sender.
type NotificationService struct {
	sender  Sender
	metrics *metrics.Metrics
}

func NewNotificationService(sender Sender, m *metrics.Metrics) *NotificationService {
	if sender == nil {
		sender = LogSender{}
	}
	return &NotificationService{sender: sender, metrics: m}
}

func (s *NotificationService) SendApplicationUpdate(ctx context.Context, mobileNumber string, kind portssvc.ApplicationUpdateKind, details portssvc.ApplicationUpdateDetails) error {
	var message string
	switch kind {
	case portssvc.NotifySubmitted:
		message = fmt.Sprintf("Your application %s under %s has been submitted successfully.", details.ApplicationID, details.SchemeName)
	case portssvc.NotifyApproved:
		message = fmt.Sprintf("Your application %s has been approved.", details.ApplicationID)
		if details.Amount != nil {
			message = fmt.Sprintf("Your application %s has been approved for Rs. %s.", details.ApplicationID, details.Amount.StringFixed(2))
		}
	case portssvc.NotifyRejected:
		reason := details.RejectionReason
		if reason == "" {
			reason = "Not specified"
		}
		message = fmt.Sprintf("Your application %s has been rejected. Reason: %s", details.ApplicationID, reason)
	case portssvc.NotifyPaymentInitiated:
		message = fmt.Sprintf("Payment for application %s has been initiated. Transaction: %s", details.ApplicationID, details.TransactionID)
	case portssvc.NotifyPaymentCompleted:
		message = fmt.Sprintf("Payment for application %s has been credited to your bank account.", details.ApplicationID)
	default:
		return fmt.Errorf("unknown notification kind %q", kind)
	}

	if err := s.sender.Send(ctx, mobileNumber, message); err != nil {
		s.metrics.IncrementNotificationFailure()
		return fmt.Errorf("failed to send application update: %w", err)
	}
	return nil
}

func (s *NotificationService) SendOTP(ctx context.Context, mobileNumber string, code string) error {
	message := fmt.Sprintf("%s is your one-time sign-in code for the benefits portal. Valid for 5 minutes. Do not share it.", code)
	if err := s.sender.Send(ctx, mobileNumber, message); err != nil {
		s.metrics.IncrementNotificationFailure()
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}
