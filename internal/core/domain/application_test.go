package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
)

func TestApplicationStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status domain.ApplicationStatus
		want   bool
	}{
		{domain.StatusDraft, false},
		{domain.StatusSubmitted, false},
		{domain.StatusUnderReview, false},
		{domain.StatusApproved, false},
		{domain.StatusPaymentInitiated, false},
		{domain.StatusRejected, true},
		{domain.StatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestApplicationStatus_IsValid(t *testing.T) {
	assert.True(t, domain.StatusUnderReview.IsValid())
	assert.False(t, domain.ApplicationStatus("SHIPPED").IsValid())
	assert.False(t, domain.ApplicationStatus("").IsValid())
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status domain.PaymentStatus
		want   bool
	}{
		{domain.PaymentInitiated, false},
		{domain.PaymentProcessing, false},
		{domain.PaymentSuccess, true},
		{domain.PaymentFailed, true},
		{domain.PaymentReversed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestApplicationType_IDPrefix(t *testing.T) {
	assert.Equal(t, "MAR", domain.MarriageIncentive.IDPrefix())
	assert.Equal(t, "ATR", domain.AtrocityRelief.IDPrefix())
}

func TestApplication_ValidateVariant(t *testing.T) {
	marriage := &domain.MarriageDetails{SpouseName: "A"}
	fir := &domain.FIRDetails{FIRNumber: "0042/2025"}

	tests := []struct {
		name    string
		app     domain.Application
		wantErr bool
	}{
		{
			name:    "marriage incentive with marriage details",
			app:     domain.Application{ApplicationType: domain.MarriageIncentive, MarriageDetails: marriage},
			wantErr: false,
		},
		{
			name:    "atrocity relief with fir details",
			app:     domain.Application{ApplicationType: domain.AtrocityRelief, FIRDetails: fir},
			wantErr: false,
		},
		{
			name:    "marriage incentive missing marriage details",
			app:     domain.Application{ApplicationType: domain.MarriageIncentive},
			wantErr: true,
		},
		{
			name:    "marriage incentive carrying fir details",
			app:     domain.Application{ApplicationType: domain.MarriageIncentive, MarriageDetails: marriage, FIRDetails: fir},
			wantErr: true,
		},
		{
			name:    "atrocity relief carrying marriage details",
			app:     domain.Application{ApplicationType: domain.AtrocityRelief, FIRDetails: fir, MarriageDetails: marriage},
			wantErr: true,
		},
		{
			name:    "unknown type",
			app:     domain.Application{ApplicationType: domain.ApplicationType("PENSION")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.app.ValidateVariant()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
