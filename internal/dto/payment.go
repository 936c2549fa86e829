package dto

import (
	"time"

	"github.com/janseva/benefits_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdatePaymentStatusRequest defines the payload of the settlement endpoint.
type UpdatePaymentStatusRequest struct {
	Status  domain.PaymentStatus `json:"status" binding:"required,oneof=PROCESSING SUCCESS FAILED REVERSED"`
	Remarks string               `json:"remarks,omitempty"`
}

// PaymentResponse defines the data returned for a payment transaction.
type PaymentResponse struct {
	TransactionID string          `json:"transactionID"`
	ApplicationID string          `json:"applicationID"`
	BeneficiaryID string          `json:"beneficiaryID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"paymentStatus"`
	Remarks       string          `json:"remarks,omitempty"`
	InitiatedAt   time.Time       `json:"initiatedAt"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
}

// ToPaymentResponse converts a domain.PaymentTransaction to its response DTO.
func ToPaymentResponse(p *domain.PaymentTransaction) PaymentResponse {
	return PaymentResponse{
		TransactionID: p.TransactionID,
		ApplicationID: p.ApplicationID,
		BeneficiaryID: p.BeneficiaryID,
		Amount:        p.Amount,
		PaymentStatus: string(p.PaymentStatus),
		Remarks:       p.Remarks,
		InitiatedAt:   p.InitiatedAt,
		CompletedAt:   p.CompletedAt,
	}
}

// ToPaymentResponses converts a slice of domain payments.
func ToPaymentResponses(ps []domain.PaymentTransaction) []PaymentResponse {
	responses := make([]PaymentResponse, len(ps))
	for i := range ps {
		responses[i] = ToPaymentResponse(&ps[i])
	}
	return responses
}
