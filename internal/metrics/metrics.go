package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the application lifecycle engine.
type Metrics struct {
	// Status transitions by target status and outcome
	Transitions *prometheus.CounterVec

	// Payment records spawned by PAYMENT_INITIATED transitions
	PaymentsCreated prometheus.Counter

	// Audit entries written, by action
	AuditEntries *prometheus.CounterVec

	// Notification dispatch failures (swallowed, observable only here and in logs)
	NotificationFailures prometheus.Counter
}

// New creates a Metrics instance with all lifecycle metrics registered on
// the default registry.
func New() *Metrics {
	return &Metrics{
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_application_transitions_total",
			Help: "Total application status transitions by target status and outcome",
		}, []string{"target_status", "outcome"}), // outcome: "ok", "error"

		PaymentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portal_payments_created_total",
			Help: "Total payment transactions spawned by PAYMENT_INITIATED transitions",
		}),

		AuditEntries: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_audit_entries_total",
			Help: "Total audit entries written by action",
		}, []string{"action"}),

		NotificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portal_notification_failures_total",
			Help: "Total notification dispatch failures (never surfaced to callers)",
		}),
	}
}

// IncrementTransition records one transition attempt.
func (m *Metrics) IncrementTransition(targetStatus, outcome string) {
	if m != nil {
		m.Transitions.WithLabelValues(targetStatus, outcome).Inc()
	}
}

// IncrementPaymentCreated records one spawned payment record.
func (m *Metrics) IncrementPaymentCreated() {
	if m != nil {
		m.PaymentsCreated.Inc()
	}
}

// IncrementAuditEntry records one written audit entry.
func (m *Metrics) IncrementAuditEntry(action string) {
	if m != nil {
		m.AuditEntries.WithLabelValues(action).Inc()
	}
}

// IncrementNotificationFailure records one swallowed dispatch failure.
func (m *Metrics) IncrementNotificationFailure() {
	if m != nil {
		m.NotificationFailures.Inc()
	}
}
