package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the onboarding module.
type Metrics struct {
	// Verification decisions by check context and decision
	Decisions *prometheus.CounterVec

	// Steps completed by entity type and step
	StepCompletions *prometheus.CounterVec

	// Provider round trips by operation and outcome
	ProviderLatency *prometheus.HistogramVec

	ApplicationsCreated *prometheus.CounterVec
}

// New registers the onboarding metrics. A nil registerer uses the default
// Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dsa_onboarding_verification_decisions_total",
			Help: "Verification decisions by check context and outcome",
		}, []string{"context", "decision"}), // decision: "approve", "flag", "block"

		StepCompletions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dsa_onboarding_step_completions_total",
			Help: "Onboarding steps completed by entity type",
		}, []string{"entity_type", "step"}),

		ProviderLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dsa_onboarding_provider_duration_seconds",
			Help:    "Duration of verification provider calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 45},
		}, []string{"operation", "outcome"}),

		ApplicationsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dsa_onboarding_applications_created_total",
			Help: "Applications created by entity type",
		}, []string{"entity_type"}),
	}
}

func (m *Metrics) IncrementDecision(context, decision string) {
	if m != nil {
		m.Decisions.WithLabelValues(context, decision).Inc()
	}
}

func (m *Metrics) IncrementStepCompleted(entityType, step string) {
	if m != nil {
		m.StepCompletions.WithLabelValues(entityType, step).Inc()
	}
}

// ObserveProviderCall records a provider round trip; outcome is "ok" or "error".
func (m *Metrics) ObserveProviderCall(operation string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.ProviderLatency.WithLabelValues(operation, outcome).Observe(d.Seconds())
}

func (m *Metrics) IncrementApplicationCreated(entityType string) {
	if m != nil {
		m.ApplicationsCreated.WithLabelValues(entityType).Inc()
	}
}
