package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request-level metrics exposed at /metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campussphere_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campussphere_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Workflow metrics incremented by the services through thin helpers
var (
	EventRegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campussphere_event_registrations_total",
			Help: "Successful event registrations",
		},
	)

	ProposalReviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campussphere_proposal_reviews_total",
			Help: "Proposal review decisions by action",
		},
		[]string{"action"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campussphere_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveLogin records a login attempt outcome ("success" or "failure")
func ObserveLogin(outcome string) {
	LoginsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRegistration records a successful event registration
func ObserveRegistration() {
	EventRegistrationsTotal.Inc()
}

// ObserveReview records a proposal review decision
func ObserveReview(action string) {
	ProposalReviewsTotal.WithLabelValues(action).Inc()
}
