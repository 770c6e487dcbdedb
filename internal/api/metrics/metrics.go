// Package metrics defines all custom Prometheus metrics for the TrainTrack
// API. It is the single source of truth for metric names, labels, and help
// strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "traintrack"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token checks performed by the access
// gate and the API middleware.
// Label:
//   - result: "valid" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of token verifications, labelled by result.",
	},
	[]string{"result"},
)

// ── Coaching metrics ──────────────────────────────────────────────────────────

// AIRequestsTotal counts calls to the external AI partner.
// Label:
//   - result: "success" or "error" (timeouts count as errors)
var AIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ai_requests_total",
		Help:      "Total number of AI completion requests, labelled by result.",
	},
	[]string{"result"},
)

// AIRequestDuration measures how long a single AI completion takes.
var AIRequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ai_request_duration_seconds",
		Help:      "Duration of AI completion requests.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60},
	},
)

// TrainingsCreatedTotal counts persisted training records.
var TrainingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trainings_created_total",
		Help:      "Total number of training records created.",
	},
)
