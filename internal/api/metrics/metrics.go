// Package metrics defines the storefront client's Prometheus metrics. It is
// the single source of truth for metric names, labels, and help strings.
//
// Metrics are registered with the default registry on package init and served
// by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// Outcome label values shared by all counters.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
	OutcomeBusy     = "busy"
	OutcomeError    = "error"
)

// PlanUnknown is the plan label for submissions naming no known tier.
const PlanUnknown = "unknown"

// ── Session metrics ───────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login and registration attempts.
// Labels:
//   - action: "login" or "register"
//   - outcome: success, rejected or error
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login/register attempts, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersSubmittedTotal counts order submissions.
// Labels:
//   - plan: Free, Pro, VIP or unknown
//   - outcome: success, rejected, invalid, busy or error
var OrdersSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_submitted_total",
		Help:      "Total number of order submissions, by plan and outcome.",
	},
	[]string{"plan", "outcome"},
)

// OrderSubmissionDuration measures the provisioning round trip.
var OrderSubmissionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_submission_duration_seconds",
		Help:      "Duration of order submissions including the provisioning call.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// ServerListLoadsTotal counts order-list fetches.
// Label:
//   - outcome: success, invalid or error
var ServerListLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "server_list_loads_total",
		Help:      "Total number of account order-list loads, by outcome.",
	},
	[]string{"outcome"},
)

// ServerStatusTotal counts normalised statuses served to the dashboard.
// Label:
//   - kind: active, pending, suspended or unknown
var ServerStatusTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "server_status_total",
		Help:      "Normalised order statuses returned to the dashboard, by kind.",
	},
	[]string{"kind"},
)
