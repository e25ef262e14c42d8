// Package metrics defines the Prometheus metrics of the account service.
// Metrics register with the default registry on package init via promauto;
// GET /metrics exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "account"

// Result label values shared by the counters below.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// ── Saga ──────────────────────────────────────────────────────────────────────

// SagaStepsTotal counts executed forward steps.
// Labels:
//   - flow: the saga name (e.g. "sign_up", "forgot_password")
//   - step: the step name (e.g. "create_user", "send_mail")
//   - result: "ok" or "failed"
var SagaStepsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saga_steps_total",
		Help:      "Total number of saga forward steps, by flow, step and result.",
	},
	[]string{"flow", "step", "result"},
)

// SagaCompensationsTotal counts compensations run after a failed step.
// A "failed" compensation leaves state for the token TTL or the sweeper to repair.
var SagaCompensationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saga_compensations_total",
		Help:      "Total number of saga compensations, by flow, step and result.",
	},
	[]string{"flow", "step", "result"},
)

// ── MWP ───────────────────────────────────────────────────────────────────────

// MWPRequestsTotal counts multi-write-proxy mutations.
// Labels:
//   - operation: e.g. "add_balance", "add_balance_rollback"
//   - result: "ok" or the error kind (e.g. "invariant", "forbidden")
var MWPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mwp_requests_total",
		Help:      "Total number of MWP mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// DigestFailuresTotal counts rejected MWP digests.
// Label:
//   - reason: "missing" or "invalid"
var DigestFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mwp_digest_failures_total",
		Help:      "Total number of MWP requests rejected by digest verification.",
	},
	[]string{"reason"},
)

// ── Token cache ───────────────────────────────────────────────────────────────

// TokenCacheOpsTotal counts verification-token cache operations.
// Labels:
//   - operation: "create", "cleanup", "resolve", "sweep"
//   - result: "ok", "miss" or "failed"
var TokenCacheOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_cache_operations_total",
		Help:      "Total number of verification-token cache operations.",
	},
	[]string{"operation", "result"},
)

// ── Mail ──────────────────────────────────────────────────────────────────────

// MailJobsTotal counts mail jobs through their lifecycle.
// Labels:
//   - template: "signUp", "pwdReset", "emailChange", "usernameChanged"
//   - stage: "published", "publish_failed", "delivered", "delivery_failed", "rejected"
var MailJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_jobs_total",
		Help:      "Total number of mail jobs, by template and lifecycle stage.",
	},
	[]string{"template", "stage"},
)

// ── Sweeper ───────────────────────────────────────────────────────────────────

// SweeperRemovedTotal counts entries repaired by the token sweeper.
// Label:
//   - kind: "orphan_token" or "stale_operation"
var SweeperRemovedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sweeper_removed_total",
		Help:      "Total number of orphan tokens and stale pending operations cleared by the sweeper.",
	},
	[]string{"kind"},
)

// ── HTTP ──────────────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: the chi route pattern (e.g. "/v1/wallets/{id}")
//   - status: the response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)
