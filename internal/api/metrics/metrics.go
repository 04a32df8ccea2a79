// Package metrics defines and registers all custom Prometheus metrics for the
// FireWatch portal. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics are registered with the default registry through promauto on import;
// the HTTP middleware in the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "firewatch"

// ── HTTP server metrics ──────────────────────────────────────────────────────

// HTTPRequestsTotal counts requests served by the portal, labelled by the
// matched route pattern rather than the raw path.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served, by method, route and status code.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests served, by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ── Upstream adapter metrics ─────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls made by the data-fetch adapters.
// Labels:
//   - upstream: "backend", "firms", "openweather", "opentopo"
//   - operation: adapter operation (e.g. "alerts.list", "reports.submit")
//   - outcome: "ok", "network_error", "server_error", "decode_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream calls made by the data-fetch adapters.",
	},
	[]string{"upstream", "operation", "outcome"},
)

// UpstreamRequestDuration measures upstream call latency.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream calls made by the data-fetch adapters.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"upstream", "operation"},
)

// ── Session / routing metrics ────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard decisions.
// Labels:
//   - access: the route access level
//   - result: "allow" or "redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by access level and result.",
	},
	[]string{"access", "result"},
)

// SessionEventsTotal counts session state changes (login, logout, expired, conflict_resolved).
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session state changes, by event type.",
	},
	[]string{"type"},
)

// ── Request hygiene metrics ──────────────────────────────────────────────────

// StaleResponsesTotal counts responses discarded because a newer request for
// the same client and view was issued.
var StaleResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_responses_total",
		Help:      "Total number of upstream results discarded as stale.",
	},
	[]string{"view"},
)

// SubmissionLockTotal counts submission lock decisions.
// Label:
//   - result: "acquired" or "rejected"
var SubmissionLockTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_lock_total",
		Help:      "Total number of submission lock attempts, by operation and result.",
	},
	[]string{"operation", "result"},
)

// ── Hotspot snapshot metrics ─────────────────────────────────────────────────

// HotspotSnapshotSize is the number of hotspots in the cached default snapshot.
var HotspotSnapshotSize = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hotspot_snapshot_size",
		Help:      "Number of hotspots in the most recent cached snapshot.",
	},
)

// HotspotRefreshTotal counts scheduled snapshot refreshes by result ("ok", "error").
var HotspotRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hotspot_refresh_total",
		Help:      "Total number of scheduled hotspot snapshot refreshes, by result.",
	},
	[]string{"result"},
)
