// Package metrics defines all custom Prometheus metrics for the VeriScan
// dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "veriscan"

// ── Gate metrics ──────────────────────────────────────────────────────────────

// GateDecisionsTotal counts authorization gate outcomes per enforcement layer.
// Labels:
//   - layer: "edge", "session", "guard"
//   - outcome: e.g. "pass", "no_session", "invalid_session", "unknown_role",
//     "identity_unavailable", "denied"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of authorization gate decisions, by layer and outcome.",
	},
	[]string{"layer", "outcome"},
)

// ProfileResolutionsTotal counts profile resolutions against the identity boundary.
// Label:
//   - result: "resolved", "invalid", "unknown_role", "unavailable"
var ProfileResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_resolutions_total",
		Help:      "Total number of session profile resolutions, by result.",
	},
	[]string{"result"},
)

// ProfileResolutionDuration measures how long a resolution takes to settle.
var ProfileResolutionDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "profile_resolution_duration_seconds",
		Help:      "Duration of profile resolution from request to settlement.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Detection metrics ─────────────────────────────────────────────────────────

// DetectionsProcessedTotal counts detections recorded successfully.
// Labels:
//   - kind: "email", "url", "file"
//   - verdict: classifier verdict (e.g. "ai_generated")
var DetectionsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detections_processed_total",
		Help:      "Total number of detections successfully recorded.",
	},
	[]string{"kind", "verdict"},
)

// DetectionsErrorsTotal counts detections that failed recording.
// Label:
//   - reason: short description of the failure (e.g. "record_failed")
var DetectionsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detections_errors_total",
		Help:      "Total number of detections that failed recording.",
	},
	[]string{"reason"},
)

// DetectionQueueDepth tracks records waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var DetectionQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "detection_queue_depth",
		Help:      "Current number of records pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
