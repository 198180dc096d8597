// Package metrics defines all custom Prometheus metrics for the exam permit
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exampermit"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// GateDecisionsTotal counts access-gate decisions per navigation.
// Label:
//   - decision: "pending", "redirect_login", "redirect_home", or "allow"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access gate decisions, labelled by decision.",
	},
	[]string{"decision"},
)

// SessionsHydratedTotal counts session hydrations from durable storage.
// Label:
//   - result: "restored", "anonymous", or "corrupt"
var SessionsHydratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_hydrated_total",
		Help:      "Total number of session hydration attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Scan metrics ──────────────────────────────────────────────────────────────

// ScansTotal counts permit scans performed by invigilators.
// Label:
//   - outcome: "approved" or "rejected"
var ScansTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scans_total",
		Help:      "Total number of permit scans, labelled by outcome.",
	},
	[]string{"outcome"},
)

// ScanDedupTotal counts duplicate-scan checks.
// Label:
//   - result: "hit" (repeat scan) or "miss" (first scan of the day)
var ScanDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_dedup_total",
		Help:      "Total number of duplicate-scan checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ScanRecordsPersistedTotal counts invigilation records written by the
// recording pipeline.
// Label:
//   - outcome: the recorded scan outcome
var ScanRecordsPersistedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_records_persisted_total",
		Help:      "Total number of invigilation records persisted.",
	},
	[]string{"outcome"},
)

// ScanRecordErrorsTotal counts records the pipeline failed to persist.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var ScanRecordErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scan_record_errors_total",
		Help:      "Total number of invigilation records that failed to persist.",
	},
	[]string{"reason"},
)
