// Package metrics defines and registers all custom Prometheus metrics for the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at init time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRegistrationsTotal counts successful registrations.
// Label:
//   - role: the role persisted for the new user ("admin" or "user")
var AuthRegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of successfully registered users, by role.",
	},
	[]string{"role"},
)

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure covers unknown email and bad password alike)
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Product metrics ───────────────────────────────────────────────────────────

// ProductMutationsTotal counts write operations on the catalog.
// Label:
//   - op: "create", "update", or "delete"
var ProductMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Total number of product catalog mutations, by operation.",
	},
	[]string{"op"},
)

// ProductListDuration measures how long a catalog listing takes end-to-end,
// including the store round trip.
// Label:
//   - sort_by: the resolved sort column
var ProductListDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "product_list_duration_seconds",
		Help:      "Duration of product list queries from validation to result set.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"sort_by"},
)
