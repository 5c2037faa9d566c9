// Package metrics defines and registers all custom Prometheus metrics for the
// ClientPlus API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clientplus"

// EntriesCreatedTotal counts persisted time entries.
// Label:
//   - source: "Client Plus" (same-day) or "Exceptional Entry" (backdated)
var EntriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of time entries persisted, by source.",
	},
	[]string{"source"},
)

// EntriesRejectedTotal counts submission batches rejected before persistence.
// Label:
//   - reason: "validation" or "invalid_path"
var EntriesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_rejected_total",
		Help:      "Total number of entry batches rejected, by reason.",
	},
	[]string{"reason"},
)

// EntryBatchSize observes how many drafts arrive per submission batch.
var EntryBatchSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "entry_batch_size",
		Help:      "Number of drafts per submission batch.",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
	},
)

// StatsCacheTotal counts dashboard stats cache lookups.
// Label:
//   - result: "hit" or "miss"
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of dashboard stats cache lookups, by result.",
	},
	[]string{"result"},
)

// UsersCreatedTotal counts users created through the admin API.
// Label:
//   - role: SUPER_USER, LEAD_CONSULTANT, CONSULTANT or SUPPORTING
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by role.",
	},
	[]string{"role"},
)
