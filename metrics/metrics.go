// Package metrics exposes Prometheus collectors describing the planner's
// behavior across queries: how many estimation passes ran, what decisions
// they made, and how much data they observed. Embedders that already run a
// Prometheus registry can scrape these directly; the planner works standalone
// against the default registry otherwise.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace is the Prometheus namespace shared by every metric in this package.
const Namespace = "shuffleplan"

var (
	// EstimationsTotal counts estimation passes run, labeled by the
	// decision each one reached.
	EstimationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "coordinator",
			Name:      "estimations_total",
			Help:      "Number of estimation passes run, labeled by decision (trivial, coalesce, broadcast).",
		},
		[]string{"decision"},
	)

	// PoisonedTotal counts coordinators that poisoned, labeled by error kind.
	PoisonedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "coordinator",
			Name:      "poisoned_total",
			Help:      "Number of estimation passes that poisoned the coordinator, labeled by error kind.",
		},
		[]string{"kind"},
	)

	// CoalesceSplits records how many post-shuffle partitions a coalesce
	// decision produced.
	CoalesceSplits = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "coalescer",
			Name:      "post_partitions",
			Help:      "Number of post-shuffle partitions produced by a coalesce decision.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	// BytesObserved records the total bytes seen across all upstream
	// statistics in a single estimation pass.
	BytesObserved = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "coordinator",
			Name:      "bytes_observed",
			Help:      "Total map-output bytes observed across all exchanges in a single estimation pass.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 16),
		},
	)
)
