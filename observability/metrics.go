// Package observability exposes prometheus instrumentation for the ledger
// runtime. Collectors are created lazily and registered once, so libraries
// embedding the runtime pay nothing unless they scrape.
package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// RuntimeMetrics counts block execution activity.
type RuntimeMetrics struct {
	BlocksFinalized prometheus.Counter
	Extrinsics      *prometheus.CounterVec
	RewardsPaid     prometheus.Counter
}

var (
	runtimeMetricsOnce sync.Once
	runtimeRegistry    *RuntimeMetrics
)

// Runtime returns the lazily-initialised runtime metrics registry.
func Runtime() *RuntimeMetrics {
	runtimeMetricsOnce.Do(func() {
		runtimeRegistry = &RuntimeMetrics{
			BlocksFinalized: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "microchain",
				Subsystem: "runtime",
				Name:      "blocks_finalized_total",
				Help:      "Total blocks executed and finalized.",
			}),
			Extrinsics: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "microchain",
				Subsystem: "runtime",
				Name:      "extrinsics_total",
				Help:      "Total dispatched extrinsics segmented by module and outcome.",
			}, []string{"module", "outcome"}),
			RewardsPaid: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "microchain",
				Subsystem: "staking",
				Name:      "rewards_paid_total",
				Help:      "Total reward payout events emitted by the staking pallet.",
			}),
		}
		prometheus.MustRegister(
			runtimeRegistry.BlocksFinalized,
			runtimeRegistry.Extrinsics,
			runtimeRegistry.RewardsPaid,
		)
	})
	return runtimeRegistry
}
