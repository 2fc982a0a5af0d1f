package tablet

import "github.com/prometheus/client_golang/prometheus"

var (
	statusCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tabletkv",
			Subsystem: "txn",
			Name:      "status_cache_hits",
			Help:      "Status queries answered from the local status cache.",
		})

	statusCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tabletkv",
			Subsystem: "txn",
			Name:      "status_cache_misses",
			Help:      "Status queries that needed the authority tablet.",
		})

	coalescedStatusWaiters = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tabletkv",
			Subsystem: "txn",
			Name:      "coalesced_status_waiters",
			Help:      "Status queries that joined an already outstanding request.",
		})

	coalescedAbortWaiters = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tabletkv",
			Subsystem: "txn",
			Name:      "coalesced_abort_waiters",
			Help:      "Abort requests that joined an already outstanding request.",
		})

	authorityRPCFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tabletkv",
			Subsystem: "txn",
			Name:      "authority_rpc_failures",
			Help:      "Failed calls to the status authority by request kind.",
		}, []string{"kind"})

	txnHydrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tabletkv",
			Subsystem: "txn",
			Name:      "hydrations",
			Help:      "Transaction entries materialized from persisted metadata.",
		})

	txnEvictions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tabletkv",
			Subsystem: "txn",
			Name:      "evictions",
			Help:      "Applied transaction entries dropped by the cleaner.",
		})
)

func init() {
	prometheus.MustRegister(statusCacheHits)
	prometheus.MustRegister(statusCacheMisses)
	prometheus.MustRegister(coalescedStatusWaiters)
	prometheus.MustRegister(coalescedAbortWaiters)
	prometheus.MustRegister(authorityRPCFailures)
	prometheus.MustRegister(txnHydrations)
	prometheus.MustRegister(txnEvictions)
}
