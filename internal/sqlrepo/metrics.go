package sqlrepo

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the counters and histograms the generic repository
// updates per operation. A nil *Metrics is valid everywhere below: every
// method is a no-op guard on it so a repository built without a registry
// (e.g. in unit tests) never touches Prometheus.
type Metrics struct {
	queries     *prometheus.CounterVec
	queryLatency *prometheus.HistogramVec
	joinsAdded  prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewMetrics registers the repository's counters against reg, scoped by
// table name via a constant label added per instance through ForTable.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sqlrepo",
			Name:      "queries_total",
			Help:      "Number of repository queries executed, by table and outcome.",
		}, []string{"table", "outcome"}),
		queryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sqlrepo",
			Name:      "query_duration_seconds",
			Help:      "Repository query latency in seconds, by table.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"table"}),
		joinsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sqlrepo",
			Name:      "joins_added_total",
			Help:      "Number of joins added by the join manager across all queries.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sqlrepo",
			Name:      "cache_hits_total",
			Help:      "Number of repository query() calls served from cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sqlrepo",
			Name:      "cache_misses_total",
			Help:      "Number of repository query() calls not served from cache.",
		}),
	}
	reg.MustRegister(m.queries, m.queryLatency, m.joinsAdded, m.cacheHits, m.cacheMisses)
	return m
}

func (m *Metrics) observeQuery(table string, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(table, outcome).Inc()
	m.queryLatency.WithLabelValues(table).Observe(elapsed.Seconds())
}

func (m *Metrics) observeJoin() {
	if m == nil {
		return
	}
	m.joinsAdded.Inc()
}

func (m *Metrics) observeCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) observeCacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}
