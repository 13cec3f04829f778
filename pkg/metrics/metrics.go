package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the Prometheus collectors of the capture service.
type Metrics struct {
	// Extraction pipeline
	ExtractionDuration  *prometheus.HistogramVec
	CandidatesProduced  *prometheus.CounterVec
	ExtractionTimeouts  prometheus.Counter
	ExtractionCacheHits prometheus.Counter

	// Date resolution
	ResolutionsTotal *prometheus.CounterVec

	// Review and persistence
	TasksAccepted      *prometheus.CounterVec
	ReviewSessionsOpen   prometheus.Counter
	ReviewSessionsClosed prometheus.Counter
	BreakerState         *prometheus.GaugeVec
}

// New creates and registers the collectors once per process. Later calls
// return the same instance.
//
// Metrics:
//   - capture_extraction_duration_seconds{path} - pipeline latency
//   - capture_candidates_total{strategy} - candidates returned to callers
//   - capture_extraction_timeouts_total - results discarded after the budget
//   - capture_extraction_cache_hits_total - results served from the cache
//   - capture_resolutions_total{rule} - date resolutions per rule, "none" when nothing matched
//   - capture_tasks_accepted_total{source} - candidates persisted as tasks
//   - capture_review_sessions_opened_total - review sessions created
//   - capture_review_sessions_closed_total - review sessions emptied and deleted
//   - capture_breaker_state{name} - 0 closed, 1 half-open, 2 open
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			ExtractionDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "capture_extraction_duration_seconds",
					Help:    "Duration of the extraction pipeline in seconds",
					Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
				},
				[]string{"path"}, // "chat" or "voice"
			),
			CandidatesProduced: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "capture_candidates_total",
					Help: "Total number of task candidates returned",
				},
				[]string{"strategy"},
			),
			ExtractionTimeouts: promauto.NewCounter(prometheus.CounterOpts{
				Name: "capture_extraction_timeouts_total",
				Help: "Total number of extractions discarded after the time budget",
			}),
			ExtractionCacheHits: promauto.NewCounter(prometheus.CounterOpts{
				Name: "capture_extraction_cache_hits_total",
				Help: "Total number of extractions served from the result cache",
			}),
			ResolutionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "capture_resolutions_total",
					Help: "Total number of date resolutions by rule",
				},
				[]string{"rule"},
			),
			TasksAccepted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "capture_tasks_accepted_total",
					Help: "Total number of candidates accepted as tasks",
				},
				[]string{"source"},
			),
			ReviewSessionsOpen: promauto.NewCounter(prometheus.CounterOpts{
				Name: "capture_review_sessions_opened_total",
				Help: "Total number of review sessions opened",
			}),
			ReviewSessionsClosed: promauto.NewCounter(prometheus.CounterOpts{
				Name: "capture_review_sessions_closed_total",
				Help: "Total number of review sessions deleted after their last candidate was handled",
			}),
			BreakerState: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "capture_breaker_state",
					Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
				},
				[]string{"name"},
			),
		}
	})
	return globalMetrics
}
