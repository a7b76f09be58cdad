package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics implements app.PipelineRecorder, tracking the analysis
// pipeline itself.
type PipelineMetrics struct {
	datasetsLoaded  *prometheus.CounterVec
	recordsScored   prometheus.Counter
	rowsSkipped     prometheus.Counter
	scoringDuration prometheus.Histogram
}

// NewPipelineMetrics creates and registers the pipeline metrics.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	m := &PipelineMetrics{
		datasetsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "datasets_loaded_total",
			Help:      "Total number of datasets ingested, by source.",
		}, []string{"source"}),
		recordsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "records_scored_total",
			Help:      "Total number of feedback records scored.",
		}),
		rowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "rows_skipped_total",
			Help:      "Total number of malformed input rows skipped.",
		}),
		scoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "scoring_duration_seconds",
			Help:      "Time spent ingesting and scoring one dataset.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.datasetsLoaded, m.recordsScored, m.rowsSkipped, m.scoringDuration)
	return m
}

func (m *PipelineMetrics) DatasetLoaded(source string) {
	m.datasetsLoaded.WithLabelValues(source).Inc()
}

func (m *PipelineMetrics) RecordsScored(n int) {
	m.recordsScored.Add(float64(n))
}

func (m *PipelineMetrics) RowsSkipped(n int) {
	m.rowsSkipped.Add(float64(n))
}

func (m *PipelineMetrics) ScoringDuration(seconds float64) {
	m.scoringDuration.Observe(seconds)
}
